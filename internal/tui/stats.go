package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"todoterm/internal/model"
)

// renderStatsPanel draws the four aggregate tiles. Total/Active/Completed
// are shortcuts (keys 1/2/3) onto the corresponding filter; the overdue
// tile is display-only. The completed tile carries the completion percent,
// which is 0 when there are no todos at all.
func renderStatsPanel(stats model.Statistics, ok bool, active model.Filter, width int) string {
	if !ok {
		return styleMuted().Render("Statistics unavailable.")
	}

	tileW := width/4 - 2
	if tileW < 12 {
		tileW = 12
	}

	tiles := []string{
		renderStatsTile("1 Total", fmt.Sprintf("%d", stats.Total), "", colorTileTotal, active == model.FilterAll, tileW),
		renderStatsTile("2 Active", fmt.Sprintf("%d", stats.Active), "", colorTileActive, active == model.FilterActive, tileW),
		renderStatsTile("3 Completed", fmt.Sprintf("%d", stats.Completed), fmt.Sprintf("%d%%", stats.CompletionPercent()), colorTileCompleted, active == model.FilterCompleted, tileW),
		renderStatsTile("Overdue", fmt.Sprintf("%d", stats.Overdue), "", colorTileOverdue, false, tileW),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func renderStatsTile(label, value, extra string, color lipgloss.TerminalColor, selected bool, width int) string {
	valueLine := lipgloss.NewStyle().Foreground(color).Bold(true).Render(value)
	if extra != "" {
		valueLine += " " + styleMuted().Render(extra)
	}
	labelLine := styleMuted().Render(label)

	st := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted)
	if selected {
		st = st.BorderForeground(colorAccent)
	}
	return st.Render(valueLine + "\n" + labelLine)
}
