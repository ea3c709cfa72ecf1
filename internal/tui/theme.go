package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so colors are lipgloss.AdaptiveColor throughout and "faint" styling is
// reserved for dark backgrounds (faint text on light terminals often becomes
// illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorAccent     lipgloss.TerminalColor = ac("27", "62") // blue

	colorError   lipgloss.TerminalColor = ac("160", "196")
	colorErrorBg lipgloss.TerminalColor = ac("224", "52")

	colorPriorityHigh lipgloss.TerminalColor = ac("160", "196") // red
	colorPriorityMed  lipgloss.TerminalColor = ac("136", "178") // yellow
	colorPriorityLow  lipgloss.TerminalColor = ac("28", "76")   // green
	colorCategory     lipgloss.TerminalColor = ac("27", "75")   // blue
	colorOverdueBg    lipgloss.TerminalColor = ac("196", "160")

	colorTileTotal     lipgloss.TerminalColor = ac("27", "75")
	colorTileActive    lipgloss.TerminalColor = ac("28", "76")
	colorTileCompleted lipgloss.TerminalColor = ac("91", "135")
	colorTileOverdue   lipgloss.TerminalColor = ac("160", "196")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError).Background(colorErrorBg).Padding(0, 1)
}

func priorityHighStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorPriorityHigh).Bold(true)
}

func priorityMediumStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorPriorityMed)
}

func priorityLowStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorPriorityLow)
}

func categoryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorCategory)
}

func overdueBadgeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ac("255", "255")).Background(colorOverdueBg).Bold(true).Padding(0, 1)
}

func dueLabelStyle() lipgloss.Style {
	return styleMuted()
}

func dueLabelOverdueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorPriorityHigh)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
// Only NO_COLOR is honored; CLICOLOR-style env vars are aimed at plain CLI
// output and would accidentally strip the interactive UI.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

// applyThemePreference configures background detection. Some terminals don't
// reliably report their background, which makes AdaptiveColor pick the wrong
// variant; the config/env override wins over detection.
//
// Priority:
// 1) theme from the config file / TODOTERM_THEME (light|dark|auto)
// 2) COLORFGBG heuristic ("fg;bg" — use the last segment as bg)
func applyThemePreference(theme string) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bg := strings.TrimSpace(parts[len(parts)-1])
		switch bg {
		case "0", "1", "2", "3", "4", "5", "6":
			lipgloss.SetHasDarkBackground(true)
		case "7", "15":
			lipgloss.SetHasDarkBackground(false)
		}
	}
}
