package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"todoterm/internal/model"
)

const (
	minListHeight = 5
	minListWidth  = 40
	chromeHeight  = 12
)

func (m *appModel) resize() {
	h := m.height - chromeHeight
	if h < minListHeight {
		h = minListHeight
	}
	w := m.width
	if m.showDetail {
		w = m.width / 2
	}
	if w < minListWidth {
		w = minListWidth
	}
	m.todoList.SetSize(w, h)
}

func (m appModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString(styleError().Render("Error: " + m.errText))
		b.WriteString("\n")
	}

	b.WriteString(renderStatsPanel(m.stats, m.hasStats, m.criteria.Filter, m.width))
	b.WriteString("\n")

	switch m.modal {
	case modalNewTodo, modalEditTodo:
		b.WriteString(m.renderForm())
	case modalConfirmDelete:
		b.WriteString(m.renderConfirmDelete())
	case modalHelp:
		b.WriteString(renderHelp())
	default:
		b.WriteString(m.renderBrowse())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m appModel) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Render("todoterm")
	return title + "  " + styleMuted().Render(m.client.BaseURL())
}

func (m appModel) renderBrowse() string {
	var b strings.Builder

	searchLabel := "/"
	if m.searchFocus {
		searchLabel = lipgloss.NewStyle().Foreground(colorAccent).Render("/")
	}
	b.WriteString(searchLabel + " " + m.searchInput.View())
	b.WriteString("\n")
	b.WriteString(m.renderCriteriaLine())
	b.WriteString("\n")

	var body string
	if m.loading {
		body = m.spin.View() + " Loading todos…"
	} else if len(m.todos) == 0 {
		body = styleMuted().Render("No todos found. Press a to add one.")
	} else {
		body = m.todoList.View()
	}

	if m.showDetail {
		detailW := m.width - m.todoList.Width() - 2
		if detailW < 30 {
			detailW = 30
		}
		detail := m.renderDetail(detailW)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  "+detail)
	}
	b.WriteString(body)
	return b.String()
}

// renderCriteriaLine summarizes every active criteria field so the state
// that drives the current list is always visible.
func (m appModel) renderCriteriaLine() string {
	parts := []string{
		"filter:" + string(m.criteria.Filter),
		"sort:" + string(m.criteria.SortBy) + " " + string(m.criteria.Order),
	}
	if m.criteria.Priority != nil {
		parts = append(parts, "priority:"+string(*m.criteria.Priority))
	}
	if m.criteria.Category != nil {
		parts = append(parts, "category:"+*m.criteria.Category)
	}
	return styleMuted().Render(strings.Join(parts, "  "))
}

func (m appModel) renderDetail(width int) string {
	t, ok := m.selectedTodo()
	if !ok {
		return styleMuted().Render("No todo selected.")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(t.Title))
	b.WriteString("\n")

	meta := []string{string(t.Priority)}
	if t.Category != nil {
		meta = append(meta, "#"+*t.Category)
	}
	meta = append(meta, "created "+t.CreatedAt.Format("2006-01-02"))
	if t.DueDate != nil {
		due := "due " + t.DueDate.UTC().Format("2006-01-02")
		if t.Overdue(time.Now()) {
			due += " (overdue)"
		}
		meta = append(meta, due)
	}
	b.WriteString(styleMuted().Render(strings.Join(meta, " · ")))
	b.WriteString("\n")

	if t.Description != nil {
		b.WriteString("\n")
		b.WriteString(renderMarkdown(*t.Description, width))
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (m appModel) renderForm() string {
	f := m.form

	header := "New todo"
	if f.editing {
		header = fmt.Sprintf("Edit todo %d", f.editID)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	b.WriteString("\n\n")

	b.WriteString(formLabel("Title", f.focus == formFocusTitle) + " " + f.title.View())
	b.WriteString("\n")
	b.WriteString(formLabel("Description", f.focus == formFocusDescription))
	b.WriteString("\n")
	b.WriteString(f.description.View())
	b.WriteString("\n")
	b.WriteString(formLabel("Priority", f.focus == formFocusPriority) + " " + renderPriorityPicker(f.priority))
	b.WriteString("\n")
	b.WriteString(formLabel("Category", f.focus == formFocusCategory) + " " + f.category.View())
	b.WriteString("\n")
	b.WriteString(formLabel("Due date", f.focus == formFocusDue) + " " + f.due.View())
	b.WriteString("\n\n")

	save := "[ Save ]"
	if f.submitting {
		save = "[ Saving… ]"
	} else if !f.canSubmit() {
		save = styleMuted().Render("[ Save ]")
	}
	b.WriteString(formButton(save, f.focus == formFocusSave))
	b.WriteString("  ")
	b.WriteString(formButton("[ Cancel ]", f.focus == formFocusCancel))

	if f.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(styleError().Render(f.errText))
	}

	return b.String()
}

func formLabel(text string, focused bool) string {
	if focused {
		return lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render(text + ":")
	}
	return styleMuted().Render(text + ":")
}

func formButton(text string, focused bool) string {
	if focused {
		return lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true).Render(text)
	}
	return text
}

func renderPriorityPicker(selected model.Priority) string {
	var parts []string
	for _, p := range []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh} {
		label := string(p)
		if p == selected {
			parts = append(parts, lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("● "+label))
		} else {
			parts = append(parts, styleMuted().Render("○ "+label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m appModel) renderConfirmDelete() string {
	return fmt.Sprintf("Delete %q? This cannot be undone.\n\n%s",
		m.confirmDelete.Title,
		styleMuted().Render("y: delete  n/esc: keep"))
}

func renderHelp() string {
	rows := [][2]string{
		{"enter/space", "toggle complete"},
		{"a/n", "add todo"},
		{"e", "edit todo"},
		{"d/x", "delete todo"},
		{"/", "search (esc to leave, ctrl+u to clear)"},
		{"f", "cycle filter (all/active/completed)"},
		{"1/2/3", "filter all/active/completed"},
		{"s", "cycle sort key"},
		{"o", "toggle sort order"},
		{"p", "cycle priority filter"},
		{"c", "cycle category filter"},
		{"v", "toggle detail pane"},
		{"r", "reload from backend"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Keys"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", row[0], styleMuted().Render(row[1])))
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("Press any key to close."))
	return b.String()
}

func (m appModel) renderFooter() string {
	if m.flashText != "" {
		return styleError().Render(m.flashText)
	}
	return styleMuted().Render("enter: toggle  a: add  e: edit  d: delete  /: search  f: filter  s: sort  ?: help  q: quit")
}
