package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"todoterm/internal/model"
)

type todoItem struct {
	todo model.Todo
}

func (i todoItem) FilterValue() string { return strings.TrimSpace(i.todo.Title) }

type todoDelegate struct {
	normal    lipgloss.Style
	selected  lipgloss.Style
	completed lipgloss.Style
}

func newTodoDelegate() todoDelegate {
	return todoDelegate{
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		completed: lipgloss.NewStyle().
			Foreground(colorMuted).
			Strikethrough(true),
	}
}

func (d todoDelegate) Height() int  { return 1 }
func (d todoDelegate) Spacing() int { return 0 }
func (d todoDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d todoDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	it, ok := item.(todoItem)
	if !ok {
		fmt.Fprint(w, d.normal.Render(fmt.Sprint(item)))
		return
	}

	line := renderTodoLine(it.todo, time.Now())

	style := d.normal
	if index == m.Index() {
		style = d.selected
	} else if it.todo.Completed {
		style = d.completed
	}

	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}
	fmt.Fprint(w, style.Render(line))
}

// renderTodoLine builds the one-line row: checkbox, title, then badges.
// Overdue is derived on every render from the due date and the clock.
func renderTodoLine(t model.Todo, now time.Time) string {
	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}

	parts := []string{checkbox, t.Title}

	if t.Priority.Valid() {
		parts = append(parts, priorityBadge(t.Priority))
	}
	if t.Category != nil {
		parts = append(parts, categoryBadge(*t.Category))
	}
	if t.DueDate != nil {
		due := "due " + t.DueDate.UTC().Format("2006-01-02")
		if t.Overdue(now) {
			parts = append(parts, overdueBadgeStyle().Render("OVERDUE"), dueLabelOverdueStyle().Render(due))
		} else {
			parts = append(parts, dueLabelStyle().Render(due))
		}
	}

	return strings.Join(parts, " ")
}

func priorityBadge(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return priorityHighStyle().Render("HIGH")
	case model.PriorityLow:
		return priorityLowStyle().Render("LOW")
	default:
		return priorityMediumStyle().Render("MED")
	}
}

func categoryBadge(category string) string {
	return categoryStyle().Render("#" + category)
}
