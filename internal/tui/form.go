package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todoterm/internal/model"
)

// todoForm backs both the create and the edit modal. Create starts blank;
// edit snapshots the todo's current fields into the draft. The draft is
// only cleared on a confirmed success: a failed create or update keeps the
// modal open with the user's input intact.
type todoForm struct {
	editing bool
	editID  int

	title       textinput.Model
	description textarea.Model
	priority    model.Priority
	category    textinput.Model
	due         textinput.Model

	focus      formFocus
	errText    string
	submitting bool
}

func newTodoForm() todoForm {
	f := todoForm{priority: model.PriorityMedium}

	f.title = textinput.New()
	f.title.Placeholder = "Title (required)"
	f.title.CharLimit = 200
	f.title.Width = 48

	f.description = textarea.New()
	f.description.Placeholder = "Description (optional, markdown)"
	f.description.CharLimit = 0
	f.description.SetWidth(48)
	f.description.SetHeight(4)
	f.description.ShowLineNumbers = false

	f.category = textinput.New()
	f.category.Placeholder = "Category (optional)"
	f.category.CharLimit = 100
	f.category.Width = 24

	f.due = textinput.New()
	f.due.Placeholder = "YYYY-MM-DD"
	f.due.CharLimit = 10
	f.due.Width = 12

	f.setFocus(formFocusTitle)
	return f
}

// reset returns the form to creation defaults (priority back to medium).
func (f *todoForm) reset() {
	f.editing = false
	f.editID = 0
	f.title.SetValue("")
	f.description.SetValue("")
	f.priority = model.PriorityMedium
	f.category.SetValue("")
	f.due.SetValue("")
	f.errText = ""
	f.submitting = false
	f.setFocus(formFocusTitle)
}

// loadTodo snapshots an existing todo into the draft for editing. Cancel
// discards the draft; the todo itself is untouched until a save succeeds.
func (f *todoForm) loadTodo(t model.Todo) {
	f.reset()
	f.editing = true
	f.editID = t.ID
	f.title.SetValue(t.Title)
	if t.Description != nil {
		f.description.SetValue(*t.Description)
	}
	if t.Priority.Valid() {
		f.priority = t.Priority
	}
	if t.Category != nil {
		f.category.SetValue(*t.Category)
	}
	f.due.SetValue(model.FormatDueDate(t.DueDate))
}

// canSubmit mirrors the disabled state of the save control: a draft with a
// blank title never produces a request.
func (f todoForm) canSubmit() bool {
	return !f.submitting && strings.TrimSpace(f.title.Value()) != ""
}

func (f todoForm) draft() (model.Draft, error) {
	return model.NewDraft(
		f.title.Value(),
		f.description.Value(),
		f.priority,
		f.category.Value(),
		f.due.Value(),
	)
}

func (f *todoForm) setFocus(focus formFocus) {
	f.focus = focus
	f.title.Blur()
	f.description.Blur()
	f.category.Blur()
	f.due.Blur()
	switch focus {
	case formFocusTitle:
		f.title.Focus()
	case formFocusDescription:
		f.description.Focus()
	case formFocusCategory:
		f.category.Focus()
	case formFocusDue:
		f.due.Focus()
	}
}

func (f *todoForm) focusNext() {
	if f.focus == formFocusCancel {
		f.setFocus(formFocusTitle)
		return
	}
	f.setFocus(f.focus + 1)
}

func (f *todoForm) focusPrev() {
	if f.focus == formFocusTitle {
		f.setFocus(formFocusCancel)
		return
	}
	f.setFocus(f.focus - 1)
}

func (f *todoForm) cyclePriority() {
	switch f.priority {
	case model.PriorityLow:
		f.priority = model.PriorityMedium
	case model.PriorityMedium:
		f.priority = model.PriorityHigh
	default:
		f.priority = model.PriorityLow
	}
}

// updateFocused forwards a message to whichever input currently has focus.
func (f *todoForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case formFocusTitle:
		f.title, cmd = f.title.Update(msg)
	case formFocusDescription:
		f.description, cmd = f.description.Update(msg)
	case formFocusCategory:
		f.category, cmd = f.category.Update(msg)
	case formFocusDue:
		f.due, cmd = f.due.Update(msg)
	}
	return cmd
}
