package tui

import (
	"todoterm/internal/model"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalNewTodo
	modalEditTodo
	modalConfirmDelete
	modalHelp
)

type formFocus int

const (
	formFocusTitle formFocus = iota
	formFocusDescription
	formFocusPriority
	formFocusCategory
	formFocusDue
	formFocusSave
	formFocusCancel
)

// Messages produced by async API commands. Fetches that depend on the
// current criteria carry the sequence number they were issued with; Update
// drops any response whose sequence is older than the latest issued one, so
// the list always reflects the most recently requested criteria even when
// responses arrive out of order.

type todosLoadedMsg struct {
	seq   int
	todos []model.Todo
}

type todosFailedMsg struct {
	seq int
	err error
}

type statsLoadedMsg struct {
	seq   int
	stats model.Statistics
}

type statsFailedMsg struct {
	seq int
	err error
}

type categoriesLoadedMsg struct{ categories []string }

type categoriesFailedMsg struct{ err error }

type todoCreatedMsg struct{ todo model.Todo }

type createFailedMsg struct{ err error }

type todoUpdatedMsg struct{ todo model.Todo }

type updateFailedMsg struct{ err error }

type todoToggledMsg struct{ todo model.Todo }

type toggleFailedMsg struct {
	id  int
	err error
}

type todoDeletedMsg struct{ id int }

type deleteFailedMsg struct {
	id  int
	err error
}

type flashDoneMsg struct{ seq int }
