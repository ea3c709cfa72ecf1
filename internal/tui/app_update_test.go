package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"todoterm/internal/api"
	"todoterm/internal/model"
)

func newTestModel() appModel {
	m := newAppModel(api.New("http://backend.test"), nil)
	m.width = 120
	m.height = 40
	m.resize()
	return m
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(appModel)
	if !ok {
		t.Fatalf("Update returned %T, want appModel", next)
	}
	return out, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func someTodos() []model.Todo {
	return []model.Todo{
		{ID: 1, Title: "Buy milk", Priority: model.PriorityHigh, CreatedAt: time.Now()},
		{ID: 2, Title: "Ship release", Priority: model.PriorityMedium, Completed: true, CreatedAt: time.Now()},
	}
}

func TestTodosLoadedAppliesLatestSequence(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, todosLoadedMsg{seq: m.listSeq, todos: someTodos()})

	if m.loading {
		t.Error("loading flag should clear once the list resolves")
	}
	if len(m.todos) != 2 {
		t.Fatalf("todos=%d, want 2", len(m.todos))
	}
}

func TestStaleTodosResponseIsDropped(t *testing.T) {
	m := newTestModel()
	// A newer refresh was issued after the first fetch went out.
	m, _ = update(t, m, keyMsg("2"))
	staleSeq := m.listSeq - 1

	m, _ = update(t, m, todosLoadedMsg{seq: staleSeq, todos: someTodos()})
	if len(m.todos) != 0 {
		t.Error("stale response must not overwrite state from a newer request")
	}
	if !m.loading {
		t.Error("still waiting for the latest request; loading must stay set")
	}

	m, _ = update(t, m, todosLoadedMsg{seq: m.listSeq, todos: someTodos()})
	if len(m.todos) != 2 {
		t.Error("response for the latest request must apply")
	}
}

func TestStaleListFailureIsDropped(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyMsg("2"))

	m, _ = update(t, m, todosFailedMsg{seq: m.listSeq - 1, err: errors.New("boom")})
	if m.errText != "" {
		t.Errorf("stale failure must not surface an error, got %q", m.errText)
	}
}

func TestListFailureShowsBackendDetail(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, todosFailedMsg{seq: m.listSeq, err: &api.Error{StatusCode: 500, Detail: "DB unavailable"}})

	if m.errText != "DB unavailable" {
		t.Errorf("errText=%q, want backend detail message", m.errText)
	}
	if m.loading {
		t.Error("loading flag should clear on failure")
	}
}

func TestStatsTileShortcutsTriggerExactlyOneRefresh(t *testing.T) {
	m := newTestModel()
	before := m.listSeq

	m, cmd := update(t, m, keyMsg("3"))
	if m.criteria.Filter != model.FilterCompleted {
		t.Errorf("filter=%q, want completed", m.criteria.Filter)
	}
	if cmd == nil {
		t.Fatal("expected a refresh command")
	}
	if m.listSeq != before+1 {
		t.Errorf("listSeq advanced by %d, want exactly 1 refresh cycle", m.listSeq-before)
	}
}

func TestFilterCycle(t *testing.T) {
	m := newTestModel()
	want := []model.Filter{model.FilterActive, model.FilterCompleted, model.FilterAll}
	for _, f := range want {
		m, _ = update(t, m, keyMsg("f"))
		if m.criteria.Filter != f {
			t.Fatalf("filter=%q, want %q", m.criteria.Filter, f)
		}
	}
}

func TestSearchAsYouTypeRefreshes(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyMsg("/"))
	if !m.searchFocus {
		t.Fatal("expected search to take focus")
	}

	before := m.listSeq
	m, cmd := update(t, m, keyMsg("m"))
	if m.criteria.Search != "m" {
		t.Errorf("search=%q, want %q", m.criteria.Search, "m")
	}
	if cmd == nil || m.listSeq != before+1 {
		t.Error("each keystroke must trigger a refresh")
	}

	// One-step clear.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	if m.criteria.Search != "" {
		t.Errorf("ctrl+u should clear the search term, got %q", m.criteria.Search)
	}

	// Leaving search keeps the term but releases the keys.
	m, _ = update(t, m, keyMsg("m"))
	m, _ = update(t, m, keyMsg("esc"))
	if m.searchFocus {
		t.Error("esc should blur the search input")
	}
	if m.criteria.Search != "m" {
		t.Error("esc must not clear the search term")
	}
}

func TestToggleFailureFlashesInsteadOfSilence(t *testing.T) {
	m := newTestModel()
	m, cmd := update(t, m, toggleFailedMsg{id: 4, err: errors.New("connection refused")})

	if m.flashText == "" {
		t.Error("mutation failures must surface a visible flash")
	}
	if cmd == nil {
		t.Error("expected a flash timeout command")
	}

	// The matching timeout clears it; a stale one does not.
	m2, _ := update(t, m, flashDoneMsg{seq: m.flashSeq - 1})
	if m2.flashText == "" {
		t.Error("older flash timeout must not clear a newer flash")
	}
	m2, _ = update(t, m, flashDoneMsg{seq: m.flashSeq})
	if m2.flashText != "" {
		t.Error("flash should clear after its timeout")
	}
}

func TestToggleSuccessPatchesInPlaceAndRefreshesStats(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, todosLoadedMsg{seq: m.listSeq, todos: someTodos()})

	statsSeqBefore := m.statsSeq
	listSeqBefore := m.listSeq
	toggled := someTodos()[0]
	toggled.Completed = true

	m, cmd := update(t, m, todoToggledMsg{todo: toggled})
	if !m.todos[0].Completed {
		t.Error("toggled todo should be replaced in place")
	}
	if m.listSeq != listSeqBefore {
		t.Error("toggle must not trigger a full list refresh")
	}
	if m.statsSeq != statsSeqBefore+1 || cmd == nil {
		t.Error("toggle must refresh statistics")
	}
}

func TestEditFormStaysOpenOnFailedSave(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, todosLoadedMsg{seq: m.listSeq, todos: someTodos()})
	m, _ = update(t, m, keyMsg("e"))
	if m.modal != modalEditTodo {
		t.Fatalf("modal=%d, want edit modal", m.modal)
	}

	m, _ = update(t, m, updateFailedMsg{err: &api.Error{StatusCode: 422, Detail: "title too long"}})
	if m.modal != modalEditTodo {
		t.Error("edit modal must stay open so the draft is not lost")
	}
	if m.form.errText != "title too long" {
		t.Errorf("form error=%q, want inline backend detail", m.form.errText)
	}
	if m.form.title.Value() != "Buy milk" {
		t.Error("draft must be preserved after a failed save")
	}
}

func TestUpdateSuccessPatchesAndClosesForm(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, todosLoadedMsg{seq: m.listSeq, todos: someTodos()})
	m, _ = update(t, m, keyMsg("e"))

	updated := someTodos()[0]
	updated.Title = "Buy oat milk"
	m, cmd := update(t, m, todoUpdatedMsg{todo: updated})

	if m.modal != modalNone {
		t.Error("confirmed save should close the edit modal")
	}
	if m.todos[0].Title != "Buy oat milk" {
		t.Error("updated todo should be replaced in place")
	}
	if cmd == nil {
		t.Error("editing may change categories; expected a categories refresh")
	}
}

func TestCreateFailureKeepsDraft(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyMsg("a"))
	if m.modal != modalNewTodo {
		t.Fatalf("modal=%d, want new-todo modal", m.modal)
	}
	m, _ = update(t, m, keyMsg("Call dentist"))

	m, _ = update(t, m, createFailedMsg{err: errors.New("backend down")})
	if m.modal != modalNewTodo {
		t.Error("failed create must keep the form open")
	}
	if m.form.title.Value() != "Call dentist" {
		t.Error("failed create must preserve the draft")
	}
	if m.errText == "" {
		t.Error("create failures are also surfaced on the error banner")
	}
}

func TestCreateSuccessResetsFormAndRefreshes(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyMsg("a"))
	m, _ = update(t, m, keyMsg("Call dentist"))

	before := m.listSeq
	m, cmd := update(t, m, todoCreatedMsg{todo: model.Todo{ID: 9, Title: "Call dentist"}})

	if m.modal != modalNone {
		t.Error("confirmed create should close the form")
	}
	if m.form.title.Value() != "" {
		t.Error("confirmed create should clear the draft")
	}
	if m.form.priority != model.PriorityMedium {
		t.Error("priority should reset to medium")
	}
	if cmd == nil || m.listSeq != before+1 {
		t.Error("create triggers a full refresh")
	}
}

func TestBlankTitleNeverSubmits(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyMsg("a"))
	m.form.title.SetValue("   ")

	next, cmd := m.submitForm()
	m = next.(appModel)
	if cmd != nil {
		t.Error("blank title must not issue a request")
	}
	if m.form.submitting {
		t.Error("form must not enter submitting state")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, todosLoadedMsg{seq: m.listSeq, todos: someTodos()})

	m, cmd := update(t, m, keyMsg("d"))
	if m.modal != modalConfirmDelete {
		t.Fatal("delete should open the confirm modal first")
	}
	if cmd != nil {
		t.Error("no request until confirmed")
	}

	m, _ = update(t, m, keyMsg("n"))
	if m.modal != modalNone {
		t.Error("declining should close the modal without a request")
	}

	m, _ = update(t, m, keyMsg("d"))
	m, cmd = update(t, m, keyMsg("y"))
	if m.modal != modalNone {
		t.Error("confirming closes the modal")
	}
	if cmd == nil {
		t.Error("confirming issues the delete request")
	}
}

func TestEscCancelsEditWithoutRequest(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, todosLoadedMsg{seq: m.listSeq, todos: someTodos()})
	m, _ = update(t, m, keyMsg("e"))
	m, _ = update(t, m, keyMsg("X"))

	m, cmd := update(t, m, keyMsg("esc"))
	if m.modal != modalNone {
		t.Error("esc closes the form")
	}
	if cmd != nil {
		t.Error("cancel must not issue any request")
	}
	if m.form.title.Value() != "" {
		t.Error("cancel discards the draft")
	}
}

func TestStatsMessagesGuardSequence(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyMsg("2"))

	m, _ = update(t, m, statsLoadedMsg{seq: m.statsSeq - 1, stats: model.Statistics{Total: 99}})
	if m.hasStats {
		t.Error("stale stats response must be dropped")
	}

	m, _ = update(t, m, statsLoadedMsg{seq: m.statsSeq, stats: model.Statistics{Total: 4, Completed: 1, Active: 3}})
	if !m.hasStats || m.stats.Total != 4 {
		t.Error("latest stats response must apply")
	}
}

func TestCategoriesLoad(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, categoriesLoadedMsg{categories: []string{"work", "home"}})

	// c cycles nil -> work -> home -> nil, refreshing each time.
	m, cmd := update(t, m, keyMsg("c"))
	if m.criteria.Category == nil || *m.criteria.Category != "work" || cmd == nil {
		t.Fatal("first cycle should select the first category and refresh")
	}
	m, _ = update(t, m, keyMsg("c"))
	if m.criteria.Category == nil || *m.criteria.Category != "home" {
		t.Fatal("second cycle should advance")
	}
	m, _ = update(t, m, keyMsg("c"))
	if m.criteria.Category != nil {
		t.Fatal("cycling past the end clears the category filter")
	}
}

func TestPriorityFilterCycle(t *testing.T) {
	m := newTestModel()
	want := []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}
	for _, p := range want {
		m, _ = update(t, m, keyMsg("p"))
		if m.criteria.Priority == nil || *m.criteria.Priority != p {
			t.Fatalf("priority filter=%v, want %q", m.criteria.Priority, p)
		}
	}
	m, _ = update(t, m, keyMsg("p"))
	if m.criteria.Priority != nil {
		t.Error("cycling past low clears the priority filter")
	}
}
