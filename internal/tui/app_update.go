package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"todoterm/internal/api"
	"todoterm/internal/model"
)

func (m appModel) Init() tea.Cmd {
	// Initial load: list, statistics and categories in parallel. Only the
	// list fetch gates the UI; the other two fail quietly to the log.
	return tea.Batch(
		m.spin.Tick,
		fetchTodos(m.client, m.listSeq, m.criteria),
		fetchStats(m.client, m.statsSeq),
		fetchCategories(m.client),
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case todosLoadedMsg:
		if msg.seq != m.listSeq {
			// A newer refresh was issued after this one; the displayed list
			// must reflect the latest criteria, so drop the stale result.
			return m, nil
		}
		m.loading = false
		m.setTodos(msg.todos)
		return m, nil

	case todosFailedMsg:
		if msg.seq != m.listSeq {
			return m, nil
		}
		m.loading = false
		m.errText = api.Message(msg.err, m.client.BaseURL())
		m.logger.Error("list fetch failed", "err", msg.err)
		return m, nil

	case statsLoadedMsg:
		if msg.seq != m.statsSeq {
			return m, nil
		}
		m.stats = msg.stats
		m.hasStats = true
		return m, nil

	case statsFailedMsg:
		// Stale stats stay on screen; the snapshot is disposable.
		m.logger.Warn("statistics fetch failed", "err", msg.err)
		return m, nil

	case categoriesLoadedMsg:
		m.categories = msg.categories
		return m, nil

	case categoriesFailedMsg:
		m.logger.Warn("categories fetch failed", "err", msg.err)
		return m, nil

	case todoCreatedMsg:
		m.modal = modalNone
		m.form.reset()
		// A new todo may carry a new category, so the category list
		// refreshes along with everything else.
		return m, tea.Batch(m.refresh(), fetchCategories(m.client))

	case createFailedMsg:
		m.form.submitting = false
		m.form.errText = api.Message(msg.err, m.client.BaseURL())
		m.errText = m.form.errText
		m.logger.Error("create failed", "err", msg.err)
		return m, nil

	case todoUpdatedMsg:
		m.modal = modalNone
		m.form.reset()
		m.patchTodo(msg.todo)
		// Editing may have renamed or removed a category.
		return m, fetchCategories(m.client)

	case updateFailedMsg:
		// Keep the edit modal open so the draft is not lost.
		m.form.submitting = false
		m.form.errText = api.Message(msg.err, m.client.BaseURL())
		m.logger.Error("update failed", "err", msg.err)
		return m, nil

	case todoToggledMsg:
		m.patchTodo(msg.todo)
		m.statsSeq++
		return m, fetchStats(m.client, m.statsSeq)

	case toggleFailedMsg:
		m.logger.Error("toggle failed", "id", msg.id, "err", msg.err)
		return m, m.flash(fmt.Sprintf("Couldn't update todo %d: %s", msg.id, api.Message(msg.err, m.client.BaseURL())))

	case todoDeletedMsg:
		return m, tea.Batch(m.refresh(), fetchCategories(m.client))

	case deleteFailedMsg:
		m.logger.Error("delete failed", "id", msg.id, "err", msg.err)
		return m, m.flash(fmt.Sprintf("Couldn't delete todo %d: %s", msg.id, api.Message(msg.err, m.client.BaseURL())))

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flashText = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// refresh re-requests the list and statistics with the current criteria.
// Each call bumps the sequence numbers so older in-flight responses lose.
func (m *appModel) refresh() tea.Cmd {
	m.listSeq++
	m.statsSeq++
	m.loading = true
	m.errText = ""
	return tea.Batch(
		fetchTodos(m.client, m.listSeq, m.criteria),
		fetchStats(m.client, m.statsSeq),
		m.spin.Tick,
	)
}

func (m *appModel) flash(text string) tea.Cmd {
	m.flashText = text
	m.flashSeq++
	return flashTimeout(m.flashSeq)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalHelp:
		m.modal = modalNone
		return m, nil
	case modalConfirmDelete:
		return m.handleConfirmDeleteKey(msg)
	case modalNewTodo, modalEditTodo:
		return m.handleFormKey(msg)
	}

	if m.searchFocus {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "/":
		m.searchFocus = true
		return m, m.searchInput.Focus()

	case "a", "n":
		m.form.reset()
		m.modal = modalNewTodo
		return m, nil

	case "e":
		if t, ok := m.selectedTodo(); ok {
			m.form.loadTodo(t)
			m.modal = modalEditTodo
		}
		return m, nil

	case "enter", " ":
		if t, ok := m.selectedTodo(); ok {
			return m, toggleTodo(m.client, t.ID, t.Completed)
		}
		return m, nil

	case "d", "x":
		if t, ok := m.selectedTodo(); ok {
			m.confirmDelete = t
			m.modal = modalConfirmDelete
		}
		return m, nil

	case "f":
		m.criteria.Filter = nextFilter(m.criteria.Filter)
		return m, m.refresh()

	// Stats tiles double as filter shortcuts; the overdue tile does not.
	case "1":
		m.criteria.Filter = model.FilterAll
		return m, m.refresh()
	case "2":
		m.criteria.Filter = model.FilterActive
		return m, m.refresh()
	case "3":
		m.criteria.Filter = model.FilterCompleted
		return m, m.refresh()

	case "s":
		m.criteria.SortBy = nextSortKey(m.criteria.SortBy)
		return m, m.refresh()

	case "o":
		if m.criteria.Order == model.OrderDesc {
			m.criteria.Order = model.OrderAsc
		} else {
			m.criteria.Order = model.OrderDesc
		}
		return m, m.refresh()

	case "p":
		m.criteria.Priority = nextPriorityFilter(m.criteria.Priority)
		return m, m.refresh()

	case "c":
		m.criteria.Category = nextCategoryFilter(m.criteria.Category, m.categories)
		return m, m.refresh()

	case "v":
		m.showDetail = !m.showDetail
		m.resize()
		return m, nil

	case "r":
		return m, tea.Batch(m.refresh(), fetchCategories(m.client))

	case "?":
		m.modal = modalHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.todoList, cmd = m.todoList.Update(msg)
	return m, cmd
}

func (m appModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searchFocus = false
		m.searchInput.Blur()
		return m, nil
	case "ctrl+u":
		// One-step clear.
		m.searchInput.SetValue("")
		if m.criteria.Search != "" {
			m.criteria.Search = ""
			return m, m.refresh()
		}
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Search-as-you-type: every change re-requests the list. No debounce;
	// the sequence guard keeps rapid typing consistent.
	if v := m.searchInput.Value(); v != before {
		m.criteria.Search = v
		return m, tea.Batch(cmd, m.refresh())
	}
	return m, cmd
}

func (m appModel) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.confirmDelete.ID
		m.modal = modalNone
		m.confirmDelete = model.Todo{}
		return m, deleteTodo(m.client, id)
	case "n", "esc":
		m.modal = modalNone
		m.confirmDelete = model.Todo{}
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// Cancel discards the draft without any network call.
		m.modal = modalNone
		m.form.reset()
		return m, nil

	case "tab", "shift+tab":
		if msg.String() == "tab" {
			m.form.focusNext()
		} else {
			m.form.focusPrev()
		}
		return m, nil

	case "ctrl+s":
		return m.submitForm()

	case "enter":
		switch m.form.focus {
		case formFocusSave:
			return m.submitForm()
		case formFocusCancel:
			m.modal = modalNone
			m.form.reset()
			return m, nil
		case formFocusDescription:
			// Newline inside the textarea.
		default:
			m.form.focusNext()
			return m, nil
		}

	case "left", "right", " ":
		if m.form.focus == formFocusPriority {
			m.form.cyclePriority()
			return m, nil
		}
	}

	return m, m.form.updateFocused(msg)
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	if !m.form.canSubmit() {
		return m, nil
	}
	draft, err := m.form.draft()
	if err != nil {
		m.form.errText = "Due date must be YYYY-MM-DD"
		return m, nil
	}
	m.form.submitting = true
	m.form.errText = ""
	if m.form.editing {
		return m, updateTodo(m.client, m.form.editID, draft)
	}
	return m, createTodo(m.client, draft)
}

func nextFilter(f model.Filter) model.Filter {
	switch f {
	case model.FilterAll:
		return model.FilterActive
	case model.FilterActive:
		return model.FilterCompleted
	default:
		return model.FilterAll
	}
}

func nextSortKey(s model.SortKey) model.SortKey {
	for i, k := range model.SortKeys {
		if k == s {
			return model.SortKeys[(i+1)%len(model.SortKeys)]
		}
	}
	return model.SortCreatedAt
}

func nextPriorityFilter(p *model.Priority) *model.Priority {
	order := []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}
	if p == nil {
		return &order[0]
	}
	for i := range order {
		if order[i] == *p && i+1 < len(order) {
			return &order[i+1]
		}
	}
	return nil
}

func nextCategoryFilter(current *string, categories []string) *string {
	if len(categories) == 0 {
		return nil
	}
	if current == nil {
		return &categories[0]
	}
	for i := range categories {
		if categories[i] == *current && i+1 < len(categories) {
			return &categories[i+1]
		}
	}
	return nil
}
