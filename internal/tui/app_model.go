package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"

	"todoterm/internal/api"
	"todoterm/internal/model"
)

// appModel is the root coordinator: the single owner of canonical state
// (todos, criteria, statistics, categories, loading/error flags) and the
// only component that talks to the backend. Presentational pieces render
// what they are handed and report intent back through messages.
type appModel struct {
	client *api.Client
	logger *log.Logger

	width  int
	height int

	criteria   model.Criteria
	todos      []model.Todo
	stats      model.Statistics
	hasStats   bool
	categories []string

	// loading gates only the primary list fetch; stats and categories load
	// quietly in the background.
	loading bool
	errText string

	// listSeq/statsSeq tag outgoing fetches; stale responses are dropped.
	listSeq  int
	statsSeq int

	todoList    list.Model
	spin        spinner.Model
	searchFocus bool
	searchInput textinput.Model

	modal         modalKind
	form          todoForm
	confirmDelete model.Todo

	showDetail bool

	flashText string
	flashSeq  int
}

func newAppModel(client *api.Client, logger *log.Logger) appModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := appModel{
		client:   client,
		logger:   logger,
		criteria: model.DefaultCriteria(),
		loading:  true,
	}

	m.todoList = newTodoList()
	m.spin = spinner.New(spinner.WithSpinner(spinner.Dot))

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search title, description, category"
	m.searchInput.CharLimit = 200
	m.searchInput.Width = 40

	m.form = newTodoForm()
	return m
}

func newTodoList() list.Model {
	l := list.New([]list.Item{}, newTodoDelegate(), 0, 0)
	// All chrome is rendered by our own header/footer; filtering happens
	// server-side through the search criteria, not in the widget.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("todo", "todos")
	// ESC is "back/cancel" here, not quit.
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style aliases alongside the defaults.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)
	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}

// setTodos replaces the list contents, keeping the selection on the same
// todo when it survived the refresh.
func (m *appModel) setTodos(todos []model.Todo) {
	curID := 0
	if it, ok := m.todoList.SelectedItem().(todoItem); ok {
		curID = it.todo.ID
	}
	m.todos = todos
	items := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		items = append(items, todoItem{todo: t})
	}
	m.todoList.SetItems(items)
	if curID != 0 {
		for i, t := range todos {
			if t.ID == curID {
				m.todoList.Select(i)
				break
			}
		}
	}
}

// patchTodo replaces a single todo in place after a confirmed mutation; the
// backend is the source of truth for the replacement value.
func (m *appModel) patchTodo(todo model.Todo) {
	for i := range m.todos {
		if m.todos[i].ID == todo.ID {
			m.todos[i] = todo
			m.todoList.SetItem(i, todoItem{todo: todo})
			return
		}
	}
}

func (m appModel) selectedTodo() (model.Todo, bool) {
	it, ok := m.todoList.SelectedItem().(todoItem)
	if !ok {
		return model.Todo{}, false
	}
	return it.todo, true
}
