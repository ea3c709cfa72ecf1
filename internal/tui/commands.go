package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"todoterm/internal/api"
	"todoterm/internal/model"
)

// Requests are never cancelled mid-flight; the sequence guard in Update
// makes late responses harmless, and the client's own timeout bounds them.

func fetchTodos(client *api.Client, seq int, crit model.Criteria) tea.Cmd {
	return func() tea.Msg {
		todos, err := client.List(context.Background(), crit)
		if err != nil {
			return todosFailedMsg{seq: seq, err: err}
		}
		return todosLoadedMsg{seq: seq, todos: todos}
	}
}

func fetchStats(client *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		stats, err := client.Statistics(context.Background())
		if err != nil {
			return statsFailedMsg{seq: seq, err: err}
		}
		return statsLoadedMsg{seq: seq, stats: stats}
	}
}

func fetchCategories(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		categories, err := client.Categories(context.Background())
		if err != nil {
			return categoriesFailedMsg{err: err}
		}
		return categoriesLoadedMsg{categories: categories}
	}
}

func createTodo(client *api.Client, draft model.Draft) tea.Cmd {
	return func() tea.Msg {
		todo, err := client.Create(context.Background(), draft)
		if err != nil {
			return createFailedMsg{err: err}
		}
		return todoCreatedMsg{todo: todo}
	}
}

func updateTodo(client *api.Client, id int, draft model.Draft) tea.Cmd {
	return func() tea.Msg {
		todo, err := client.Update(context.Background(), id, draft)
		if err != nil {
			return updateFailedMsg{err: err}
		}
		return todoUpdatedMsg{todo: todo}
	}
}

func toggleTodo(client *api.Client, id int, completed bool) tea.Cmd {
	return func() tea.Msg {
		todo, err := client.SetCompleted(context.Background(), id, !completed)
		if err != nil {
			return toggleFailedMsg{id: id, err: err}
		}
		return todoToggledMsg{todo: todo}
	}
}

func deleteTodo(client *api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		if err := client.Delete(context.Background(), id); err != nil {
			return deleteFailedMsg{id: id, err: err}
		}
		return todoDeletedMsg{id: id}
	}
}

func flashTimeout(seq int) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}
