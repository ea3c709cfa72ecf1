// Package tui is the interactive terminal client: a single bubbletea model
// that owns all canonical state and mediates every backend call.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"todoterm/internal/api"
)

// Run starts the TUI and blocks until the user quits.
func Run(client *api.Client, logger *log.Logger, theme string) error {
	applyColorProfilePreference()
	applyThemePreference(theme)

	p := tea.NewProgram(newAppModel(client, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
