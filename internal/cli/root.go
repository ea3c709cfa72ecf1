// Package cli wires the cobra command tree. A bare invocation starts the
// interactive TUI; subcommands are scriptable equivalents over the same API
// client with JSON output.
package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"todoterm/internal/api"
	"todoterm/internal/config"
	"todoterm/internal/tui"
)

type App struct {
	APIURL     string
	ConfigPath string
	PrettyJSON bool
	Verbose    bool

	cfg config.Config
	log *log.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todoterm",
		Short:        "Terminal client for the todo backend (TUI + scriptable commands)",
		SilenceUsage: true,
		Example: `  # Start the interactive TUI
  todoterm

  # Scriptable commands
  todoterm list --filter active --sort due_date --order asc
  todoterm add "Buy milk" --priority high --due 2026-09-01
  todoterm done 42
  todoterm stats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(app.ConfigPath)
		if err != nil {
			return err
		}
		app.cfg = cfg
		app.log = app.cliLogger()
		app.log.Debug("resolved backend", "url", cfg.ResolveAPIURL(app.APIURL))
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.APIURL, "api", "", "Backend base URL (default: "+config.EnvAPIURL+" env, then config file, then "+api.DefaultBaseURL+")")
	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to config file (default: ~/.config/todoterm/config.toml)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Debug logging to stderr")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newDoneCmd(app))
	cmd.AddCommand(newRmCmd(app))
	cmd.AddCommand(newStatsCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))

	return cmd
}

func runTUI(app *App) error {
	return tui.Run(app.client(), app.tuiLogger(), app.cfg.Theme)
}

func (a *App) client() *api.Client {
	return api.New(a.cfg.ResolveAPIURL(a.APIURL))
}

// cliLogger writes to stderr; subcommand stdout stays parseable JSON.
func (a *App) cliLogger() *log.Logger {
	level := log.WarnLevel
	if a.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "todoterm",
	})
}

// tuiLogger writes to the configured log file. While the TUI owns the
// terminal there is nowhere sensible to print, so without a log_file
// setting diagnostics are dropped.
func (a *App) tuiLogger() *log.Logger {
	path := a.cfg.LogFile
	if path == "" {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	})
}

func (a *App) printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if a.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
