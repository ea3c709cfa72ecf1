package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"todoterm/internal/model"
)

func newListCmd(app *App) *cobra.Command {
	var (
		filter   string
		search   string
		category string
		priority string
		sortBy   string
		order    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos matching the given criteria (JSON)",
		RunE: func(cmd *cobra.Command, args []string) error {
			crit, err := buildCriteria(filter, search, category, priority, sortBy, order)
			if err != nil {
				return err
			}
			todos, err := app.client().List(cmd.Context(), crit)
			if err != nil {
				return err
			}
			if todos == nil {
				todos = []model.Todo{}
			}
			return app.printJSON(cmd.OutOrStdout(), todos)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", "all|active|completed")
	cmd.Flags().StringVar(&search, "search", "", "Substring match on title, description and category")
	cmd.Flags().StringVar(&category, "category", "", "Only todos in this category")
	cmd.Flags().StringVar(&priority, "priority", "", "low|medium|high")
	cmd.Flags().StringVar(&sortBy, "sort", "created_at", "created_at|due_date|priority|title")
	cmd.Flags().StringVar(&order, "order", "desc", "asc|desc")
	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	var (
		description string
		priority    string
		category    string
		due         string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(args[0]) == "" {
				return fmt.Errorf("title must not be empty")
			}
			p := model.Priority(priority)
			if priority != "" && !p.Valid() {
				return fmt.Errorf("invalid priority %q (want low, medium or high)", priority)
			}
			draft, err := model.NewDraft(args[0], description, p, category, due)
			if err != nil {
				return fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", due)
			}
			todo, err := app.client().Create(cmd.Context(), draft)
			if err != nil {
				return err
			}
			return app.printJSON(cmd.OutOrStdout(), todo)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Optional description (markdown)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "low|medium|high")
	cmd.Flags().StringVar(&category, "category", "", "Optional category label")
	cmd.Flags().StringVar(&due, "due", "", "Due date, YYYY-MM-DD")
	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo completed (or active again with --undo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			todo, err := app.client().SetCompleted(cmd.Context(), id, !undo)
			if err != nil {
				return err
			}
			return app.printJSON(cmd.OutOrStdout(), todo)
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the todo active instead")
	return cmd
}

func newRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.client().Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted todo %d\n", id)
			return nil
		},
	}
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate counts (JSON)",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.client().Statistics(cmd.Context())
			if err != nil {
				return err
			}
			return app.printJSON(cmd.OutOrStdout(), stats)
		},
	}
}

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List distinct categories (JSON)",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.client().Categories(cmd.Context())
			if err != nil {
				return err
			}
			if categories == nil {
				categories = []string{}
			}
			return app.printJSON(cmd.OutOrStdout(), categories)
		},
	}
}

// buildCriteria validates the flag values and maps them onto the same
// Criteria type the TUI uses, so both surfaces hit the query builder the
// same way.
func buildCriteria(filter, search, category, priority, sortBy, order string) (model.Criteria, error) {
	crit := model.DefaultCriteria()

	switch f := model.Filter(filter); f {
	case model.FilterAll, model.FilterActive, model.FilterCompleted:
		crit.Filter = f
	default:
		return model.Criteria{}, fmt.Errorf("invalid filter %q (want all, active or completed)", filter)
	}

	crit.Search = strings.TrimSpace(search)
	crit.Category = model.TrimToNull(category)

	if priority != "" {
		p := model.Priority(priority)
		if !p.Valid() {
			return model.Criteria{}, fmt.Errorf("invalid priority %q (want low, medium or high)", priority)
		}
		crit.Priority = &p
	}

	switch s := model.SortKey(sortBy); s {
	case model.SortCreatedAt, model.SortDueDate, model.SortPriority, model.SortTitle:
		crit.SortBy = s
	default:
		return model.Criteria{}, fmt.Errorf("invalid sort key %q", sortBy)
	}

	switch o := model.Order(order); o {
	case model.OrderAsc, model.OrderDesc:
		crit.Order = o
	default:
		return model.Criteria{}, fmt.Errorf("invalid order %q (want asc or desc)", order)
	}

	return crit, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid todo id %q", s)
	}
	return id, nil
}
