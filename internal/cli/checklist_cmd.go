package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/promocal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newChecklistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checklist",
		Aliases: []string{"cl"},
		Short:   "Track a month's marketing actions",
	}

	cmd.AddCommand(
		newChecklistShowCmd(app),
		newChecklistToggleCmd(app),
	)

	return cmd
}

func newChecklistShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <month>",
		Short: "Show a month's actions and completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := resolveMonth(ctx, app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatChecklist(m, app.Checklist.State(ctx), -1))
			return nil
		},
	}
}

func newChecklistToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <month> <action#>",
		Short: "Mark an action done or not done (actions are numbered from 1)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := resolveMonth(ctx, app, args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 || n > m.ActionCount() {
				return fmt.Errorf("invalid action number %q: %s has actions 1-%d", args[1], m.Name, m.ActionCount())
			}

			index := n - 1
			state, err := app.Checklist.Toggle(ctx, m.ID, index)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if state.Done(m.ID, index) {
				fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("Done:"), m.MarketingActions[index])
			} else {
				fmt.Fprintf(out, "%s %s\n", formatter.Dim("Not done:"), m.MarketingActions[index])
			}
			fmt.Fprintf(out, "%s progress: %d%%\n", m.Name, state.Progress(m.ID, m.ActionCount()))
			return nil
		},
	}
}
