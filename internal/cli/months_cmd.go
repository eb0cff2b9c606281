package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/promocal/internal/cli/formatter"
	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newMonthsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "months",
		Aliases: []string{"month", "m"},
		Short:   "Browse the marketing calendar",
	}

	cmd.AddCommand(
		newMonthsListCmd(app),
		newMonthsShowCmd(app),
		newMonthsTreeCmd(app),
	)

	return cmd
}

func newMonthsListCmd(app *App) *cobra.Command {
	var search string
	var quarter domain.QuarterSelector

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List months matching a search and quarter filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			months := app.Calendar.Search(ctx, search, quarter)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonthTable(months, app.Checklist.State(ctx), app.now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Match month name, key events or booking priority")
	quarterFlag(cmd.Flags(), &quarter)

	return cmd
}

func newMonthsShowCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <month>",
		Short: "Show every detail of one month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := resolveMonth(ctx, app, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				fmt.Fprintln(out, formatter.FormatMonthDetail(m, formatter.DetailOptions{
					State:        app.Checklist.State(ctx),
					Now:          app.now(),
					ActionCursor: -1,
				}))
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(m); err != nil {
					return fmt.Errorf("encoding month: %w", err)
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(m); err != nil {
					return fmt.Errorf("encoding month: %w", err)
				}
			default:
				return fmt.Errorf("invalid format %q (want text, yaml or json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, yaml or json")

	return cmd
}

func newMonthsTreeCmd(app *App) *cobra.Command {
	var quarter domain.QuarterSelector

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Outline months by quarter with checklist totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			months := app.Calendar.Search(ctx, "", quarter)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuarterTree(months, app.Checklist.State(ctx), app.now()))
			return nil
		},
	}

	quarterFlag(cmd.Flags(), &quarter)

	return cmd
}
