package cli

import (
	"fmt"

	"github.com/alexanderramin/promocal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDataCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Inspect the calendar dataset",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "audit",
		Short: "Report months whose budget breakdown does not total 100%",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			issues := app.Calendar.Audit(cmd.Context())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBudgetAudit(issues))
			return nil
		},
	})

	return cmd
}
