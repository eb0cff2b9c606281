package cli

import (
	"fmt"

	"github.com/alexanderramin/promocal/internal/cli/formatter"
	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the color theme",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the stored theme",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, app.Theme.Load(cmd.Context()))
				if app.ThemeOverride != "" {
					fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("(overridden to %s for this run)", app.ThemeOverride)))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				theme, err := app.Theme.Toggle(cmd.Context())
				if err != nil {
					return err
				}
				formatter.ApplyTheme(theme)
				fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
				return nil
			},
		},
		&cobra.Command{
			Use:       "set <light|dark>",
			Short:     "Store a specific theme",
			Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
			ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark)},
			RunE: func(cmd *cobra.Command, args []string) error {
				theme := domain.Theme(args[0])
				if err := app.Theme.Set(cmd.Context(), theme); err != nil {
					return err
				}
				formatter.ApplyTheme(theme)
				fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
				return nil
			},
		},
	)

	return cmd
}
