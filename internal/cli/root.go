package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/promocal/internal/cli/formatter"
	"github.com/alexanderramin/promocal/internal/clipboard"
	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/alexanderramin/promocal/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Calendar  service.CalendarService
	Checklist service.ChecklistService
	Theme     service.ThemeService
	Prefs     service.PreferenceService
	Clipboard *clipboard.Helper

	// ThemeOverride, when set, replaces the stored theme for this run.
	ThemeOverride domain.Theme

	// Now defaults to time.Now; tests pin it to check the current-month badge.
	Now func() time.Time

	// IsInteractive decides whether the bare command opens the TUI.
	IsInteractive func() bool

	// RunTUI starts the interactive UI. Defaults to a full-screen program.
	RunTUI func(app *App) error
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// effectiveTheme returns the override or the stored theme.
func (a *App) effectiveTheme(ctx context.Context) domain.Theme {
	if a.ThemeOverride != "" {
		return a.ThemeOverride
	}
	return a.Theme.Load(ctx)
}

func (a *App) runTUI() error {
	if a.RunTUI != nil {
		return a.RunTUI(a)
	}
	return runProgram(a)
}

// NewRootCmd creates the top-level "promocal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "promocal",
		Short: "Mobile bar marketing calendar",
		Long: `Browse twelve months of mobile bar marketing guidance, tick off
each month's marketing actions and copy ready-made social and email templates.

Run without arguments in a terminal to open the interactive calendar.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			formatter.ApplyTheme(app.effectiveTheme(cmd.Context()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return app.runTUI()
			}
			months := app.Calendar.List(cmd.Context())
			state := app.Checklist.State(cmd.Context())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonthTable(months, state, app.now()))
			return nil
		},
	}

	root.AddCommand(
		newMonthsCmd(app),
		newChecklistCmd(app),
		newCopyCmd(app),
		newThemeCmd(app),
		newPrefsCmd(app),
		newDataCmd(app),
		newTUICmd(app),
	)

	return root
}
