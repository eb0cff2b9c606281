package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/promocal/internal/cli/formatter"
	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/spf13/cobra"
)

func newCopyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <month> (social <n> | subject | body)",
		Short: "Copy a social post or email template to the clipboard",
		Example: `  promocal copy jan social 2
  promocal copy dec subject`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := resolveMonth(ctx, app, args[0])
			if err != nil {
				return err
			}
			key, err := copyTargetKey(args[1:])
			if err != nil {
				return err
			}
			target, err := m.CopyTarget(key)
			if err != nil {
				return err
			}

			res := app.Clipboard.Copy(target.Text)
			if res.Err != nil {
				return fmt.Errorf("copy failed: %w", res.Err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.CopiedBadge(), formatter.Dim(m.Name+" "+target.Label))
			return nil
		},
	}
}

// copyTargetKey maps CLI words to a copy target key. Social posts are
// numbered from 1.
func copyTargetKey(args []string) (string, error) {
	switch args[0] {
	case domain.TargetSubject, domain.TargetBody:
		if len(args) != 1 {
			return "", fmt.Errorf("%s takes no number", args[0])
		}
		return args[0], nil
	case "social":
		if len(args) != 2 {
			return "", fmt.Errorf("social needs a post number, e.g. social 1")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return "", fmt.Errorf("invalid post number %q", args[1])
		}
		return domain.SocialTarget(n - 1), nil
	default:
		return "", fmt.Errorf("unknown template %q (want social, subject or body)", args[0])
	}
}
