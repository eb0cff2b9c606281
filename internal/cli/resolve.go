package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/alexanderramin/promocal/internal/repository"
)

// resolveMonth finds a month by id or name, case-insensitively. A unique
// name prefix also resolves ("sept" → September).
func resolveMonth(ctx context.Context, app *App, input string) (*domain.Month, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("month ID is required")
	}
	if m, err := app.Calendar.Get(ctx, input); err == nil {
		return m, nil
	}

	months := app.Calendar.List(ctx)
	for i := range months {
		if strings.EqualFold(months[i].ID, input) || strings.EqualFold(months[i].Name, input) {
			return &months[i], nil
		}
	}

	var matches []*domain.Month
	lower := strings.ToLower(input)
	for i := range months {
		if strings.HasPrefix(strings.ToLower(months[i].Name), lower) {
			matches = append(matches, &months[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("month %q: %w", input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("month %q is ambiguous (%d matches)", input, len(matches))
	}
}
