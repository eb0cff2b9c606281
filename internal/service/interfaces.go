package service

import (
	"context"

	"github.com/alexanderramin/promocal/internal/dataset"
	"github.com/alexanderramin/promocal/internal/domain"
)

type CalendarService interface {
	List(ctx context.Context) []domain.Month
	Get(ctx context.Context, id string) (*domain.Month, error)
	Search(ctx context.Context, query string, sel domain.QuarterSelector) []domain.Month
	Audit(ctx context.Context) []dataset.BudgetIssue
}

// ChecklistService owns the checklist completion map. Load never fails: a
// missing or unreadable value yields an empty state.
type ChecklistService interface {
	Load(ctx context.Context) domain.ChecklistState
	State(ctx context.Context) domain.ChecklistState
	Toggle(ctx context.Context, monthID string, index int) (domain.ChecklistState, error)
	Progress(ctx context.Context, monthID string, actionCount int) int
}

type ThemeService interface {
	Load(ctx context.Context) domain.Theme
	Toggle(ctx context.Context) (domain.Theme, error)
	Set(ctx context.Context, theme domain.Theme) error
}

type PreferenceService interface {
	Export(ctx context.Context) (*Snapshot, error)
	Import(ctx context.Context, snap *Snapshot) error
}
