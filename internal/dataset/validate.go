package dataset

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/promocal/internal/domain"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrDuplicateID is returned when two records share an id.
var ErrDuplicateID = errors.New("duplicate month id")

// Validate checks record structure and id uniqueness. Budget breakdowns
// are not required to total 100; see BudgetAudit.
func Validate(months []domain.Month) error {
	if len(months) == 0 {
		return errors.New("dataset is empty")
	}
	seen := make(map[string]int, len(months))
	for i := range months {
		m := &months[i]
		if err := validateMonth(m); err != nil {
			return fmt.Errorf("month %d (%q): %w", i, m.ID, err)
		}
		if prev, ok := seen[m.ID]; ok {
			return fmt.Errorf("%w %q at records %d and %d", ErrDuplicateID, m.ID, prev, i)
		}
		seen[m.ID] = i
	}
	return nil
}

func validateMonth(m *domain.Month) error {
	return validation.ValidateStruct(m,
		validation.Field(&m.ID, validation.Required),
		validation.Field(&m.Name, validation.Required),
		validation.Field(&m.Quarter, validation.Required, validation.In(domain.Q1, domain.Q2, domain.Q3, domain.Q4)),
		validation.Field(&m.ActivityLevel, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&m.MarketingBudgetPct, validation.Min(0)),
		validation.Field(&m.SocialPosts, validation.Each(validation.By(validateSocialPost))),
		validation.Field(&m.BudgetBreakdown, validation.By(validateBreakdown)),
	)
}

func validateSocialPost(value interface{}) error {
	p, ok := value.(domain.SocialPost)
	if !ok {
		return errors.New("must be a social post")
	}
	if !domain.ValidPlatforms[p.Platform] {
		return fmt.Errorf("unknown platform %q", p.Platform)
	}
	if p.Text == "" {
		return errors.New("post text is required")
	}
	return nil
}

func validateBreakdown(value interface{}) error {
	b, ok := value.(domain.BudgetBreakdown)
	if !ok {
		return errors.New("must be a budget breakdown")
	}
	for _, e := range b.Entries() {
		if e.Pct < 0 || e.Pct > 100 {
			return fmt.Errorf("%s must be between 0 and 100", e.Label)
		}
	}
	return nil
}

// BudgetIssue describes a month whose breakdown does not total 100.
type BudgetIssue struct {
	MonthID string
	Month   string
	Total   int
}

// BudgetAudit lists months whose budget breakdown does not sum to 100.
// The calendar still loads and renders these months unchanged.
func BudgetAudit(months []domain.Month) []BudgetIssue {
	var issues []BudgetIssue
	for _, m := range months {
		if total := m.BudgetBreakdown.Total(); total != 100 {
			issues = append(issues, BudgetIssue{MonthID: m.ID, Month: m.Name, Total: total})
		}
	}
	return issues
}
