package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/promocal/internal/calendar"
	"github.com/alexanderramin/promocal/internal/dataset"
	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/alexanderramin/promocal/internal/repository"
)

type calendarService struct {
	months []domain.Month
}

// NewCalendarService serves a fixed, already validated set of months.
func NewCalendarService(months []domain.Month) CalendarService {
	own := make([]domain.Month, len(months))
	copy(own, months)
	return &calendarService{months: own}
}

func (s *calendarService) List(ctx context.Context) []domain.Month {
	out := make([]domain.Month, len(s.months))
	copy(out, s.months)
	return out
}

func (s *calendarService) Get(ctx context.Context, id string) (*domain.Month, error) {
	for i := range s.months {
		if s.months[i].ID == id {
			m := s.months[i]
			return &m, nil
		}
	}
	return nil, fmt.Errorf("month %q: %w", id, repository.ErrNotFound)
}

func (s *calendarService) Search(ctx context.Context, query string, sel domain.QuarterSelector) []domain.Month {
	return calendar.Filter(s.months, query, sel)
}

func (s *calendarService) Audit(ctx context.Context) []dataset.BudgetIssue {
	return dataset.BudgetAudit(s.months)
}
