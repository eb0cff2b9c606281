// Package calendar holds the pure month-selection logic behind the grid.
package calendar

import (
	"strings"

	"github.com/alexanderramin/promocal/internal/domain"
)

// Filter returns the months that pass both the quarter selector and the
// search query, in source order. The result is never nil: an empty slice
// means "filtered, nothing matched".
func Filter(months []domain.Month, query string, sel domain.QuarterSelector) []domain.Month {
	q := strings.ToLower(query)
	out := make([]domain.Month, 0, len(months))
	for i := range months {
		if matches(&months[i], q, sel) {
			out = append(out, months[i])
		}
	}
	return out
}

// Matches reports whether a single month passes the filter.
func Matches(m *domain.Month, query string, sel domain.QuarterSelector) bool {
	return matches(m, strings.ToLower(query), sel)
}

// matches expects lowerQuery to be lower-cased already.
func matches(m *domain.Month, lowerQuery string, sel domain.QuarterSelector) bool {
	if !sel.Includes(m.Quarter) {
		return false
	}
	if lowerQuery == "" {
		return true
	}
	if containsFold(m.Name, lowerQuery) || containsFold(m.BookingPriority, lowerQuery) {
		return true
	}
	for _, e := range m.KeyEvents {
		if containsFold(e, lowerQuery) {
			return true
		}
	}
	return false
}

func containsFold(s, lowerSub string) bool {
	return strings.Contains(strings.ToLower(s), lowerSub)
}
