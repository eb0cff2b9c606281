package domain

import "time"

// IsCurrentMonth reports whether m is the calendar month containing now.
// It compares display names, so it must be evaluated per render.
func IsCurrentMonth(m *Month, now time.Time) bool {
	return now.Month().String() == m.Name
}
