package cli

import (
	"time"

	"github.com/alexanderramin/promocal/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Filter selection. Transient: a new session starts unfiltered.
	Query   string
	Quarter domain.QuarterSelector

	// Theme is the presentation-wide theme flag.
	Theme domain.Theme

	// Status is a one-line message shown above the key hints, e.g. a
	// failed save. Cleared on the next key press.
	Status string

	// Terminal dimensions
	Width  int
	Height int
}

// Now returns the clock used for the current-month badge.
func (s *SharedState) Now() time.Time {
	return s.App.now()
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (3 lines: separator + status + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
