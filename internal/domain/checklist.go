package domain

import (
	"math"
	"strconv"
)

// ChecklistKey builds the storage key for one action, e.g. "jan-2".
func ChecklistKey(monthID string, index int) string {
	return monthID + "-" + strconv.Itoa(index)
}

// ChecklistState maps checklist keys to completion. Missing keys are not done.
type ChecklistState map[string]bool

// Clone returns an independent copy. A nil receiver yields an empty map.
func (s ChecklistState) Clone() ChecklistState {
	out := make(ChecklistState, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Done reports whether the action at index is marked complete.
func (s ChecklistState) Done(monthID string, index int) bool {
	return s[ChecklistKey(monthID, index)]
}

// Toggled returns a copy of s with the given action flipped.
func (s ChecklistState) Toggled(monthID string, index int) ChecklistState {
	next := s.Clone()
	key := ChecklistKey(monthID, index)
	next[key] = !s[key]
	return next
}

// Completed counts the done actions among indices 0..actionCount-1.
func (s ChecklistState) Completed(monthID string, actionCount int) int {
	n := 0
	for i := 0; i < actionCount; i++ {
		if s.Done(monthID, i) {
			n++
		}
	}
	return n
}

// Progress returns the rounded completion percentage for a month.
// Returns 0 when the month has no actions.
func (s ChecklistState) Progress(monthID string, actionCount int) int {
	if actionCount <= 0 {
		return 0
	}
	done := s.Completed(monthID, actionCount)
	return int(math.Round(float64(done) / float64(actionCount) * 100))
}
