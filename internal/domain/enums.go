package domain

import (
	"fmt"
	"strings"
)

type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

// Quarters lists the calendar quarters in order.
var Quarters = []Quarter{Q1, Q2, Q3, Q4}

// Valid reports whether q is one of Q1..Q4.
func (q Quarter) Valid() bool {
	switch q {
	case Q1, Q2, Q3, Q4:
		return true
	}
	return false
}

// QuarterSelector is a filter value: one of the four quarters or AllQuarters.
type QuarterSelector string

const AllQuarters QuarterSelector = "All"

// QuarterSelectors lists every selector in the order the filter bar shows them.
var QuarterSelectors = []QuarterSelector{AllQuarters, "Q1", "Q2", "Q3", "Q4"}

// ParseQuarterSelector accepts "all", "q1".."q4" in any case.
// An empty string selects all quarters.
func ParseQuarterSelector(s string) (QuarterSelector, error) {
	v := strings.TrimSpace(s)
	if v == "" || strings.EqualFold(v, string(AllQuarters)) {
		return AllQuarters, nil
	}
	q := Quarter(strings.ToUpper(v))
	if !q.Valid() {
		return "", fmt.Errorf("invalid quarter %q (want All, Q1, Q2, Q3 or Q4)", s)
	}
	return QuarterSelector(q), nil
}

// Includes reports whether a record in quarter q passes the selector.
func (s QuarterSelector) Includes(q Quarter) bool {
	return s == AllQuarters || Quarter(s) == q
}

// Next returns the selector after s, wrapping from Q4 back to All.
func (s QuarterSelector) Next() QuarterSelector {
	for i, sel := range QuarterSelectors {
		if sel == s {
			return QuarterSelectors[(i+1)%len(QuarterSelectors)]
		}
	}
	return AllQuarters
}

type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformTikTok    Platform = "TikTok"
	PlatformLinkedIn  Platform = "LinkedIn"
)

// ValidPlatforms is the canonical set of accepted social platform tags.
var ValidPlatforms = map[Platform]bool{
	PlatformInstagram: true,
	PlatformTikTok:    true,
	PlatformLinkedIn:  true,
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a stored value to a Theme. Only the exact string "dark"
// selects ThemeDark; anything else, including "" and "Dark", is light.
func ParseTheme(s string) Theme {
	if s == string(ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
