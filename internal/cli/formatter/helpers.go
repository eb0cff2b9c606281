package formatter

import (
	"strings"

	"github.com/alexanderramin/promocal/internal/domain"
)

// EmptyResultMessage is shown when a search and filter match no months.
const EmptyResultMessage = "No months found. Try adjusting your search or filter."

// ActivityDots renders an activity level as five dots, e.g. "●●●○○".
func ActivityDots(level int) string {
	level = min(max(level, 0), 5)
	filled := strings.Repeat("●", level)
	empty := strings.Repeat("○", 5-level)
	return ActivityStyle(level).Render(filled) + StyleDim.Render(empty)
}

// CurrentBadge marks the month matching today's date.
func CurrentBadge() string {
	return StyleGreen.Bold(true).Render("● CURRENT")
}

// CriticalBadge marks months flagged as critical.
func CriticalBadge() string {
	return StyleRed.Bold(true).Render("▲ CRITICAL")
}

// CopiedBadge is the transient confirmation after a clipboard copy.
func CopiedBadge() string {
	return StyleGreen.Render("✔ Copied!")
}

// Bullets renders one "• item" line per entry.
func Bullets(items []string) string {
	if len(items) == 0 {
		return Dim("  (none)")
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "  " + StyleDim.Render("•") + " " + item
	}
	return strings.Join(lines, "\n")
}

// Checkbox renders a checklist marker.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// Indent prefixes every line of s with n spaces.
func Indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}

func monthMarkers(m *domain.Month, current bool) string {
	var parts []string
	if current {
		parts = append(parts, CurrentBadge())
	}
	if m.IsCritical {
		parts = append(parts, CriticalBadge())
	}
	return strings.Join(parts, " ")
}
