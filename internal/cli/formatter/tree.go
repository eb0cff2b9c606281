package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	// Done dims the title behind a check mark; Active highlights it.
	Done   bool
	Active bool
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders TreeItems as an indented tree with box-drawing
// connectors. Detail badges are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		switch {
		case item.Done:
			title = StyleGreen.Render("✔ ") + Dim(title)
		case item.Active:
			title = StyleYellow.Bold(true).Render("▶ " + title)
		}

		lines[idx].content = prefix + title
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Detail))
		}
		maxContentWidth = max(maxContentWidth, lipgloss.Width(lines[idx].content))
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := maxContentWidth - lipgloss.Width(li.content)
		b.WriteString(li.content + strings.Repeat(" ", max(pad, 0)) + "  " + li.badge + "\n")
	}
	return b.String()
}

// FormatQuarterTree groups months under their quarter. Months whose
// checklist is complete are checked off; the current month is highlighted.
func FormatQuarterTree(months []domain.Month, state domain.ChecklistState, now time.Time) string {
	if len(months) == 0 {
		return Dim(EmptyResultMessage) + "\n"
	}

	var items []TreeItem
	for _, q := range domain.Quarters {
		var inQuarter []domain.Month
		for _, m := range months {
			if m.Quarter == q {
				inQuarter = append(inQuarter, m)
			}
		}
		if len(inQuarter) == 0 {
			continue
		}
		items = append(items, TreeItem{Title: QuarterBadge(q), Detail: fmt.Sprintf("%d months", len(inQuarter))})
		for i := range inQuarter {
			m := &inQuarter[i]
			n := m.ActionCount()
			items = append(items, TreeItem{
				Title:  m.Name + " " + Dim(m.Season),
				Level:  1,
				IsLast: i == len(inQuarter)-1,
				Done:   n > 0 && state.Completed(m.ID, n) == n,
				Active: domain.IsCurrentMonth(m, now),
				Detail: fmt.Sprintf("%d/%d", state.Completed(m.ID, n), n),
			})
		}
	}
	return RenderTree(items)
}
