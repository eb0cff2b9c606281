package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/promocal/internal/dataset"
	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	budgetBarWidth     = 10
	allocationBarWidth = 20
	checklistBarWidth  = 20
)

// FormatMonthTable renders the month list for plain CLI output.
func FormatMonthTable(months []domain.Month, state domain.ChecklistState, now time.Time) string {
	if len(months) == 0 {
		return Dim(EmptyResultMessage) + "\n"
	}

	cols := []Column{
		{Title: "ID"}, {Title: "MONTH"}, {Title: "QTR"}, {Title: "SEASON", MaxWidth: 22},
		{Title: "ACTIVITY"}, {Title: "BUDGET"}, {Title: "DONE"}, {Title: "PRIORITY", MaxWidth: 36},
		{Title: ""},
	}
	rows := make([][]string, 0, len(months))
	for i := range months {
		m := &months[i]
		rows = append(rows, []string{
			Dim(m.ID),
			Bold(m.Name),
			QuarterBadge(m.Quarter),
			m.Season,
			ActivityDots(m.ActivityLevel),
			RenderBudgetBar(m.MarketingBudgetPct, budgetBarWidth) + fmt.Sprintf(" %2d%%", m.MarketingBudgetPct),
			fmt.Sprintf("%3d%%", state.Progress(m.ID, m.ActionCount())),
			m.BookingPriority,
			monthMarkers(m, domain.IsCurrentMonth(m, now)),
		})
	}
	return RenderTable(cols, rows)
}

// FormatMonthCard renders one grid card. selected draws a highlighted border.
func FormatMonthCard(m *domain.Month, progress int, now time.Time, selected bool, width int) string {
	var b strings.Builder
	b.WriteString(Bold(m.Name) + " " + QuarterBadge(m.Quarter))
	if markers := monthMarkers(m, domain.IsCurrentMonth(m, now)); markers != "" {
		b.WriteString(" " + markers)
	}
	b.WriteString("\n")
	b.WriteString(Dim(m.Season) + "\n")
	b.WriteString("Activity " + ActivityDots(m.ActivityLevel) + "\n")
	b.WriteString("Budget   " + RenderBudgetBar(m.MarketingBudgetPct, budgetBarWidth) + fmt.Sprintf(" %d%%", m.MarketingBudgetPct) + "\n")
	b.WriteString("Actions  " + RenderCompactBar(float64(progress)/100, budgetBarWidth, false) + fmt.Sprintf(" %d%%", progress) + "\n")
	inner := max(width-4, 10)
	b.WriteString(StyleFg.Render(Truncate(m.BookingPriority, inner)))

	border := ColorDim
	if selected {
		border = ColorHeader
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(width-2, 12)).
		Render(b.String())
}

// DetailOptions controls interactive parts of the detail rendering.
type DetailOptions struct {
	State domain.ChecklistState
	Now   time.Time
	// ActionCursor highlights a checklist row; -1 for none.
	ActionCursor int
	// TargetCursor highlights a copy target key; "" for none.
	TargetCursor string
	// Copied reports which copy targets show the confirmation.
	Copied func(key string) bool
}

// FormatMonthDetail renders every section of a month.
func FormatMonthDetail(m *domain.Month, opts DetailOptions) string {
	copied := opts.Copied
	if copied == nil {
		copied = func(string) bool { return false }
	}

	var sections []string

	title := Bold(m.Name) + " " + QuarterBadge(m.Quarter) + "  " + Dim(m.Season)
	if markers := monthMarkers(m, domain.IsCurrentMonth(m, opts.Now)); markers != "" {
		title += "  " + markers
	}
	stats := strings.Join([]string{
		title,
		"",
		fmt.Sprintf("Activity level    %s  %d/5", ActivityDots(m.ActivityLevel), m.ActivityLevel),
		fmt.Sprintf("Marketing budget  %s  %d%%", RenderBudgetBar(m.MarketingBudgetPct, budgetBarWidth), m.MarketingBudgetPct),
		fmt.Sprintf("Booking priority  %s", StyleFg.Render(m.BookingPriority)),
	}, "\n")
	sections = append(sections, stats)

	sections = append(sections, Header("Key Events")+"\n"+Bullets(m.KeyEvents))
	sections = append(sections, FormatChecklist(m, opts.State, opts.ActionCursor))
	if len(m.CriticalNotes) > 0 {
		sections = append(sections, StyleRed.Bold(true).Render("CRITICAL NOTES")+"\n"+Bullets(m.CriticalNotes))
	}
	sections = append(sections, Header("Target Audience")+"\n"+Bullets(m.TargetAudience))
	sections = append(sections, Header("Content Themes")+"\n"+Bullets(m.ContentThemes))
	if m.ProTip != "" {
		sections = append(sections, StyleYellow.Bold(true).Render("PRO TIP")+"\n  "+m.ProTip)
	}
	sections = append(sections, formatTemplates(m, opts.TargetCursor, copied))
	sections = append(sections, FormatBudgetBreakdown(m.BudgetBreakdown))

	return strings.Join(sections, "\n\n")
}

// FormatChecklist renders the marketing actions with completion markers and
// a progress bar. cursor < 0 highlights nothing.
func FormatChecklist(m *domain.Month, state domain.ChecklistState, cursor int) string {
	n := m.ActionCount()
	done := state.Completed(m.ID, n)
	pct := state.Progress(m.ID, n)

	var b strings.Builder
	b.WriteString(Header("Marketing Actions") + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", RenderProgress(float64(pct)/100, checklistBarWidth), Dim(fmt.Sprintf("%d of %d done", done, n))))
	for i, action := range m.MarketingActions {
		line := fmt.Sprintf("%s %d. %s", Checkbox(state.Done(m.ID, i)), i+1, action)
		if state.Done(m.ID, i) {
			line = fmt.Sprintf("%s %d. %s", Checkbox(true), i+1, Dim(action))
		}
		if i == cursor {
			line = StyleHeader.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatTemplates(m *domain.Month, cursor string, copied func(string) bool) string {
	var social, email []string
	for _, t := range m.CopyTargets() {
		marker := "  "
		if t.Key == cursor {
			marker = StyleHeader.Render("›") + " "
		}
		label := StylePurple.Render(t.Label)
		if copied(t.Key) {
			label += " " + CopiedBadge()
		}
		entry := marker + label + "\n" + Indent(t.Text, 4)
		if t.Key == domain.TargetSubject || t.Key == domain.TargetBody {
			email = append(email, entry)
		} else {
			social = append(social, entry)
		}
	}
	return Header("Social Media Templates") + "\n" + strings.Join(social, "\n") +
		"\n\n" + Header("Email Template") + "\n" + strings.Join(email, "\n")
}

// FormatBudgetBreakdown renders the four allocation lines with bars.
func FormatBudgetBreakdown(b domain.BudgetBreakdown) string {
	entries := b.Entries()
	labelWidth := 0
	for _, e := range entries {
		labelWidth = max(labelWidth, len(e.Label))
	}
	lines := []string{Header("Budget Allocation")}
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("  %-*s  %s %3d%%", labelWidth, e.Label, RenderAllocationBar(e.Pct, allocationBarWidth), e.Pct))
	}
	return strings.Join(lines, "\n")
}

// FormatBudgetAudit reports months whose breakdown does not total 100.
func FormatBudgetAudit(issues []dataset.BudgetIssue) string {
	if len(issues) == 0 {
		return StyleGreen.Render("All budget breakdowns total 100%.") + "\n"
	}
	rows := make([][]string, len(issues))
	for i, is := range issues {
		rows[i] = []string{is.MonthID, is.Month, StyleYellow.Render(fmt.Sprintf("%d%%", is.Total))}
	}
	return RenderTable(Columns("ID", "MONTH", "TOTAL"), rows)
}
