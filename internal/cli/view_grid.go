package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/promocal/internal/cli/formatter"
	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	cardWidth  = 36
	cardHeight = 8
)

// checklistLoadedMsg carries freshly read checklist state.
type checklistLoadedMsg struct {
	checklist domain.ChecklistState
}

// quarterSelectedMsg is sent by the quarter picker form.
type quarterSelectedMsg struct {
	quarter domain.QuarterSelector
}

// gridView shows month cards with a search box and quarter filter.
type gridView struct {
	state     *SharedState
	months    []domain.Month
	checklist domain.ChecklistState
	loaded    bool
	cursor    int

	search    textinput.Model
	searching bool
}

func newGridView(state *SharedState) *gridView {
	ti := textinput.New()
	ti.Placeholder = "search months, events, priorities"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 40
	ti.SetValue(state.Query)

	return &gridView{
		state:  state,
		search: ti,
	}
}

func (v *gridView) ID() ViewID    { return ViewGrid }
func (v *gridView) Title() string { return "Calendar" }

func (v *gridView) CapturesInput() bool { return v.searching }

func (v *gridView) ShortHelp() []key.Binding {
	if v.searching {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "quarter")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "pick quarter")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	}
}

func (v *gridView) Init() tea.Cmd {
	v.applyFilter()
	return v.loadChecklist()
}

// applyFilter recomputes the visible months from the shared filter.
func (v *gridView) applyFilter() {
	v.months = v.state.App.Calendar.Search(context.Background(), v.state.Query, v.state.Quarter)
	if v.cursor >= len(v.months) {
		v.cursor = max(len(v.months)-1, 0)
	}
}

func (v *gridView) loadChecklist() tea.Cmd {
	checklist := v.state.App.Checklist
	return func() tea.Msg {
		return checklistLoadedMsg{checklist: checklist.State(context.Background())}
	}
}

func (v *gridView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checklistLoadedMsg:
		v.checklist = msg.checklist
		v.loaded = true
		return v, nil

	case refreshViewMsg:
		v.applyFilter()
		return v, v.loadChecklist()

	case quarterSelectedMsg:
		v.state.Quarter = msg.quarter
		v.cursor = 0
		v.applyFilter()
		return v, nil

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.updateNormal(msg)
	}

	if v.searching {
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *gridView) columns() int {
	return max(1, v.state.Width/cardWidth)
}

func (v *gridView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := v.columns()
	switch msg.String() {
	case "left", "h":
		if v.cursor > 0 {
			v.cursor--
		}
	case "right", "l":
		if v.cursor < len(v.months)-1 {
			v.cursor++
		}
	case "up", "k":
		if v.cursor-cols >= 0 {
			v.cursor -= cols
		}
	case "down", "j":
		if v.cursor+cols < len(v.months) {
			v.cursor += cols
		}
	case "enter":
		if v.cursor < len(v.months) {
			return v, pushView(newDetailView(v.state, v.months[v.cursor]))
		}
	case "/":
		v.searching = true
		return v, v.search.Focus()
	case "tab":
		v.state.Quarter = v.state.Quarter.Next()
		v.cursor = 0
		v.applyFilter()
	case "f":
		return v, pushView(newQuarterPickerView(v.state.Quarter))
	case "t":
		// Flip what is on screen, which differs from the stored theme
		// while PROMOCAL_THEME overrides it.
		app, next := v.state.App, v.state.Theme.Opposite()
		return v, func() tea.Msg {
			err := app.Theme.Set(context.Background(), next)
			return themeChangedMsg{theme: next, err: err}
		}
	case "x":
		v.state.Query = ""
		v.state.Quarter = domain.AllQuarters
		v.search.SetValue("")
		v.cursor = 0
		v.applyFilter()
	}
	return v, nil
}

func (v *gridView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		v.searching = false
		v.search.Blur()
		return v, nil
	case tea.KeyEsc:
		v.searching = false
		v.search.Blur()
		v.search.SetValue("")
		v.state.Query = ""
		v.cursor = 0
		v.applyFilter()
		return v, nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	if q := v.search.Value(); q != v.state.Query {
		v.state.Query = q
		v.cursor = 0
		v.applyFilter()
	}
	return v, cmd
}

func (v *gridView) View() string {
	var b strings.Builder
	b.WriteString(v.renderFilterBar())
	b.WriteString("\n\n")

	if !v.loaded {
		b.WriteString(formatter.Dim("  Loading..."))
		return b.String()
	}
	if len(v.months) == 0 {
		b.WriteString("  " + formatter.Dim(formatter.EmptyResultMessage))
		return b.String()
	}

	cols := v.columns()
	rows := (len(v.months) + cols - 1) / cols
	visibleRows := max(1, (v.state.ContentHeight()-2)/cardHeight)
	cursorRow := v.cursor / cols
	firstRow := 0
	if cursorRow >= visibleRows {
		firstRow = cursorRow - visibleRows + 1
	}
	lastRow := min(rows, firstRow+visibleRows)

	now := v.state.Now()
	var lines []string
	for r := firstRow; r < lastRow; r++ {
		var cards []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(v.months) {
				break
			}
			m := &v.months[i]
			progress := v.checklist.Progress(m.ID, m.ActionCount())
			cards = append(cards, formatter.FormatMonthCard(m, progress, now, i == v.cursor, cardWidth))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	b.WriteString(strings.Join(lines, "\n"))
	if rows > visibleRows {
		b.WriteString("\n" + formatter.Dim(fmt.Sprintf("  rows %d-%d of %d", firstRow+1, lastRow, rows)))
	}
	return b.String()
}

func (v *gridView) renderFilterBar() string {
	var quarters []string
	for _, sel := range domain.QuarterSelectors {
		label := string(sel)
		if sel == v.state.Quarter {
			quarters = append(quarters, formatter.StyleHeader.Render("["+label+"]"))
		} else {
			quarters = append(quarters, formatter.Dim(label))
		}
	}

	search := v.search.View()
	if !v.searching && v.state.Query == "" {
		search = formatter.Dim("/ search")
	}
	count := formatter.Dim(fmt.Sprintf("%d months", len(v.months)))
	return "  " + search + "   " + strings.Join(quarters, " ") + "   " + count
}
