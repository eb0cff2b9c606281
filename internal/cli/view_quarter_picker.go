package cli

import (
	"github.com/alexanderramin/promocal/internal/cli/formatter"
	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var quarterDescriptions = map[domain.QuarterSelector]string{
	domain.AllQuarters: "All months",
	"Q1":               "Jan-Mar: wedding planning, Valentine's, spring events",
	"Q2":               "Apr-Jun: peak wedding booking season",
	"Q3":               "Jul-Sep: summer events and corporate planning",
	"Q4":               "Oct-Dec: holiday parties and year-end rush",
}

// quarterPickerView is a one-question huh form pushed over the grid. It
// owns the keyboard until it finishes; the chosen quarter comes back to
// the grid as a quarterSelectedMsg.
type quarterPickerView struct {
	form   *huh.Form
	choice domain.QuarterSelector
}

func newQuarterPickerView(current domain.QuarterSelector) *quarterPickerView {
	v := &quarterPickerView{choice: current}

	options := make([]huh.Option[domain.QuarterSelector], 0, len(domain.QuarterSelectors))
	for _, sel := range domain.QuarterSelectors {
		options = append(options, huh.NewOption(string(sel)+"  "+quarterDescriptions[sel], sel))
	}
	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.QuarterSelector]().
				Title("Which quarter?").
				Options(options...).
				Value(&v.choice),
		),
	).WithTheme(pickerTheme()).WithShowHelp(false)

	return v
}

// pickerTheme colors the form from the active palette.
func pickerTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred = t.Focused
	return t
}

func (v *quarterPickerView) ID() ViewID    { return ViewForm }
func (v *quarterPickerView) Title() string { return "Quarter" }

func (v *quarterPickerView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "choose")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *quarterPickerView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *quarterPickerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		return v, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, finishForm(nil)
		}
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		return v, finishForm(quarterSelectedMsg{quarter: v.choice})
	case huh.StateAborted:
		return v, finishForm(nil)
	}
	return v, cmd
}

func (v *quarterPickerView) View() string {
	return "\n" + v.form.View()
}
