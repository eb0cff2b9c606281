package cli

import (
	"github.com/alexanderramin/promocal/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// refreshViewMsg asks every view on the stack to reload stored state.
type refreshViewMsg struct{}

// formDoneMsg closes a form view. A non-nil result is delivered to the
// view underneath, which is not refreshed.
type formDoneMsg struct {
	result tea.Msg
}

// themeChangedMsg reports the result of a theme toggle.
type themeChangedMsg struct {
	theme domain.Theme
	err   error
}

// statusMsg sets the transient status line.
type statusMsg struct {
	text string
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func finishForm(result tea.Msg) tea.Cmd {
	return func() tea.Msg { return formDoneMsg{result: result} }
}

func setStatus(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}
