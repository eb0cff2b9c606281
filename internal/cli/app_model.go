package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/promocal/internal/cli/formatter"
	"github.com/alexanderramin/promocal/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model. The month grid sits at the bottom
// of the stack; the month detail and the quarter picker are pushed over it.
type appModel struct {
	state    *SharedState
	stack    []View
	quitting bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:     app,
		Quarter: domain.AllQuarters,
		Theme:   app.effectiveTheme(context.Background()),
	}
	formatter.ApplyTheme(state.Theme)

	return appModel{
		state: state,
		stack: []View{newGridView(state)},
	}
}

// top returns the view receiving input, or nil for an empty stack.
func (m *appModel) top() View {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m *appModel) forwardToTop(msg tea.Msg) tea.Cmd {
	v := m.top()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.stack[len(m.stack)-1] = updated.(View)
	return cmd
}

func (m appModel) Init() tea.Cmd {
	if v := m.top(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.state.Width, m.state.Height = msg.Width, msg.Height
		return m, m.broadcast(msg)

	case pushViewMsg:
		m.stack = append(m.stack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		return m, m.pop(true)

	case refreshViewMsg, checklistLoadedMsg:
		return m, m.broadcast(msg)

	case formDoneMsg:
		m.pop(false)
		if msg.result == nil {
			return m, nil
		}
		result := msg.result
		return m, func() tea.Msg { return result }

	case themeChangedMsg:
		if msg.err != nil {
			m.state.Status = "Could not save theme: " + msg.err.Error()
			return m, nil
		}
		m.state.Theme = msg.theme
		formatter.ApplyTheme(msg.theme)
		// Cards and detail text are re-rendered in the new palette.
		return m, m.broadcast(refreshViewMsg{})

	case statusMsg:
		m.state.Status = msg.text
		return m, nil
	}

	return m, m.forwardToTop(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	m.state.Status = ""

	// A focused search box or form gets q and esc as ordinary input.
	if viewCapturesInput(m.top()) {
		return m, m.forwardToTop(msg)
	}

	if msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.Type == tea.KeyEsc && len(m.stack) > 1 {
		return m, m.pop(true)
	}
	return m, m.forwardToTop(msg)
}

// pop closes the top view. The grid is never popped. With refresh set,
// the newly exposed view reloads stored state.
func (m *appModel) pop(refresh bool) tea.Cmd {
	if len(m.stack) <= 1 {
		return nil
	}
	m.stack = m.stack[:len(m.stack)-1]
	if !refresh {
		return nil
	}
	return m.forwardToTop(refreshViewMsg{})
}

// broadcast delivers msg to every view on the stack, bottom first.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.stack))
	for i, v := range m.stack {
		updated, cmd := v.Update(msg)
		m.stack[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	body := ""
	if v := m.top(); v != nil {
		body = v.View()
	}
	out := m.header() + "\n" + body + "\n" + m.footer()

	// Fill the screen so lines from a taller previous frame are overwritten.
	if m.state.Height > 0 {
		if n := strings.Count(out, "\n") + 1; n < m.state.Height {
			out += strings.Repeat("\n", m.state.Height-n)
		}
	}
	return out
}

func (m *appModel) rule() string {
	return formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
}

// header is the app name, the breadcrumb of view titles and the theme.
func (m *appModel) header() string {
	line := formatter.StylePurple.Bold(true).Render("promocal")

	titles := make([]string, 0, len(m.stack))
	for _, v := range m.stack {
		if t := v.Title(); t != "" {
			titles = append(titles, t)
		}
	}
	if len(titles) > 0 {
		line += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(titles, " › "))
	}
	line += "  " + formatter.Dim("["+string(m.state.Theme)+"]")
	return line + "\n" + m.rule()
}

// footer is the status line and the key hints of the top view.
func (m *appModel) footer() string {
	status := ""
	if m.state.Status != "" {
		status = formatter.StyleRed.Render(m.state.Status)
	}

	var hints []string
	if v := m.top(); v != nil {
		for _, b := range v.ShortHelp() {
			h := b.Help()
			hints = append(hints, formatter.Dim(h.Key+": "+h.Desc))
		}
	}
	if len(m.stack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	hints = append(hints, formatter.Dim("q: quit"))

	return m.rule() + "\n" + status + "\n" + strings.Join(hints, "  ")
}

// viewCapturesInput reports whether v takes every key, including the
// global q and esc bindings.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	if v.ID() == ViewForm {
		return true
	}
	c, ok := v.(inputCapturer)
	return ok && c.CapturesInput()
}
