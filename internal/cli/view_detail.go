package cli

import (
	"context"

	"github.com/alexanderramin/promocal/internal/cli/formatter"
	"github.com/alexanderramin/promocal/internal/clipboard"
	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// detailView is the overlay for one month: checklist, templates, budget.
type detailView struct {
	state     *SharedState
	month     domain.Month
	targets   []domain.CopyTarget
	checklist domain.ChecklistState

	actionCursor int
	targetCursor int
	indicators   map[string]*clipboard.Indicator

	vp viewport.Model
}

func newDetailView(state *SharedState, m domain.Month) *detailView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	vp.KeyMap = detailViewportKeyMap()
	vp.MouseWheelEnabled = true

	targets := m.CopyTargets()
	indicators := make(map[string]*clipboard.Indicator, len(targets))
	for _, t := range targets {
		indicators[t.Key] = &clipboard.Indicator{}
	}

	return &detailView{
		state:      state,
		month:      m,
		targets:    targets,
		indicators: indicators,
		vp:         vp,
	}
}

func (v *detailView) ID() ViewID    { return ViewDetail }
func (v *detailView) Title() string { return v.month.Name }

func (v *detailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "action")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "template")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
	}
}

func (v *detailView) Init() tea.Cmd {
	v.syncChecklist()
	return nil
}

// syncChecklist copies the service's current map. The detail view reads and
// toggles inside Update so its map can never fall behind the store.
func (v *detailView) syncChecklist() {
	v.checklist = v.state.App.Checklist.State(context.Background())
}

func (v *detailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = max(msg.Width, 20)
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case checklistLoadedMsg, refreshViewMsg:
		v.syncChecklist()
		return v, nil

	case clipboard.CopiedMsg:
		ind, ok := v.indicators[msg.Target]
		if !ok || !msg.Result.Copied {
			return v, nil
		}
		return v, clipboard.ExpireAfter(msg.Target, ind.Mark())

	case clipboard.ExpiredMsg:
		if ind, ok := v.indicators[msg.Target]; ok {
			ind.Expire(msg.Token)
		}
		return v, nil

	case tea.KeyMsg:
		return v.updateKey(msg)
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *detailView) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j":
		if v.actionCursor < v.month.ActionCount()-1 {
			v.actionCursor++
		}
		return v, nil
	case "k":
		if v.actionCursor > 0 {
			v.actionCursor--
		}
		return v, nil
	case " ", "space":
		if v.month.ActionCount() == 0 {
			return v, nil
		}
		state, err := v.state.App.Checklist.Toggle(context.Background(), v.month.ID, v.actionCursor)
		if err != nil {
			return v, setStatus("Could not save checklist: " + err.Error())
		}
		v.checklist = state
		return v, nil
	case "tab":
		v.targetCursor = (v.targetCursor + 1) % len(v.targets)
		return v, nil
	case "shift+tab":
		v.targetCursor = (v.targetCursor - 1 + len(v.targets)) % len(v.targets)
		return v, nil
	case "c":
		t := v.targets[v.targetCursor]
		return v, v.state.App.Clipboard.CopyCmd(t.Key, t.Text)
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// copied reports whether target's confirmation is showing.
func (v *detailView) copied(target string) bool {
	ind, ok := v.indicators[target]
	return ok && ind.Copied()
}

func (v *detailView) View() string {
	content := formatter.FormatMonthDetail(&v.month, formatter.DetailOptions{
		State:        v.checklist,
		Now:          v.state.Now(),
		ActionCursor: v.actionCursor,
		TargetCursor: v.targets[v.targetCursor].Key,
		Copied:       v.copied,
	})
	if v.state.Height == 0 {
		return content
	}
	v.vp.SetContent(formatter.Indent(content, 2))
	return v.vp.View()
}

// detailViewportKeyMap leaves j, k and space free for the checklist.
func detailViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
