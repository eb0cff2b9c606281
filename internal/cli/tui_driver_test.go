package cli

import (
	"testing"

	"github.com/alexanderramin/promocal/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
)

// TestDriver wraps teatest.Driver with inspection methods for appModel
// internals (view stack, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init()
// (which reads checklist state synchronously via in-memory SQLite).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.top()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveView returns the top view on the stack.
func (d *TestDriver) ActiveView() View {
	m := d.appModel()
	return m.top()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().stack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Grid returns the home grid view.
func (d *TestDriver) Grid() *gridView {
	return d.appModel().stack[0].(*gridView)
}

// Detail returns the active detail view, failing the test if there is none.
func (d *TestDriver) Detail() *detailView {
	d.T.Helper()
	v, ok := d.ActiveView().(*detailView)
	if !ok {
		d.T.Fatalf("active view is %T, not a detail view", d.ActiveView())
	}
	return v
}

// VisibleMonthIDs lists the ids of the months the grid currently shows.
func (d *TestDriver) VisibleMonthIDs() []string {
	months := d.Grid().months
	ids := make([]string, len(months))
	for i, m := range months {
		ids[i] = m.ID
	}
	return ids
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

func teaResize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
