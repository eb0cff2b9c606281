package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/promocal/internal/cli/formatter"
	"github.com/alexanderramin/promocal/internal/clipboard"
	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/alexanderramin/promocal/internal/service"
	"github.com/alexanderramin/promocal/internal/teatest"
	"github.com/alexanderramin/promocal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_GridLoadsOnStartup(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewGrid, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.True(t, d.Grid().loaded)
	assert.Len(t, d.VisibleMonthIDs(), 12)

	out := stripANSI(d.View())
	assert.Contains(t, out, "12 months")
	assert.Contains(t, out, "January")
	assert.Contains(t, out, "CURRENT")
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("q")
	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("ctrl+c")
	assert.True(t, d.IsQuitting())
}

func TestTUI_SearchFiltersLive(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("/")
	require.True(t, d.Grid().searching)
	d.Type("valentine")
	assert.Equal(t, []string{"feb"}, d.VisibleMonthIDs())

	d.Press("enter")
	assert.False(t, d.Grid().searching)
	assert.Equal(t, "valentine", d.State().Query)
	assert.Equal(t, []string{"feb"}, d.VisibleMonthIDs())
}

func TestTUI_SearchTypingQDoesNotQuit(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("/")
	d.Type("q")
	assert.False(t, d.IsQuitting())
	assert.Equal(t, "q", d.State().Query)
}

func TestTUI_SearchWithoutMatchesShowsEmptyMessage(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("/")
	d.Type("gold")
	assert.Empty(t, d.VisibleMonthIDs())
	assert.Contains(t, stripANSI(d.View()), formatter.EmptyResultMessage)

	// Enter on an empty grid opens nothing.
	d.Press("enter")
	d.Press("enter")
	assert.Equal(t, ViewGrid, d.ActiveViewID())
}

func TestTUI_SearchEscClears(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("/")
	d.Type("bridal")
	require.NotEmpty(t, d.VisibleMonthIDs())
	d.Press("esc")

	assert.False(t, d.Grid().searching)
	assert.Empty(t, d.State().Query)
	assert.Len(t, d.VisibleMonthIDs(), 12)
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_TabCyclesQuarter(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("tab")
	assert.Equal(t, domain.QuarterSelector("Q1"), d.State().Quarter)
	assert.Equal(t, []string{"jan", "feb", "mar"}, d.VisibleMonthIDs())

	d.Press("tab", "tab", "tab")
	assert.Equal(t, []string{"oct", "nov", "dec"}, d.VisibleMonthIDs())

	d.Press("tab")
	assert.Equal(t, domain.AllQuarters, d.State().Quarter)
	assert.Len(t, d.VisibleMonthIDs(), 12)
}

func TestTUI_SearchAndQuarterCombine(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("/")
	d.Type("holiday")
	d.Press("enter")
	all := d.VisibleMonthIDs()
	require.NotEmpty(t, all)

	d.Press("tab") // Q1
	d.Press("tab") // Q2
	d.Press("tab") // Q3
	for _, id := range d.VisibleMonthIDs() {
		assert.Contains(t, []string{"jul", "aug", "sep"}, id)
	}

	d.Press("x")
	assert.Empty(t, d.State().Query)
	assert.Equal(t, domain.AllQuarters, d.State().Quarter)
	assert.Len(t, d.VisibleMonthIDs(), 12)
}

func TestTUI_CursorMovesAcrossCards(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	// 120 columns fit three 36-wide cards per row.
	d.Press("right")
	assert.Equal(t, 1, d.Grid().cursor)
	d.Press("down")
	assert.Equal(t, 4, d.Grid().cursor)
	d.Press("k")
	assert.Equal(t, 1, d.Grid().cursor)
	d.Press("h")
	d.Press("h")
	assert.Equal(t, 0, d.Grid().cursor)
}

func TestTUI_EnterOpensDetailAndEscReturns(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("right")
	d.Press("enter")
	require.Equal(t, ViewDetail, d.ActiveViewID())
	assert.Equal(t, "feb", d.Detail().month.ID)

	out := stripANSI(d.View())
	assert.Contains(t, out, "Calendar › February")
	assert.Contains(t, out, "MARKETING ACTIONS")

	d.Press("esc")
	assert.Equal(t, ViewGrid, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_DetailToggleUpdatesAndPersists(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("enter") // January
	d.Press("space", "j", "j", "space")

	detail := d.Detail()
	assert.True(t, detail.checklist.Done("jan", 0))
	assert.False(t, detail.checklist.Done("jan", 1))
	assert.True(t, detail.checklist.Done("jan", 2))
	assert.Contains(t, stripANSI(d.View()), "2 of 4 done")

	// The stored state survives a fresh service reading the same store.
	assert.Equal(t, 50, app.Checklist.Progress(context.Background(), "jan", 4))

	d.Press("esc")
	assert.Equal(t, 50, d.Grid().checklist.Progress("jan", 4), "grid refreshes after pop")
}

func TestTUI_DetailRapidTogglesMatchStore(t *testing.T) {
	ctx := context.Background()
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("enter") // January
	before := app.Checklist.State(ctx)

	detail := d.Detail()
	_, first := detail.Update(teatest.Key("space"))
	_, second := detail.Update(teatest.Key("space"))
	assert.Nil(t, first, "toggle completes inside Update")
	assert.Nil(t, second, "toggle completes inside Update")

	stored := app.Checklist.State(ctx)
	assert.False(t, stored.Done("jan", 0))
	assert.Equal(t, stored, d.Detail().checklist)

	// A load issued before the toggles and delivered after them is ignored.
	d.Send(checklistLoadedMsg{checklist: before.Toggled("jan", 0)})
	assert.False(t, d.Detail().checklist.Done("jan", 0))
	assert.Equal(t, app.Checklist.State(ctx), d.Detail().checklist)
}

func TestTUI_DetailToggleFailureShowsStatus(t *testing.T) {
	app := testApp(t)
	store := testutil.NewFailingStore(false, true)
	app.Checklist = service.NewChecklistService(store)
	d := NewTestDriver(t, app)

	d.Press("enter")
	d.Press("space")

	assert.False(t, d.Detail().checklist.Done("jan", 0))
	assert.Contains(t, d.State().Status, "Could not save checklist")
	assert.Contains(t, stripANSI(d.View()), "Could not save checklist")
}

func TestTUI_DetailCopyShowsConfirmationUntilExpired(t *testing.T) {
	app, clip := testAppWithClipboard(t)
	d := NewTestDriver(t, app)

	d.Press("enter") // January
	d.Send(teaResize(120, 200))
	d.Press("tab") // second social post
	skipped := d.Skipped
	d.Press("c")
	assert.Equal(t, skipped+1, d.Skipped, "confirmation reset timer scheduled")

	jan, err := app.Calendar.Get(context.Background(), "jan")
	require.NoError(t, err)
	assert.Equal(t, []string{jan.SocialPosts[1].Text}, clip.Texts())

	key := domain.SocialTarget(1)
	detail := d.Detail()
	assert.True(t, detail.copied(key))
	assert.False(t, detail.copied(domain.SocialTarget(0)))
	assert.Contains(t, stripANSI(d.View()), "Copied!")

	d.Send(clipboard.ExpiredMsg{Target: key, Token: 1})
	assert.False(t, d.Detail().copied(key))
	assert.NotContains(t, stripANSI(d.View()), "Copied!")
}

func TestTUI_DetailCopyAgainOutlivesFirstTimer(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("enter")
	d.Press("shift+tab") // wraps to the email body
	d.Press("c")
	d.Press("c")

	d.Send(clipboard.ExpiredMsg{Target: domain.TargetBody, Token: 1})
	assert.True(t, d.Detail().copied(domain.TargetBody), "stale timer leaves the newer confirmation")

	d.Send(clipboard.ExpiredMsg{Target: domain.TargetBody, Token: 2})
	assert.False(t, d.Detail().copied(domain.TargetBody))
}

func TestTUI_DetailCopyFailureShowsNoConfirmation(t *testing.T) {
	app, clip := testAppWithClipboard(t)
	clip.err = errors.New("no display")
	d := NewTestDriver(t, app)

	d.Press("enter")
	d.Send(teaResize(120, 200))
	d.Press("c")

	assert.False(t, d.Detail().copied(domain.SocialTarget(0)))
	assert.NotContains(t, stripANSI(d.View()), "Copied!")
}

func TestTUI_ThemeToggle(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	require.Equal(t, domain.ThemeLight, d.State().Theme)

	d.Press("t")
	assert.Equal(t, domain.ThemeDark, d.State().Theme)
	assert.Equal(t, domain.ThemeDark, formatter.ActiveTheme())
	assert.Equal(t, domain.ThemeDark, app.Theme.Load(context.Background()))
	assert.Contains(t, stripANSI(d.View()), "[dark]")

	d.Press("t")
	assert.Equal(t, domain.ThemeLight, d.State().Theme)
}

func TestTUI_ThemeToggleFlipsOverriddenTheme(t *testing.T) {
	ctx := context.Background()
	app := testApp(t)
	app.ThemeOverride = domain.ThemeDark
	d := NewTestDriver(t, app)
	require.Equal(t, domain.ThemeDark, d.State().Theme)
	require.Equal(t, domain.ThemeLight, app.Theme.Load(ctx))

	d.Press("t")
	assert.Equal(t, domain.ThemeLight, d.State().Theme)
	assert.Equal(t, domain.ThemeLight, formatter.ActiveTheme())
	assert.Equal(t, domain.ThemeLight, app.Theme.Load(ctx))

	d.Press("t")
	assert.Equal(t, domain.ThemeDark, d.State().Theme)
	assert.Equal(t, domain.ThemeDark, app.Theme.Load(ctx))
}

func TestTUI_QuarterPickerPushAndCancel(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press("f")
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())

	// q is captured by the form instead of quitting.
	d.Press("q")
	assert.False(t, d.IsQuitting())

	d.Press("esc")
	assert.Equal(t, ViewGrid, d.ActiveViewID())
	assert.Equal(t, domain.AllQuarters, d.State().Quarter)
}

func TestTUI_QuarterSelectedMsgFilters(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Send(quarterSelectedMsg{quarter: "Q2"})
	assert.Equal(t, []string{"apr", "may", "jun"}, d.VisibleMonthIDs())
}

func TestTUI_WindowResizePropagation(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("enter")

	d.Send(teaResize(80, 24))
	assert.Equal(t, 80, d.State().Width)
	assert.Equal(t, 24, d.State().Height)
	assert.Equal(t, 80, d.Detail().vp.Width)
	assert.Equal(t, 19, d.Detail().vp.Height)
}
