package calendar

import (
	"testing"

	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMonths() []domain.Month {
	return []domain.Month{
		{ID: "jan", Name: "January", Quarter: domain.Q1, BookingPriority: "Lock in spring weddings", KeyEvents: []string{"New Year's Day", "Dry January"}},
		{ID: "feb", Name: "February", Quarter: domain.Q1, BookingPriority: "Valentine's pop-ups", KeyEvents: []string{"Valentine's Day", "Super Bowl"}},
		{ID: "may", Name: "May", Quarter: domain.Q2, BookingPriority: "Graduation parties", KeyEvents: []string{"Mother's Day", "Memorial Day"}},
		{ID: "jul", Name: "July", Quarter: domain.Q3, BookingPriority: "Corporate summer socials", KeyEvents: []string{"Independence Day"}},
		{ID: "dec", Name: "December", Quarter: domain.Q4, BookingPriority: "Holiday parties", KeyEvents: []string{"Christmas", "New Year's Eve"}},
	}
}

func ids(months []domain.Month) []string {
	out := make([]string, 0, len(months))
	for _, m := range months {
		out = append(out, m.ID)
	}
	return out
}

func TestFilter_AllAndEmptyQueryReturnsEverything(t *testing.T) {
	got := Filter(sampleMonths(), "", domain.AllQuarters)
	assert.Equal(t, []string{"jan", "feb", "may", "jul", "dec"}, ids(got))
}

func TestFilter_QuarterOnly(t *testing.T) {
	got := Filter(sampleMonths(), "", "Q1")
	assert.Equal(t, []string{"jan", "feb"}, ids(got))
}

func TestFilter_MatchesNameEventsAndPriority(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"jan", []string{"jan"}},                 // name
		{"VALENTINE", []string{"feb"}},           // events + priority, case-insensitive
		{"new year", []string{"jan", "dec"}},     // event substring, order preserved
		{"parties", []string{"may", "dec"}},      // priority
		{"ary", []string{"jan", "feb"}},          // substring inside a word
		{"day new", []string{}},                  // not token based
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(sampleMonths(), tt.query, domain.AllQuarters)))
		})
	}
}

func TestFilter_QueryAndQuarterCombine(t *testing.T) {
	got := Filter(sampleMonths(), "new year", "Q4")
	assert.Equal(t, []string{"dec"}, ids(got))
}

func TestFilter_NoMatchIsEmptyNotNil(t *testing.T) {
	got := Filter(sampleMonths(), "gold", domain.AllQuarters)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = Filter(nil, "", domain.AllQuarters)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_SoundAndComplete(t *testing.T) {
	months := sampleMonths()
	queries := []string{"", "a", "day", "party", "q", "new", "JULY", "zzz"}

	for _, q := range queries {
		for _, sel := range domain.QuarterSelectors {
			got := Filter(months, q, sel)
			in := make(map[string]bool, len(got))
			for i := range got {
				in[got[i].ID] = true
				assert.True(t, Matches(&got[i], q, sel), "query=%q sel=%s id=%s should match", q, sel, got[i].ID)
			}
			for i := range months {
				if !in[months[i].ID] {
					assert.False(t, Matches(&months[i], q, sel), "query=%q sel=%s id=%s should not match", q, sel, months[i].ID)
				}
			}
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	months := sampleMonths()
	for _, q := range []string{"", "day", "new year", "gold"} {
		for _, sel := range domain.QuarterSelectors {
			once := Filter(months, q, sel)
			twice := Filter(once, q, sel)
			assert.Equal(t, ids(once), ids(twice), "query=%q sel=%s", q, sel)
		}
	}
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	months := sampleMonths()
	got := Filter(months, "", domain.AllQuarters)
	got[0].Name = "changed"
	assert.Equal(t, "January", months[0].Name)
}
