package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBudgetBreakdown_EntriesAndTotal(t *testing.T) {
	b := BudgetBreakdown{SocialMediaAds: 40, EmailCampaigns: 25, ContentCreation: 20, PartnershipsOutreach: 15}

	entries := b.Entries()
	assert.Len(t, entries, 4)
	assert.Equal(t, "Social Media Ads", entries[0].Label)
	assert.Equal(t, 15, entries[3].Pct)
	assert.Equal(t, 100, b.Total())
}

func TestBudgetBreakdown_TotalNotNormalized(t *testing.T) {
	b := BudgetBreakdown{SocialMediaAds: 50, EmailCampaigns: 30, ContentCreation: 30, PartnershipsOutreach: 10}
	assert.Equal(t, 120, b.Total())
}

func TestIsCurrentMonth(t *testing.T) {
	m := &Month{ID: "mar", Name: "March"}

	assert.True(t, IsCurrentMonth(m, time.Date(2026, time.March, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, IsCurrentMonth(m, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonthActionCount(t *testing.T) {
	m := &Month{MarketingActions: []string{"a", "b"}}
	assert.Equal(t, 2, m.ActionCount())
}
