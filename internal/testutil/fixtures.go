package testutil

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/promocal/internal/domain"
)

// MonthOption customizes a fixture month.
type MonthOption func(*domain.Month)

func WithQuarter(q domain.Quarter) MonthOption {
	return func(m *domain.Month) {
		m.Quarter = q
	}
}

func WithActions(actions ...string) MonthOption {
	return func(m *domain.Month) {
		m.MarketingActions = actions
	}
}

func WithKeyEvents(events ...string) MonthOption {
	return func(m *domain.Month) {
		m.KeyEvents = events
	}
}

func WithBookingPriority(p string) MonthOption {
	return func(m *domain.Month) {
		m.BookingPriority = p
	}
}

func WithCritical() MonthOption {
	return func(m *domain.Month) {
		m.IsCritical = true
	}
}

func WithBudget(social, email, content, partners int) MonthOption {
	return func(m *domain.Month) {
		m.BudgetBreakdown = domain.BudgetBreakdown{
			SocialMediaAds:       social,
			EmailCampaigns:       email,
			ContentCreation:      content,
			PartnershipsOutreach: partners,
		}
	}
}

// NewTestMonth builds a complete month record named name. The id is the
// lower-cased first three letters of the name.
func NewTestMonth(name string, opts ...MonthOption) domain.Month {
	id := strings.ToLower(name)
	if len(id) > 3 {
		id = id[:3]
	}
	m := domain.Month{
		ID:                 id,
		Name:               name,
		Season:             "Test Season",
		Quarter:            domain.Q1,
		ActivityLevel:      3,
		MarketingBudgetPct: 8,
		BookingPriority:    fmt.Sprintf("%s bookings", name),
		KeyEvents:          []string{name + " Kickoff"},
		TargetAudience:     []string{"Couples"},
		ContentThemes:      []string{"Cocktails"},
		MarketingActions:   []string{"Post a reel", "Send a newsletter", "Call leads", "Update pricing"},
		SocialPosts: []domain.SocialPost{
			{Platform: domain.PlatformInstagram, Text: name + " on Instagram"},
			{Platform: domain.PlatformTikTok, Text: name + " on TikTok"},
		},
		EmailSubject:    name + " subject",
		EmailBody:       name + " body",
		BudgetBreakdown: domain.BudgetBreakdown{SocialMediaAds: 40, EmailCampaigns: 30, ContentCreation: 20, PartnershipsOutreach: 10},
		CriticalNotes:   []string{"Watch the weather"},
		ProTip:          "Answer leads fast",
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// NewTestCalendar returns a small ordered calendar: January and February
// in Q1, July in Q3, December in Q4.
func NewTestCalendar() []domain.Month {
	return []domain.Month{
		NewTestMonth("January", WithKeyEvents("New Year's Day")),
		NewTestMonth("February", WithKeyEvents("Valentine's Day")),
		NewTestMonth("July", WithQuarter(domain.Q3), WithKeyEvents("Independence Day")),
		NewTestMonth("December", WithQuarter(domain.Q4), WithKeyEvents("Christmas", "New Year's Eve"), WithCritical()),
	}
}
