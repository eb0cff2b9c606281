package domain

// SocialPost is a ready-to-post template for one platform.
type SocialPost struct {
	Platform Platform `yaml:"platform" json:"platform"`
	Text     string   `yaml:"text" json:"text"`
}

// BudgetBreakdown splits a month's marketing budget across four channels.
// The fields are percentages meant to total 100; nothing enforces that.
type BudgetBreakdown struct {
	SocialMediaAds       int `yaml:"socialMediaAds" json:"socialMediaAds"`
	EmailCampaigns       int `yaml:"emailCampaigns" json:"emailCampaigns"`
	ContentCreation      int `yaml:"contentCreation" json:"contentCreation"`
	PartnershipsOutreach int `yaml:"partnershipsOutreach" json:"partnershipsOutreach"`
}

// BudgetEntry is one labelled line of a BudgetBreakdown.
type BudgetEntry struct {
	Label string
	Pct   int
}

// Entries returns the breakdown in display order.
func (b BudgetBreakdown) Entries() []BudgetEntry {
	return []BudgetEntry{
		{Label: "Social Media Ads", Pct: b.SocialMediaAds},
		{Label: "Email Campaigns", Pct: b.EmailCampaigns},
		{Label: "Content Creation", Pct: b.ContentCreation},
		{Label: "Partnerships Outreach", Pct: b.PartnershipsOutreach},
	}
}

// Total returns the sum of all four percentages.
func (b BudgetBreakdown) Total() int {
	return b.SocialMediaAds + b.EmailCampaigns + b.ContentCreation + b.PartnershipsOutreach
}

// Month is one static entry of the marketing calendar.
type Month struct {
	ID                 string          `yaml:"id" json:"id"`
	Name               string          `yaml:"month" json:"month"`
	Season             string          `yaml:"season" json:"season"`
	Quarter            Quarter         `yaml:"quarter" json:"quarter"`
	ActivityLevel      int             `yaml:"activityLevel" json:"activityLevel"`
	MarketingBudgetPct int             `yaml:"marketingBudgetPct" json:"marketingBudgetPct"`
	BookingPriority    string          `yaml:"bookingPriority" json:"bookingPriority"`
	KeyEvents          []string        `yaml:"keyEvents" json:"keyEvents"`
	TargetAudience     []string        `yaml:"targetAudience" json:"targetAudience"`
	ContentThemes      []string        `yaml:"contentThemes" json:"contentThemes"`
	MarketingActions   []string        `yaml:"marketingActions" json:"marketingActions"`
	SocialPosts        []SocialPost    `yaml:"socialPosts" json:"socialPosts"`
	EmailSubject       string          `yaml:"emailSubject" json:"emailSubject"`
	EmailBody          string          `yaml:"emailBody" json:"emailBody"`
	BudgetBreakdown    BudgetBreakdown `yaml:"budgetBreakdown" json:"budgetBreakdown"`
	CriticalNotes      []string        `yaml:"criticalNotes" json:"criticalNotes"`
	ProTip             string          `yaml:"proTip" json:"proTip"`
	IsCritical         bool            `yaml:"isCritical,omitempty" json:"isCritical,omitempty"`
}

// ActionCount returns the number of checklist actions for the month.
func (m *Month) ActionCount() int {
	return len(m.MarketingActions)
}
