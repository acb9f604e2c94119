package model

// CampaignStatus is the fundraising lifecycle of a campaign
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignArchived  CampaignStatus = "archived"
)

func (s CampaignStatus) IsValid() bool {
	return s == CampaignDraft || s == CampaignActive || s == CampaignCompleted || s == CampaignArchived
}

// Currency is the donation currency a campaign is denominated in
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyNGN Currency = "NGN"
)

func (c Currency) IsValid() bool {
	return c == CurrencyUSD || c == CurrencyNGN
}

// Campaign is a fundraising campaign. ImpactDetails maps a donation amount
// (as the string shown on the donate button) to the impact statement for
// that tier. The client does not enforce CurrentAmount <= GoalAmount; the
// backend owns that, if anyone does.
type Campaign struct {
	ID               string            `json:"id,omitempty"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	GoalAmount       float64           `json:"goal_amount"`
	CurrentAmount    float64           `json:"current_amount"`
	Currency         Currency          `json:"currency"`
	Deadline         string            `json:"deadline,omitempty"` // Date format
	Status           CampaignStatus    `json:"status"`
	IsFeatured       bool              `json:"is_featured"`
	ImpactDetails    map[string]string `json:"impact_details,omitempty"`
	Category         string            `json:"category,omitempty"`
	ImageURL         string            `json:"image_url,omitempty"`
	BeneficiaryCount int               `json:"beneficiary_count,omitempty"`
	StatLabel        string            `json:"stat_label,omitempty"`
	UrgencyMessage   string            `json:"urgency_message,omitempty"`
}

// ProgressPercent returns funding progress as a percentage capped at 100.
// A zero or negative goal reports 0 rather than dividing by it.
func (c *Campaign) ProgressPercent() float64 {
	if c.GoalAmount <= 0 {
		return 0
	}
	p := c.CurrentAmount / c.GoalAmount * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
