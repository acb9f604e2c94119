package model

// HomeStatus is the editorial lifecycle of a sponsorship home record.
// It is deliberately independent of IsActive: Status controls whether the
// home appears on the public site, IsActive records whether the partnership
// is currently operating. Neither is derived from the other.
type HomeStatus string

const (
	HomeActive   HomeStatus = "active"
	HomeInactive HomeStatus = "inactive"
)

func (s HomeStatus) IsValid() bool {
	return s == HomeActive || s == HomeInactive
}

// SponsorshipHome is an orphanage or widows' home the foundation supports
type SponsorshipHome struct {
	ID                string     `json:"id,omitempty"`
	Name              string     `json:"name"`
	Location          string     `json:"location"`
	OrphanCount       int        `json:"orphan_count,omitempty"`
	AgeRange          string     `json:"age_range,omitempty"`
	ContactPerson     string     `json:"contact_person,omitempty"`
	ContactPhone      string     `json:"contact_phone,omitempty"`
	ContactEmail      string     `json:"contact_email,omitempty"`
	Description       string     `json:"description,omitempty"`
	Needs             []string   `json:"needs,omitempty"`
	LastOutreachDate  string     `json:"last_outreach_date,omitempty"` // Date format
	NextOutreachDate  string     `json:"next_outreach_date,omitempty"` // Date format
	OutreachFrequency string     `json:"outreach_frequency,omitempty"` // RRULE string
	Image             string     `json:"image,omitempty"`
	MonthlySupport    float64    `json:"monthly_support,omitempty"`
	IsActive          bool       `json:"is_active"`
	Status            HomeStatus `json:"status"`
	Notes             string     `json:"notes,omitempty"`
}
