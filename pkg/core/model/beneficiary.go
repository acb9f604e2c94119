package model

// BeneficiaryCategory classifies who a beneficiary record is for
type BeneficiaryCategory string

const (
	CategoryOrphan BeneficiaryCategory = "orphan"
	CategoryWidow  BeneficiaryCategory = "widow"
	CategoryFamily BeneficiaryCategory = "family"
)

func (c BeneficiaryCategory) IsValid() bool {
	return c == CategoryOrphan || c == CategoryWidow || c == CategoryFamily
}

// Beneficiary is a person or family presented for sponsorship on the public
// pages. Age is a pointer because the API omits it for widows and families.
type Beneficiary struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Age             *int                `json:"age,omitempty"`
	Location        string              `json:"location"`
	Category        BeneficiaryCategory `json:"category"`
	Story           string              `json:"story,omitempty"`
	Needs           []string            `json:"needs,omitempty"`
	MonthlyCost     float64             `json:"monthly_cost"`
	Image           string              `json:"image,omitempty"`
	SchoolGrade     string              `json:"school_grade,omitempty"`
	FamilySize      int                 `json:"family_size,omitempty"`
	DreamAspiration string              `json:"dream_aspiration,omitempty"`
	IsSponsored     *bool               `json:"is_sponsored,omitempty"`
	DaysSupported   *int                `json:"days_supported,omitempty"`
}

// SupportProgressPercent returns how far through a sponsorship year the
// beneficiary is, as a percentage capped at 100.
func (b *Beneficiary) SupportProgressPercent() float64 {
	if b.DaysSupported == nil || *b.DaysSupported <= 0 {
		return 0
	}
	p := float64(*b.DaysSupported) / 365 * 100
	if p > 100 {
		return 100
	}
	return p
}
