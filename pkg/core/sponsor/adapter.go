package sponsor

import "github.com/adaobialike/ikeji-outreach/pkg/core/model"

// Profile is the camelCase beneficiary shape the sponsorship flow works
// with. The public API serves snake_case records; ToSponsorShape is the one
// place the two shapes meet.
type Profile struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Age             int      `json:"age"`
	Location        string   `json:"location"`
	Category        string   `json:"category"`
	Story           string   `json:"story"`
	Needs           []string `json:"needs"`
	MonthlyCost     float64  `json:"monthlyCost"`
	Image           string   `json:"image"`
	SchoolGrade     string   `json:"schoolGrade"`
	FamilySize      int      `json:"familySize"`
	DreamAspiration string   `json:"dreamAspiration"`
	IsSponsored     bool     `json:"isSponsored"`
	DaysSupported   int      `json:"daysSupported"`
}

// ToSponsorShape maps an API beneficiary onto the sponsorship profile.
// Optional API fields get explicit zero defaults: a missing age becomes 0,
// a missing sponsorship flag false, missing support days 0.
func ToSponsorShape(b model.Beneficiary) Profile {
	p := Profile{
		ID:              b.ID,
		Name:            b.Name,
		Location:        b.Location,
		Category:        string(b.Category),
		Story:           b.Story,
		Needs:           b.Needs,
		MonthlyCost:     b.MonthlyCost,
		Image:           b.Image,
		SchoolGrade:     b.SchoolGrade,
		FamilySize:      b.FamilySize,
		DreamAspiration: b.DreamAspiration,
	}
	if b.Age != nil {
		p.Age = *b.Age
	}
	if b.IsSponsored != nil {
		p.IsSponsored = *b.IsSponsored
	}
	if b.DaysSupported != nil {
		p.DaysSupported = *b.DaysSupported
	}
	return p
}
