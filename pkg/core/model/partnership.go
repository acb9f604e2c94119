package model

// PartnershipStatus is the triage state of a partnership application
type PartnershipStatus string

const (
	PartnershipNew          PartnershipStatus = "new"
	PartnershipUnderReview  PartnershipStatus = "under-review"
	PartnershipApproved     PartnershipStatus = "approved"
	PartnershipRejected     PartnershipStatus = "rejected"
	PartnershipInDiscussion PartnershipStatus = "in-discussion"
)

func (s PartnershipStatus) IsValid() bool {
	switch s {
	case PartnershipNew, PartnershipUnderReview, PartnershipApproved, PartnershipRejected, PartnershipInDiscussion:
		return true
	}
	return false
}

// Priority is the triage priority assigned to an application
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// PartnershipApplication is an inbound partnership request from another
// organization. This resource predates the snake_case convention and keeps
// its camelCase wire shape.
type PartnershipApplication struct {
	ID               string            `json:"id,omitempty"`
	OrganizationName string            `json:"organizationName"`
	ContactName      string            `json:"contactName"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone,omitempty"`
	OrganizationType string            `json:"organizationType,omitempty"`
	PartnershipType  string            `json:"partnershipType,omitempty"`
	Message          string            `json:"message,omitempty"`
	Timeline         string            `json:"timeline,omitempty"`
	Status           PartnershipStatus `json:"status"`
	Priority         Priority          `json:"priority"`
	SubmittedAt      string            `json:"submittedAt,omitempty"`
	LastUpdated      string            `json:"lastUpdated,omitempty"`
	AssignedTo       string            `json:"assignedTo,omitempty"`
	Notes            string            `json:"notes,omitempty"`
}
