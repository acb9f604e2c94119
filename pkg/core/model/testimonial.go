package model

// TestimonialStatus is the moderation state of a testimonial
type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "pending"
	TestimonialApproved TestimonialStatus = "approved"
	TestimonialRejected TestimonialStatus = "rejected"
)

func (s TestimonialStatus) IsValid() bool {
	return s == TestimonialPending || s == TestimonialApproved || s == TestimonialRejected
}

// Testimonial is a quote submitted by a volunteer, donor or beneficiary.
// Only approved testimonials may be featured on the public site.
type Testimonial struct {
	ID            string            `json:"id,omitempty"`
	Name          string            `json:"name"`
	Role          string            `json:"role,omitempty"`
	Content       string            `json:"content"`
	Rating        int               `json:"rating"` // 1-5
	FeaturedImage string            `json:"featured_image,omitempty"`
	IsFeatured    bool              `json:"is_featured"`
	Status        TestimonialStatus `json:"status"`
}
