package model

import (
	"fmt"
	"strings"
)

// ContentType selects which *_details sub-schema applies to a content record
type ContentType string

const (
	TypePage        ContentType = "page"
	TypeBlog        ContentType = "blog"
	TypeProgram     ContentType = "program"
	TypeStory       ContentType = "story"
	TypeNews        ContentType = "news"
	TypeGallery     ContentType = "gallery"
	TypeOutreach    ContentType = "outreach"
	TypeTestimonial ContentType = "testimonial"
)

func (t ContentType) IsValid() bool {
	switch t {
	case TypePage, TypeBlog, TypeProgram, TypeStory, TypeNews, TypeGallery, TypeOutreach, TypeTestimonial:
		return true
	}
	return false
}

// ContentStatus is the editorial lifecycle of a content record
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

func (s ContentStatus) IsValid() bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}

// OutreachStatus is the event lifecycle of an outreach record.
// It lives inside outreach_details, separate from the editorial status.
type OutreachStatus string

const (
	OutreachUpcoming  OutreachStatus = "upcoming"
	OutreachOngoing   OutreachStatus = "ongoing"
	OutreachCompleted OutreachStatus = "completed"
)

func (s OutreachStatus) IsValid() bool {
	return s == OutreachUpcoming || s == OutreachOngoing || s == OutreachCompleted
}

// ContentRecord is the generic record behind every page, post and event on
// the site. Exactly one of the details pointers may be set, and it must
// match Type.
type ContentRecord struct {
	ID            string        `json:"id,omitempty"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug,omitempty"`
	Content       string        `json:"content"`
	Excerpt       string        `json:"excerpt,omitempty"`
	Status        ContentStatus `json:"status"`
	Type          ContentType   `json:"type"`
	Author        string        `json:"author,omitempty"`
	PublishDate   string        `json:"publish_date,omitempty"` // Date format
	FeaturedImage string        `json:"featured_image,omitempty"`

	OutreachDetails *OutreachDetails `json:"outreach_details,omitempty"`
	ProgramDetails  *ProgramDetails  `json:"program_details,omitempty"`
	StoryDetails    *StoryDetails    `json:"story_details,omitempty"`
	GalleryDetails  *GalleryDetails  `json:"gallery_details,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// ValidateDetails checks that the populated details pointer matches Type
func (c *ContentRecord) ValidateDetails() error {
	set := []struct {
		name    string
		t       ContentType
		present bool
	}{
		{"outreach_details", TypeOutreach, c.OutreachDetails != nil},
		{"program_details", TypeProgram, c.ProgramDetails != nil},
		{"story_details", TypeStory, c.StoryDetails != nil},
		{"gallery_details", TypeGallery, c.GalleryDetails != nil},
	}
	for _, d := range set {
		if d.present && c.Type != d.t {
			return fmt.Errorf("record of type %q must not carry %s", c.Type, d.name)
		}
	}
	return nil
}

// Activity is a planned or completed activity within an outreach event
type Activity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// ImpactMetric is a headline figure reported after an outreach event
type ImpactMetric struct {
	Title       string  `json:"title"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// OutreachDetails is the outreach variant of the content details union.
// The post-event block (ActualAttendees through Impact) is present iff the
// event status is ongoing or completed.
type OutreachDetails struct {
	Location          string         `json:"location"`
	EventDate         string         `json:"event_date"` // Date format
	Time              string         `json:"time,omitempty"`
	Status            OutreachStatus `json:"status"`
	ExpectedAttendees int            `json:"expected_attendees,omitempty"`
	BudgetPlanned     float64        `json:"budget_planned,omitempty"`
	Activities        []Activity     `json:"activities,omitempty"`
	FuturePlans       []string       `json:"future_plans,omitempty"`
	Organizer         string         `json:"organizer,omitempty"`
	ContactInfo       string         `json:"contact_info,omitempty"`
	VolunteersNeeded  int            `json:"volunteers_needed,omitempty"`

	// Post-event fields are pointers so the upcoming phase can omit them
	// entirely while a completed event with zero figures still reports them.
	ActualAttendees        *int            `json:"actual_attendees,omitempty"`
	BudgetActual           *float64        `json:"budget_actual,omitempty"`
	VolunteersParticipated *int            `json:"volunteers_participated,omitempty"`
	VolunteerHours         *float64        `json:"volunteer_hours,omitempty"`
	Impact                 *[]ImpactMetric `json:"impact,omitempty"`
}

// ProgramDetails describes a long-running program page
type ProgramDetails struct {
	Category         string `json:"category,omitempty"`
	StartDate        string `json:"start_date,omitempty"`
	BeneficiaryCount int    `json:"beneficiary_count,omitempty"`
	Coordinator      string `json:"coordinator,omitempty"`
}

// StoryDetails describes a beneficiary story page
type StoryDetails struct {
	PersonName string `json:"person_name,omitempty"`
	Location   string `json:"location,omitempty"`
	Quote      string `json:"quote,omitempty"`
}

// GalleryDetails holds the image set of a gallery page
type GalleryDetails struct {
	Images   []string `json:"images,omitempty"`
	Captions []string `json:"captions,omitempty"`
}

// IsInlineImage reports whether an image field holds an inline data URI
// rather than a hosted URL. Consumers distinguish the two by prefix.
func IsInlineImage(s string) bool {
	return strings.HasPrefix(s, "data:")
}
