package editor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// Mode distinguishes creating a new record from editing an existing one
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Form is the editor's working state: every field holds the string a form
// control would hold, including the numeric ones and the JSON textareas.
// Parsing and shaping happen only at submit time.
type Form struct {
	Mode     Mode
	RecordID string

	Type          model.ContentType
	Title         string
	Slug          string
	Content       string
	Excerpt       string
	Status        string // draft | upcoming | ongoing | completed
	Author        string
	PublishDate   string
	FeaturedImage string

	// Outreach fields
	Location          string
	EventDate         string
	Time              string
	ExpectedAttendees string
	BudgetPlanned     string
	ActivitiesJSON    string
	FuturePlansJSON   string
	Organizer         string
	ContactInfo       string
	VolunteersNeeded  string

	// Post-event fields, only meaningful once the event is ongoing/completed
	ActualAttendees        string
	BudgetActual           string
	VolunteersParticipated string
	VolunteerHours         string
	ImpactJSON             string
}

// NewForm starts a blank form in create mode for the given content type
func NewForm(t model.ContentType) *Form {
	return &Form{
		Mode:   ModeCreate,
		Type:   t,
		Status: "draft",
	}
}

// LoadForm populates a form from an existing record for editing
func LoadForm(rec *model.ContentRecord) *Form {
	f := &Form{
		Mode:          ModeEdit,
		RecordID:      rec.ID,
		Type:          rec.Type,
		Title:         rec.Title,
		Slug:          rec.Slug,
		Content:       rec.Content,
		Excerpt:       rec.Excerpt,
		Status:        string(rec.Status),
		Author:        rec.Author,
		PublishDate:   rec.PublishDate,
		FeaturedImage: rec.FeaturedImage,
	}

	if d := rec.OutreachDetails; d != nil {
		f.Status = string(d.Status)
		if rec.Status == model.StatusDraft {
			f.Status = "draft"
		}
		f.Location = d.Location
		f.EventDate = d.EventDate
		f.Time = d.Time
		f.ExpectedAttendees = formatInt(d.ExpectedAttendees)
		f.BudgetPlanned = formatFloat(d.BudgetPlanned)
		f.ActivitiesJSON = SerializeActivities(d.Activities)
		f.FuturePlansJSON = SerializeStringList(d.FuturePlans)
		f.Organizer = d.Organizer
		f.ContactInfo = d.ContactInfo
		f.VolunteersNeeded = formatInt(d.VolunteersNeeded)
		if d.ActualAttendees != nil {
			f.ActualAttendees = formatInt(*d.ActualAttendees)
		}
		if d.BudgetActual != nil {
			f.BudgetActual = formatFloat(*d.BudgetActual)
		}
		if d.VolunteersParticipated != nil {
			f.VolunteersParticipated = formatInt(*d.VolunteersParticipated)
		}
		if d.VolunteerHours != nil {
			f.VolunteerHours = formatFloat(*d.VolunteerHours)
		}
		if d.Impact != nil {
			f.ImpactJSON = SerializeImpactMetrics(*d.Impact)
		}
	}

	return f
}

// Phase flags are derived from the current status on every call rather than
// stored, so they can never go stale against the form state.

// IsUpcoming reports whether the event has not started yet
func (f *Form) IsUpcoming() bool {
	return f.Status == "draft" || f.Status == "upcoming"
}

// IsOngoing reports whether the event is in progress
func (f *Form) IsOngoing() bool { return f.Status == "ongoing" }

// IsCompleted reports whether the event has finished
func (f *Form) IsCompleted() bool { return f.Status == "completed" }

// Validate runs the synchronous pre-submit checks. The result maps field
// names to messages; an empty map means submission may proceed.
func (f *Form) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(f.Content) == "" {
		errs["content"] = "description is required"
	}
	if f.Type == model.TypeOutreach {
		if strings.TrimSpace(f.Location) == "" {
			errs["location"] = "location is required"
		}
		if strings.TrimSpace(f.EventDate) == "" {
			errs["event_date"] = "event date is required"
		}
	}
	return errs
}

// BuildPayload validates, parses the JSON sub-schema fields and shapes the
// submit payload. Post-event fields are included iff the event is ongoing
// or completed; in the upcoming phase they are omitted entirely, whatever
// the form holds. No payload is produced if any sub-schema field fails to
// parse.
func (f *Form) BuildPayload() (*model.ContentRecord, error) {
	if errs := f.Validate(); len(errs) > 0 {
		for field, msg := range errs {
			return nil, fmt.Errorf("validation failed on %s: %s", field, msg)
		}
	}

	rec := &model.ContentRecord{
		ID:            f.RecordID,
		Title:         f.Title,
		Slug:          f.Slug,
		Content:       f.Content,
		Excerpt:       f.Excerpt,
		Type:          f.Type,
		Status:        f.editorialStatus(),
		Author:        f.Author,
		PublishDate:   f.PublishDate,
		FeaturedImage: f.FeaturedImage,
	}

	if f.Type != model.TypeOutreach {
		return rec, nil
	}

	activities, err := ParseActivities(f.ActivitiesJSON)
	if err != nil {
		return nil, err
	}
	futurePlans, err := ParseStringList("future_plans", f.FuturePlansJSON)
	if err != nil {
		return nil, err
	}

	details := &model.OutreachDetails{
		Location:          strings.TrimSpace(f.Location),
		EventDate:         f.EventDate,
		Time:              f.Time,
		Status:            f.eventStatus(),
		ExpectedAttendees: parseIntOrZero(f.ExpectedAttendees),
		BudgetPlanned:     parseFloatOrZero(f.BudgetPlanned),
		Activities:        activities,
		FuturePlans:       futurePlans,
		Organizer:         f.Organizer,
		ContactInfo:       f.ContactInfo,
		VolunteersNeeded:  parseIntOrZero(f.VolunteersNeeded),
	}

	if !f.IsUpcoming() {
		impact, err := ParseImpactMetrics(f.ImpactJSON)
		if err != nil {
			return nil, err
		}
		actualAttendees := parseIntOrZero(f.ActualAttendees)
		budgetActual := parseFloatOrZero(f.BudgetActual)
		volunteersParticipated := parseIntOrZero(f.VolunteersParticipated)
		volunteerHours := parseFloatOrZero(f.VolunteerHours)
		details.ActualAttendees = &actualAttendees
		details.BudgetActual = &budgetActual
		details.VolunteersParticipated = &volunteersParticipated
		details.VolunteerHours = &volunteerHours
		if impact == nil {
			impact = []model.ImpactMetric{}
		}
		details.Impact = &impact
	}

	rec.OutreachDetails = details
	return rec, nil
}

// editorialStatus maps the editor's status select onto the record lifecycle:
// draft stays a draft, everything else is a published record whose event
// phase lives in outreach_details.
func (f *Form) editorialStatus() model.ContentStatus {
	if f.Status == "draft" {
		return model.StatusDraft
	}
	if f.Type != model.TypeOutreach {
		if s := model.ContentStatus(f.Status); s.IsValid() {
			return s
		}
	}
	return model.StatusPublished
}

// eventStatus maps the editor's status select onto the event lifecycle
func (f *Form) eventStatus() model.OutreachStatus {
	switch f.Status {
	case "ongoing":
		return model.OutreachOngoing
	case "completed":
		return model.OutreachCompleted
	default:
		return model.OutreachUpcoming
	}
}

// ContentSaver is the slice of the API client the editor needs
type ContentSaver interface {
	CreateContent(ctx context.Context, rec *model.ContentRecord) (*model.ContentRecord, error)
	UpdateContent(ctx context.Context, id string, rec *model.ContentRecord) (*model.ContentRecord, error)
}

// Save builds the payload and submits it: POST in create mode, PUT in edit
// mode. onSaved runs only after a successful save, so the caller can refresh
// its listing. Abandoning the form is simply not calling Save.
func (f *Form) Save(ctx context.Context, client ContentSaver, logger *zap.Logger, onSaved func(*model.ContentRecord)) (*model.ContentRecord, error) {
	payload, err := f.BuildPayload()
	if err != nil {
		return nil, err
	}

	var saved *model.ContentRecord
	switch f.Mode {
	case ModeEdit:
		if f.RecordID == "" {
			return nil, fmt.Errorf("cannot update without a record id")
		}
		logger.Debug("Updating record", zap.String("id", f.RecordID), zap.String("type", string(f.Type)))
		saved, err = client.UpdateContent(ctx, f.RecordID, payload)
	default:
		logger.Debug("Creating record", zap.String("type", string(f.Type)))
		saved, err = client.CreateContent(ctx, payload)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	if onSaved != nil {
		onSaved(saved)
	}
	return saved, nil
}

func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func formatFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
