package sponsor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// Step is the wizard's current screen
type Step string

const (
	StepDetails      Step = "details"
	StepSponsorInfo  Step = "sponsor-info"
	StepConfirmation Step = "confirmation"
)

// ErrInvalidTransition is returned for any move the linear flow forbids
var ErrInvalidTransition = errors.New("invalid wizard transition")

// Info is what the sponsor fills in on the second step
type Info struct {
	FullName string
	Email    string
	Phone    string
	Message  string
}

// Wizard is the three-step sponsorship flow:
//
//	details -> sponsor-info -> confirmation -> closed
//
// The flow is strictly linear: Back only returns from sponsor-info to
// details, and nothing leads out of confirmation except completing. All
// state is client-side; no server write happens until a payment gateway is
// integrated, so Submit records a reference and logs instead.
type Wizard struct {
	step      Step
	profile   Profile
	info      Info
	selection Selection
	reference string
	closed    bool
	logger    *zap.Logger
}

// NewWizard opens the flow for a beneficiary, starting at details
func NewWizard(b model.Beneficiary, logger *zap.Logger) *Wizard {
	return &Wizard{
		step:    StepDetails,
		profile: ToSponsorShape(b),
		logger:  logger,
	}
}

// Step returns the current step
func (w *Wizard) Step() Step { return w.step }

// Closed reports whether the flow has been completed or dismissed
func (w *Wizard) Closed() bool { return w.closed }

// Profile returns the beneficiary as the flow sees them
func (w *Wizard) Profile() Profile { return w.profile }

// Reference returns the client-side reference assigned on submit, empty
// before then
func (w *Wizard) Reference() string { return w.reference }

// Continue advances from details to sponsor-info
func (w *Wizard) Continue() error {
	if w.closed || w.step != StepDetails {
		return fmt.Errorf("%w: continue from %q", ErrInvalidTransition, w.step)
	}
	w.step = StepSponsorInfo
	return nil
}

// Back returns from sponsor-info to details. There is no way back from
// confirmation.
func (w *Wizard) Back() error {
	if w.closed || w.step != StepSponsorInfo {
		return fmt.Errorf("%w: back from %q", ErrInvalidTransition, w.step)
	}
	w.step = StepDetails
	return nil
}

// Submit validates the sponsor's details and selection and advances to
// confirmation, assigning the reference.
func (w *Wizard) Submit(info Info, selection Selection) error {
	if w.closed || w.step != StepSponsorInfo {
		return fmt.Errorf("%w: submit from %q", ErrInvalidTransition, w.step)
	}
	if strings.TrimSpace(info.FullName) == "" {
		return errors.New("sponsor name is required")
	}
	if strings.TrimSpace(info.Email) == "" {
		return errors.New("sponsor email is required")
	}
	if !selection.Kind.IsValid() {
		return fmt.Errorf("unknown plan %q", selection.Kind)
	}
	if selection.Kind == PlanCustom && ParseCustomAmount(selection.CustomInput) < 1 {
		return errors.New("custom amount must be at least 1")
	}

	w.info = info
	w.selection = selection
	w.reference = uuid.New().String()
	w.step = StepConfirmation
	return nil
}

// Amount returns the donation amount for the submitted selection
func (w *Wizard) Amount() float64 {
	return w.selection.Amount(w.profile.MonthlyCost)
}

// Complete closes the flow from confirmation. Payment is out of scope:
// the stub logs the pledge and closes.
func (w *Wizard) Complete() error {
	if w.closed || w.step != StepConfirmation {
		return fmt.Errorf("%w: complete from %q", ErrInvalidTransition, w.step)
	}
	if w.logger != nil {
		w.logger.Info("Sponsorship pledge recorded",
			zap.String("reference", w.reference),
			zap.String("beneficiary_id", w.profile.ID),
			zap.String("plan", string(w.selection.Kind)),
			zap.Float64("amount", w.Amount()))
	}
	w.closed = true
	return nil
}

// Close dismisses the flow from any step without side effects
func (w *Wizard) Close() {
	w.closed = true
}

// Reset reopens the flow for a new beneficiary. All previous state is
// discarded and the flow starts over at details.
func (w *Wizard) Reset(b model.Beneficiary) {
	w.step = StepDetails
	w.profile = ToSponsorShape(b)
	w.info = Info{}
	w.selection = Selection{}
	w.reference = ""
	w.closed = false
}
