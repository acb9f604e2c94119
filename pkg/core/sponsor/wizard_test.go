package sponsor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

func testBeneficiary() model.Beneficiary {
	age := 9
	sponsored := false
	days := 120
	return model.Beneficiary{
		ID:              "ben-1",
		Name:            "Chidinma",
		Age:             &age,
		Location:        "Umuahia",
		Category:        model.CategoryOrphan,
		Story:           "Lost both parents in 2023",
		Needs:           []string{"School fees", "Uniform"},
		MonthlyCost:     15000,
		SchoolGrade:     "Primary 4",
		DreamAspiration: "Nurse",
		IsSponsored:     &sponsored,
		DaysSupported:   &days,
	}
}

func validInfo() Info {
	return Info{FullName: "Adaeze Okafor", Email: "adaeze@example.com"}
}

func TestToSponsorShape(t *testing.T) {
	p := ToSponsorShape(testBeneficiary())
	assert.Equal(t, "Chidinma", p.Name)
	assert.Equal(t, 9, p.Age)
	assert.Equal(t, "orphan", p.Category)
	assert.Equal(t, 15000.0, p.MonthlyCost)
	assert.False(t, p.IsSponsored)
	assert.Equal(t, 120, p.DaysSupported)
}

func TestToSponsorShape_MissingOptionalFields(t *testing.T) {
	b := model.Beneficiary{
		ID:       "ben-2",
		Name:     "The Eze family",
		Category: model.CategoryFamily,
	}
	p := ToSponsorShape(b)
	assert.Equal(t, 0, p.Age)
	assert.False(t, p.IsSponsored)
	assert.Equal(t, 0, p.DaysSupported)
	assert.Equal(t, "", p.DreamAspiration)
}

func TestParseCustomAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"plain number", "5000", 5000},
		{"surrounding whitespace", "  250 ", 250},
		{"empty", "", 0},
		{"not a number", "five", 0},
		{"negative", "-20", 0},
		{"decimal", "10.5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCustomAmount(tt.input))
		})
	}
}

func TestSelection_Amount(t *testing.T) {
	monthly := 15000.0

	assert.Equal(t, 15000.0, Selection{Kind: PlanMonthly}.Amount(monthly))
	assert.Equal(t, 90000.0, Selection{Kind: PlanOneTime}.Amount(monthly), "one-time covers six months")
	assert.Equal(t, 7500.0, Selection{Kind: PlanCustom, CustomInput: "7500"}.Amount(monthly))
	assert.Equal(t, 0.0, Selection{Kind: PlanCustom, CustomInput: "abc"}.Amount(monthly))
}

func TestWizard_HappyPath(t *testing.T) {
	w := NewWizard(testBeneficiary(), zap.NewNop())
	assert.Equal(t, StepDetails, w.Step())
	assert.Empty(t, w.Reference())

	require.NoError(t, w.Continue())
	assert.Equal(t, StepSponsorInfo, w.Step())

	require.NoError(t, w.Submit(validInfo(), Selection{Kind: PlanOneTime}))
	assert.Equal(t, StepConfirmation, w.Step())
	assert.NotEmpty(t, w.Reference())
	assert.Equal(t, 90000.0, w.Amount())

	require.NoError(t, w.Complete())
	assert.True(t, w.Closed())
}

func TestWizard_BackOnlyFromSponsorInfo(t *testing.T) {
	w := NewWizard(testBeneficiary(), zap.NewNop())

	// Back from details is not allowed
	err := w.Back()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, w.Continue())
	require.NoError(t, w.Back())
	assert.Equal(t, StepDetails, w.Step())

	// And there is no way back from confirmation
	require.NoError(t, w.Continue())
	require.NoError(t, w.Submit(validInfo(), Selection{Kind: PlanMonthly}))
	assert.ErrorIs(t, w.Back(), ErrInvalidTransition)
}

func TestWizard_NoStepSkipping(t *testing.T) {
	w := NewWizard(testBeneficiary(), zap.NewNop())

	// Submit straight from details
	assert.ErrorIs(t, w.Submit(validInfo(), Selection{Kind: PlanMonthly}), ErrInvalidTransition)

	// Complete straight from details
	assert.ErrorIs(t, w.Complete(), ErrInvalidTransition)

	// Continue twice
	require.NoError(t, w.Continue())
	assert.ErrorIs(t, w.Continue(), ErrInvalidTransition)
}

func TestWizard_SubmitValidation(t *testing.T) {
	w := NewWizard(testBeneficiary(), zap.NewNop())
	require.NoError(t, w.Continue())

	err := w.Submit(Info{Email: "a@b.com"}, Selection{Kind: PlanMonthly})
	assert.ErrorContains(t, err, "name")

	err = w.Submit(Info{FullName: "Adaeze"}, Selection{Kind: PlanMonthly})
	assert.ErrorContains(t, err, "email")

	err = w.Submit(validInfo(), Selection{Kind: "weekly"})
	assert.ErrorContains(t, err, "plan")

	err = w.Submit(validInfo(), Selection{Kind: PlanCustom, CustomInput: "0"})
	assert.ErrorContains(t, err, "at least 1")

	// Validation failures leave the wizard on the same step
	assert.Equal(t, StepSponsorInfo, w.Step())
	assert.Empty(t, w.Reference())
}

func TestWizard_ClosedRejectsEverything(t *testing.T) {
	w := NewWizard(testBeneficiary(), zap.NewNop())
	w.Close()

	assert.True(t, w.Closed())
	assert.ErrorIs(t, w.Continue(), ErrInvalidTransition)
	assert.ErrorIs(t, w.Back(), ErrInvalidTransition)
	assert.ErrorIs(t, w.Submit(validInfo(), Selection{Kind: PlanMonthly}), ErrInvalidTransition)
	assert.ErrorIs(t, w.Complete(), ErrInvalidTransition)
}

func TestWizard_ResetClearsAllState(t *testing.T) {
	w := NewWizard(testBeneficiary(), zap.NewNop())
	require.NoError(t, w.Continue())
	require.NoError(t, w.Submit(validInfo(), Selection{Kind: PlanCustom, CustomInput: "2000"}))
	oldRef := w.Reference()

	next := model.Beneficiary{ID: "ben-3", Name: "Ngozi", Category: model.CategoryWidow, MonthlyCost: 12000}
	w.Reset(next)

	assert.Equal(t, StepDetails, w.Step())
	assert.False(t, w.Closed())
	assert.Equal(t, "Ngozi", w.Profile().Name)
	assert.Empty(t, w.Reference())
	assert.NotEqual(t, oldRef, w.Reference())
	assert.Equal(t, 12000.0, Selection{Kind: PlanMonthly}.Amount(w.Profile().MonthlyCost))
}
