package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

func TestParseFrequency(t *testing.T) {
	rule, err := ParseFrequency("FREQ=MONTHLY;BYMONTHDAY=15")
	require.NoError(t, err)
	assert.NotNil(t, rule)
}

func TestParseFrequency_Empty(t *testing.T) {
	_, err := ParseFrequency("")
	assert.ErrorContains(t, err, "no outreach frequency")
}

func TestParseFrequency_Garbage(t *testing.T) {
	_, err := ParseFrequency("every second Tuesday")
	assert.ErrorContains(t, err, "not a valid recurrence rule")
}

func TestNextVisits_Monthly(t *testing.T) {
	home := &model.SponsorshipHome{
		Name:              "Hope Orphanage",
		OutreachFrequency: "FREQ=MONTHLY;BYMONTHDAY=15",
		LastOutreachDate:  "2026-01-15",
	}

	after := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	visits, err := NextVisits(home, after, 3)
	require.NoError(t, err)
	require.Len(t, visits, 3)

	assert.Equal(t, "2026-02-15", visits[0].Format("2006-01-02"))
	assert.Equal(t, "2026-03-15", visits[1].Format("2006-01-02"))
	assert.Equal(t, "2026-04-15", visits[2].Format("2006-01-02"))
}

func TestNextVisits_WeeklyAnchorsOnLastVisit(t *testing.T) {
	home := &model.SponsorshipHome{
		OutreachFrequency: "FREQ=WEEKLY;BYDAY=SA",
		LastOutreachDate:  "2026-03-07", // a Saturday
	}

	after := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	visits, err := NextVisits(home, after, 2)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "2026-03-14", visits[0].Format("2006-01-02"))
	assert.Equal(t, time.Saturday, visits[0].Weekday())
}

func TestNextVisits_InvalidLastDate(t *testing.T) {
	home := &model.SponsorshipHome{
		OutreachFrequency: "FREQ=MONTHLY;BYMONTHDAY=15",
		LastOutreachDate:  "15/01/2026",
	}
	_, err := NextVisits(home, time.Now(), 1)
	assert.ErrorContains(t, err, "invalid last outreach date")
}

func TestNextVisits_FiniteRuleExhausted(t *testing.T) {
	home := &model.SponsorshipHome{
		OutreachFrequency: "FREQ=MONTHLY;BYMONTHDAY=15;COUNT=2",
		LastOutreachDate:  "2025-01-15",
	}

	// Both occurrences are in the past
	after := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := NextVisits(home, after, 3)
	assert.ErrorContains(t, err, "yields no dates")
}

func TestSuggestNext(t *testing.T) {
	home := &model.SponsorshipHome{
		OutreachFrequency: "FREQ=MONTHLY;BYMONTHDAY=1",
		LastOutreachDate:  "2026-05-01",
	}

	next, err := SuggestNext(home, time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01", next)
}
