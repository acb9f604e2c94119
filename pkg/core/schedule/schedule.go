// Package schedule derives outreach visit dates from a home's recurrence
// rule. A home's outreach_frequency is an RRULE string (e.g.
// "FREQ=MONTHLY;BYMONTHDAY=15"); anything else is reported as an error
// rather than guessed at.
package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

const dateFormat = "2006-01-02"

// ParseFrequency validates and parses a home's outreach frequency
func ParseFrequency(freq string) (*rrule.RRule, error) {
	if freq == "" {
		return nil, fmt.Errorf("home has no outreach frequency set")
	}
	rule, err := rrule.StrToRRule(freq)
	if err != nil {
		return nil, fmt.Errorf("outreach frequency is not a valid recurrence rule: %w", err)
	}
	return rule, nil
}

// NextVisits returns the next n visit dates for the home after the given
// time. The rule anchors on the last outreach date when one is recorded.
func NextVisits(home *model.SponsorshipHome, after time.Time, n int) ([]time.Time, error) {
	rule, err := ParseFrequency(home.OutreachFrequency)
	if err != nil {
		return nil, err
	}

	if home.LastOutreachDate != "" {
		last, err := time.Parse(dateFormat, home.LastOutreachDate)
		if err != nil {
			return nil, fmt.Errorf("invalid last outreach date %q: %w", home.LastOutreachDate, err)
		}
		rule.DTStart(last)
	}

	var visits []time.Time
	next := rule.After(after, false)
	for i := 0; i < n && !next.IsZero(); i++ {
		visits = append(visits, next)
		next = rule.After(next, false)
	}
	if len(visits) == 0 {
		return nil, fmt.Errorf("recurrence rule yields no dates after %s", after.Format(dateFormat))
	}
	return visits, nil
}

// SuggestNext proposes a value for the home's next_outreach_date
func SuggestNext(home *model.SponsorshipHome, now time.Time) (string, error) {
	visits, err := NextVisits(home, now, 1)
	if err != nil {
		return "", err
	}
	return visits[0].Format(dateFormat), nil
}
