package editor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// FieldError is a JSON parse failure in a specific sub-schema field.
// The editor aborts the whole submission when any field fails; the error
// names the field so the operator knows which textarea to fix.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q contains invalid JSON: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ParseActivities parses the activities textarea. Empty input means no
// activities, not an error.
func ParseActivities(text string) ([]model.Activity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var out []model.Activity
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, &FieldError{Field: "activities", Err: err}
	}
	return out, nil
}

// ParseImpactMetrics parses the impact textarea
func ParseImpactMetrics(text string) ([]model.ImpactMetric, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var out []model.ImpactMetric
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, &FieldError{Field: "impact", Err: err}
	}
	return out, nil
}

// ParseStringList parses a plain string-array textarea (future plans, needs)
func ParseStringList(field, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, &FieldError{Field: field, Err: err}
	}
	return out, nil
}

// SerializeActivities renders activities back into textarea form.
// Serialization and parsing are exact inverses: order is preserved and
// Completed stays a boolean.
func SerializeActivities(activities []model.Activity) string {
	return serialize(activities)
}

// SerializeImpactMetrics renders impact metrics back into textarea form
func SerializeImpactMetrics(metrics []model.ImpactMetric) string {
	return serialize(metrics)
}

// SerializeStringList renders a string array back into textarea form
func SerializeStringList(items []string) string {
	return serialize(items)
}

func serialize(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// Only unmarshalable types can fail here, and these are plain
		// JSON-tagged structs.
		return ""
	}
	return string(data)
}
