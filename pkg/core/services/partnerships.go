package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// PartnershipTriager is the slice of the API client triage needs
type PartnershipTriager interface {
	PatchPartnership(ctx context.Context, id string, fields map[string]any) error
}

// Triage is one triage decision on a partnership application. Zero-valued
// fields are left unchanged on the record.
type Triage struct {
	Status     model.PartnershipStatus
	Priority   model.Priority
	AssignedTo string
	Notes      string
}

// TriagePartnership applies a triage decision and stamps lastUpdated
func TriagePartnership(ctx context.Context, client PartnershipTriager, logger *zap.Logger, id string, triage Triage) error {
	fields := map[string]any{}
	if triage.Status != "" {
		if !triage.Status.IsValid() {
			return fmt.Errorf("invalid partnership status %q", triage.Status)
		}
		fields["status"] = string(triage.Status)
	}
	if triage.Priority != "" {
		if !triage.Priority.IsValid() {
			return fmt.Errorf("invalid priority %q", triage.Priority)
		}
		fields["priority"] = string(triage.Priority)
	}
	if triage.AssignedTo != "" {
		fields["assignedTo"] = triage.AssignedTo
	}
	if triage.Notes != "" {
		fields["notes"] = triage.Notes
	}
	if len(fields) == 0 {
		return fmt.Errorf("triage changes nothing")
	}
	fields["lastUpdated"] = time.Now().UTC().Format(time.RFC3339)

	if err := client.PatchPartnership(ctx, id, fields); err != nil {
		return fmt.Errorf("failed to triage application %s: %w", id, err)
	}

	logger.Info("Partnership application triaged", zap.String("id", id))
	return nil
}
