package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// TestimonialModerator is the slice of the API client moderation needs
type TestimonialModerator interface {
	PatchTestimonial(ctx context.Context, id string, fields map[string]any) error
}

// ModerateTestimonial moves a testimonial to approved or rejected. Pending
// is the submission state, not a decision, so it is not a valid target.
// Re-deciding an already-decided testimonial is allowed.
func ModerateTestimonial(ctx context.Context, client TestimonialModerator, logger *zap.Logger, id string, decision model.TestimonialStatus) error {
	if decision != model.TestimonialApproved && decision != model.TestimonialRejected {
		return fmt.Errorf("moderation decision must be approved or rejected, got %q", decision)
	}

	fields := map[string]any{"status": string(decision)}
	if decision == model.TestimonialRejected {
		// A rejected testimonial can no longer be featured.
		fields["is_featured"] = false
	}

	if err := client.PatchTestimonial(ctx, id, fields); err != nil {
		return fmt.Errorf("failed to moderate testimonial %s: %w", id, err)
	}

	logger.Info("Testimonial moderated", zap.String("id", id), zap.String("decision", string(decision)))
	return nil
}

// SetTestimonialFeatured toggles the featured flag. Only approved
// testimonials may be featured; the caller passes the current record so the
// check happens client-side before any request is made.
func SetTestimonialFeatured(ctx context.Context, client TestimonialModerator, logger *zap.Logger, t *model.Testimonial, featured bool) error {
	if featured && t.Status != model.TestimonialApproved {
		return fmt.Errorf("testimonial %s is %s; only approved testimonials can be featured", t.ID, t.Status)
	}

	if err := client.PatchTestimonial(ctx, t.ID, map[string]any{"is_featured": featured}); err != nil {
		return fmt.Errorf("failed to update testimonial %s: %w", t.ID, err)
	}

	logger.Info("Testimonial featured flag updated", zap.String("id", t.ID), zap.Bool("featured", featured))
	return nil
}
