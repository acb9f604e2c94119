package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
	"github.com/adaobialike/ikeji-outreach/pkg/core/schedule"
)

// HomeClient is the slice of the API client home upkeep needs
type HomeClient interface {
	GetHome(ctx context.Context, id string) (*model.SponsorshipHome, error)
	PatchHome(ctx context.Context, id string, fields map[string]any) error
}

// SetHomeActivity updates the two independent activity signals. Status
// controls public visibility, IsActive records whether the partnership is
// operating; changing one never implies the other, so both are explicit
// pointers and a nil leaves that signal alone.
func SetHomeActivity(ctx context.Context, client HomeClient, logger *zap.Logger, id string, status *model.HomeStatus, isActive *bool) error {
	fields := map[string]any{}
	if status != nil {
		if !status.IsValid() {
			return fmt.Errorf("invalid home status %q", *status)
		}
		fields["status"] = string(*status)
	}
	if isActive != nil {
		fields["is_active"] = *isActive
	}
	if len(fields) == 0 {
		return fmt.Errorf("no activity change requested")
	}

	if err := client.PatchHome(ctx, id, fields); err != nil {
		return fmt.Errorf("failed to update home %s: %w", id, err)
	}

	logger.Info("Home activity updated", zap.String("id", id))
	return nil
}

// UpdateHomeNeeds replaces the home's needs list
func UpdateHomeNeeds(ctx context.Context, client HomeClient, logger *zap.Logger, id string, needs []string) error {
	if err := client.PatchHome(ctx, id, map[string]any{"needs": needs}); err != nil {
		return fmt.Errorf("failed to update needs for home %s: %w", id, err)
	}
	logger.Info("Home needs updated", zap.String("id", id), zap.Int("count", len(needs)))
	return nil
}

// UpdateHomeSupport records the monthly support amount committed to the home
func UpdateHomeSupport(ctx context.Context, client HomeClient, logger *zap.Logger, id string, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("monthly support cannot be negative")
	}
	if err := client.PatchHome(ctx, id, map[string]any{"monthly_support": amount}); err != nil {
		return fmt.Errorf("failed to update support for home %s: %w", id, err)
	}
	logger.Info("Home support updated", zap.String("id", id), zap.Float64("monthly_support", amount))
	return nil
}

// ScheduleResult reports a visit scheduling decision
type ScheduleResult struct {
	Home      *model.SponsorshipHome
	NextVisit string
	Upcoming  []time.Time
}

// ScheduleHomeVisit derives the home's next visit date from its recurrence
// rule and records it on the home, returning a preview of upcoming visits.
func ScheduleHomeVisit(ctx context.Context, client HomeClient, logger *zap.Logger, id string, now time.Time) (*ScheduleResult, error) {
	home, err := client.GetHome(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load home %s: %w", id, err)
	}

	upcoming, err := schedule.NextVisits(home, now, 3)
	if err != nil {
		return nil, err
	}
	next := upcoming[0].Format("2006-01-02")

	if err := client.PatchHome(ctx, id, map[string]any{"next_outreach_date": next}); err != nil {
		return nil, fmt.Errorf("failed to record next visit for home %s: %w", id, err)
	}

	logger.Info("Next home visit scheduled",
		zap.String("id", id),
		zap.String("home", home.Name),
		zap.String("next_visit", next))

	home.NextOutreachDate = next
	return &ScheduleResult{Home: home, NextVisit: next, Upcoming: upcoming}, nil
}
