package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// CampaignClient is the slice of the API client campaign upkeep needs
type CampaignClient interface {
	PatchCampaign(ctx context.Context, id string, fields map[string]any) error
}

// SetCampaignFeatured toggles a campaign's featured flag
func SetCampaignFeatured(ctx context.Context, client CampaignClient, logger *zap.Logger, id string, featured bool) error {
	if err := client.PatchCampaign(ctx, id, map[string]any{"is_featured": featured}); err != nil {
		return fmt.Errorf("failed to update campaign %s: %w", id, err)
	}
	logger.Info("Campaign featured flag updated", zap.String("id", id), zap.Bool("featured", featured))
	return nil
}

// UpdateImpactTiers replaces a campaign's donation-tier impact statements.
// Keys must be positive amounts; they arrive as the strings shown on the
// donate buttons.
func UpdateImpactTiers(ctx context.Context, client CampaignClient, logger *zap.Logger, id string, tiers map[string]string) error {
	for amount := range tiers {
		n, err := strconv.Atoi(amount)
		if err != nil || n <= 0 {
			return fmt.Errorf("impact tier key %q is not a positive amount", amount)
		}
	}

	if err := client.PatchCampaign(ctx, id, map[string]any{"impact_details": tiers}); err != nil {
		return fmt.Errorf("failed to update impact tiers for campaign %s: %w", id, err)
	}

	logger.Info("Campaign impact tiers updated", zap.String("id", id), zap.Int("tiers", len(tiers)))
	return nil
}

// ImpactTierAmounts returns a campaign's donation tiers in ascending order
func ImpactTierAmounts(c *model.Campaign) []string {
	amounts := make([]string, 0, len(c.ImpactDetails))
	for amount := range c.ImpactDetails {
		amounts = append(amounts, amount)
	}
	sort.Slice(amounts, func(i, j int) bool {
		a, _ := strconv.Atoi(amounts[i])
		b, _ := strconv.Atoi(amounts[j])
		return a < b
	})
	return amounts
}
