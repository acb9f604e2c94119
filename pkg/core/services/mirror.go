package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/adaobialike/ikeji-outreach/pkg/clients/apiclient"
	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// MirrorSource is the slice of the API client a mirror sync reads from
type MirrorSource interface {
	ListContent(ctx context.Context, params apiclient.ListParams) (apiclient.Result[model.ContentRecord], error)
	ListCampaigns(ctx context.Context, params apiclient.ListParams) (apiclient.Result[model.Campaign], error)
}

// MirrorStore is the local store a mirror sync writes to
type MirrorStore interface {
	UpsertContent(ctx context.Context, records []model.ContentRecord) error
	UpsertCampaigns(ctx context.Context, campaigns []model.Campaign) error
}

// SyncReport says how much a mirror sync copied
type SyncReport struct {
	ContentRecords int
	Campaigns      int
}

// syncPageSize bounds each list fetch during a sync
const syncPageSize = 200

// SyncMirror pulls current content and campaigns from the site API into the
// local mirror. Best effort, full overwrite per record; there is no change
// detection and no sync guarantee.
func SyncMirror(ctx context.Context, source MirrorSource, store MirrorStore, logger *zap.Logger) (*SyncReport, error) {
	report := &SyncReport{}

	content, err := source.ListContent(ctx, apiclient.ListParams{Limit: syncPageSize})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content for mirror: %w", err)
	}
	if err := store.UpsertContent(ctx, content.Items); err != nil {
		return nil, fmt.Errorf("failed to mirror content: %w", err)
	}
	report.ContentRecords = len(content.Items)

	campaigns, err := source.ListCampaigns(ctx, apiclient.ListParams{Limit: syncPageSize})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaigns for mirror: %w", err)
	}
	if err := store.UpsertCampaigns(ctx, campaigns.Items); err != nil {
		return nil, fmt.Errorf("failed to mirror campaigns: %w", err)
	}
	report.Campaigns = len(campaigns.Items)

	logger.Info("Mirror sync finished",
		zap.Int("content_records", report.ContentRecords),
		zap.Int("campaigns", report.Campaigns))

	return report, nil
}
