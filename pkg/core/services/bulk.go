package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BulkAction is a batch operation over selected content records
type BulkAction string

const (
	BulkPublish BulkAction = "publish"
	BulkArchive BulkAction = "archive"
	BulkDelete  BulkAction = "delete"
)

func (a BulkAction) IsValid() bool {
	return a == BulkPublish || a == BulkArchive || a == BulkDelete
}

// BulkFailure records one ID the batch could not process
type BulkFailure struct {
	ID  string
	Err error
}

// BulkReport is the per-ID outcome of a batch. There is no transaction
// across the batch: a partial failure leaves some records changed and
// others not, and the report says exactly which.
type BulkReport struct {
	BatchID   string
	Succeeded []string
	Failed    []BulkFailure
}

// ContentBulkClient is the slice of the API client bulk actions need
type ContentBulkClient interface {
	PatchContent(ctx context.Context, id string, fields map[string]any) error
	DeleteContent(ctx context.Context, id string) error
}

// BulkContentAction applies the action to each selected ID, one request per
// ID via the shared client call. It keeps going past failures and reports
// every outcome under a batch ID.
func BulkContentAction(ctx context.Context, client ContentBulkClient, logger *zap.Logger, action BulkAction, ids []string) (*BulkReport, error) {
	if !action.IsValid() {
		return nil, fmt.Errorf("unknown bulk action %q", action)
	}

	report := &BulkReport{BatchID: uuid.New().String()}
	logger.Info("Starting bulk action",
		zap.String("batch_id", report.BatchID),
		zap.String("action", string(action)),
		zap.Int("count", len(ids)))

	for _, id := range ids {
		var err error
		switch action {
		case BulkPublish:
			err = client.PatchContent(ctx, id, map[string]any{"status": "published"})
		case BulkArchive:
			err = client.PatchContent(ctx, id, map[string]any{"status": "archived"})
		case BulkDelete:
			err = client.DeleteContent(ctx, id)
		}
		if err != nil {
			logger.Warn("Bulk action failed for record",
				zap.String("batch_id", report.BatchID),
				zap.String("id", id),
				zap.Error(err))
			report.Failed = append(report.Failed, BulkFailure{ID: id, Err: err})
			continue
		}
		report.Succeeded = append(report.Succeeded, id)
	}

	logger.Info("Bulk action finished",
		zap.String("batch_id", report.BatchID),
		zap.Int("succeeded", len(report.Succeeded)),
		zap.Int("failed", len(report.Failed)))

	return report, nil
}
