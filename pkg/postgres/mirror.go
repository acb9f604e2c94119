package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// UpsertContent snapshots content records into the mirror, replacing any
// previous snapshot of the same record.
func (m *Mirror) UpsertContent(ctx context.Context, records []model.ContentRecord) error {
	for _, rec := range records {
		if rec.ID == "" {
			continue
		}
		raw, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode record %s: %w", rec.ID, err)
		}
		_, err = m.pool.Exec(ctx, `
			INSERT INTO content_mirror (id, type, status, title, record, synced_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
			ON CONFLICT (id) DO UPDATE
			SET type = EXCLUDED.type,
			    status = EXCLUDED.status,
			    title = EXCLUDED.title,
			    record = EXCLUDED.record,
			    synced_at = NOW()
		`, rec.ID, string(rec.Type), string(rec.Status), rec.Title, raw)
		if err != nil {
			return fmt.Errorf("failed to upsert record %s: %w", rec.ID, err)
		}
	}
	return nil
}

// UpsertCampaigns snapshots campaigns into the mirror
func (m *Mirror) UpsertCampaigns(ctx context.Context, campaigns []model.Campaign) error {
	for _, c := range campaigns {
		if c.ID == "" {
			continue
		}
		raw, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to encode campaign %s: %w", c.ID, err)
		}
		_, err = m.pool.Exec(ctx, `
			INSERT INTO campaign_mirror (id, status, title, goal_amount, current_amount, currency, record, synced_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			ON CONFLICT (id) DO UPDATE
			SET status = EXCLUDED.status,
			    title = EXCLUDED.title,
			    goal_amount = EXCLUDED.goal_amount,
			    current_amount = EXCLUDED.current_amount,
			    currency = EXCLUDED.currency,
			    record = EXCLUDED.record,
			    synced_at = NOW()
		`, c.ID, string(c.Status), c.Title, c.GoalAmount, c.CurrentAmount, string(c.Currency), raw)
		if err != nil {
			return fmt.Errorf("failed to upsert campaign %s: %w", c.ID, err)
		}
	}
	return nil
}

// StatusCount is one row of a mirror summary
type StatusCount struct {
	Group string
	Count int
}

// ContentSummary counts mirrored content records by type and status
func (m *Mirror) ContentSummary(ctx context.Context) ([]StatusCount, error) {
	rows, err := m.pool.Query(ctx, `
		SELECT type || '/' || status, COUNT(*)
		FROM content_mirror
		GROUP BY 1
		ORDER BY 1
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query content summary: %w", err)
	}
	defer rows.Close()

	var counts []StatusCount
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Group, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		counts = append(counts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating summary rows: %w", err)
	}
	return counts, nil
}

// CampaignTotals reports mirrored fundraising totals per currency
func (m *Mirror) CampaignTotals(ctx context.Context) (map[string]float64, error) {
	rows, err := m.pool.Query(ctx, `
		SELECT currency, SUM(current_amount)
		FROM campaign_mirror
		WHERE status IN ('active', 'completed')
		GROUP BY currency
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query campaign totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var currency string
		var total float64
		if err := rows.Scan(&currency, &total); err != nil {
			return nil, fmt.Errorf("failed to scan totals row: %w", err)
		}
		totals[currency] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating totals rows: %w", err)
	}
	return totals, nil
}
