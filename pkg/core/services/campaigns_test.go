package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// mockCampaignClient implements a test double for CampaignClient
type mockCampaignClient struct {
	patches map[string]map[string]any
}

func (m *mockCampaignClient) PatchCampaign(ctx context.Context, id string, fields map[string]any) error {
	if m.patches == nil {
		m.patches = make(map[string]map[string]any)
	}
	m.patches[id] = fields
	return nil
}

func TestSetCampaignFeatured(t *testing.T) {
	mock := &mockCampaignClient{}
	require.NoError(t, SetCampaignFeatured(context.Background(), mock, zap.NewNop(), "c-1", true))
	assert.Equal(t, map[string]any{"is_featured": true}, mock.patches["c-1"])

	require.NoError(t, SetCampaignFeatured(context.Background(), mock, zap.NewNop(), "c-1", false))
	assert.Equal(t, map[string]any{"is_featured": false}, mock.patches["c-1"])
}

func TestUpdateImpactTiers(t *testing.T) {
	mock := &mockCampaignClient{}
	tiers := map[string]string{
		"25":  "Feeds a child for a week",
		"100": "School supplies for one pupil",
		"500": "A month of staff salaries",
	}

	require.NoError(t, UpdateImpactTiers(context.Background(), mock, zap.NewNop(), "c-1", tiers))
	assert.Equal(t, map[string]any{"impact_details": tiers}, mock.patches["c-1"])
}

func TestUpdateImpactTiers_RejectsBadKeys(t *testing.T) {
	mock := &mockCampaignClient{}

	tests := []struct {
		name string
		key  string
	}{
		{"not a number", "twenty-five"},
		{"zero", "0"},
		{"negative", "-50"},
		{"decimal", "25.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := UpdateImpactTiers(context.Background(), mock, zap.NewNop(), "c-1", map[string]string{tt.key: "impact"})
			assert.ErrorContains(t, err, "not a positive amount")
		})
	}
	assert.Empty(t, mock.patches)
}

func TestImpactTierAmounts_SortedNumerically(t *testing.T) {
	c := &model.Campaign{
		ImpactDetails: map[string]string{
			"500": "big",
			"25":  "small",
			"100": "medium",
		},
	}
	// Numeric order, not lexicographic ("100" < "25" as strings)
	assert.Equal(t, []string{"25", "100", "500"}, ImpactTierAmounts(c))
}

func TestImpactTierAmounts_Empty(t *testing.T) {
	assert.Empty(t, ImpactTierAmounts(&model.Campaign{}))
}
