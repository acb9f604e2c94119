package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adaobialike/ikeji-outreach/pkg/clients/apiclient"
	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// mockMirrorSource implements a test double for MirrorSource
type mockMirrorSource struct {
	content      []model.ContentRecord
	campaigns    []model.Campaign
	contentErr   error
	campaignsErr error
}

func (m *mockMirrorSource) ListContent(ctx context.Context, params apiclient.ListParams) (apiclient.Result[model.ContentRecord], error) {
	if m.contentErr != nil {
		return apiclient.Result[model.ContentRecord]{}, m.contentErr
	}
	return apiclient.Result[model.ContentRecord]{Items: m.content, Total: len(m.content)}, nil
}

func (m *mockMirrorSource) ListCampaigns(ctx context.Context, params apiclient.ListParams) (apiclient.Result[model.Campaign], error) {
	if m.campaignsErr != nil {
		return apiclient.Result[model.Campaign]{}, m.campaignsErr
	}
	return apiclient.Result[model.Campaign]{Items: m.campaigns, Total: len(m.campaigns)}, nil
}

// mockMirrorStore implements a test double for MirrorStore
type mockMirrorStore struct {
	content   []model.ContentRecord
	campaigns []model.Campaign
	upsertErr error
}

func (m *mockMirrorStore) UpsertContent(ctx context.Context, records []model.ContentRecord) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.content = append(m.content, records...)
	return nil
}

func (m *mockMirrorStore) UpsertCampaigns(ctx context.Context, campaigns []model.Campaign) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.campaigns = append(m.campaigns, campaigns...)
	return nil
}

func TestSyncMirror(t *testing.T) {
	source := &mockMirrorSource{
		content: []model.ContentRecord{
			{ID: "1", Title: "Medical Outreach", Type: model.TypeOutreach},
			{ID: "2", Title: "About us", Type: model.TypePage},
		},
		campaigns: []model.Campaign{
			{ID: "c-1", Title: "Borehole fund", Status: model.CampaignActive},
		},
	}
	store := &mockMirrorStore{}

	report, err := SyncMirror(context.Background(), source, store, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 2, report.ContentRecords)
	assert.Equal(t, 1, report.Campaigns)
	assert.Len(t, store.content, 2)
	assert.Len(t, store.campaigns, 1)
}

func TestSyncMirror_SourceError(t *testing.T) {
	boom := errors.New("api down")
	source := &mockMirrorSource{contentErr: boom}
	store := &mockMirrorStore{}

	report, err := SyncMirror(context.Background(), source, store, zap.NewNop())
	assert.Nil(t, report)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, store.content)
}

func TestSyncMirror_StoreError(t *testing.T) {
	source := &mockMirrorSource{content: []model.ContentRecord{{ID: "1", Title: "One"}}}
	boom := errors.New("db down")
	store := &mockMirrorStore{upsertErr: boom}

	report, err := SyncMirror(context.Background(), source, store, zap.NewNop())
	assert.Nil(t, report)
	assert.ErrorIs(t, err, boom)
}
