package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockBulkClient implements a test double for ContentBulkClient
type mockBulkClient struct {
	patches map[string]map[string]any
	deleted []string
	failIDs map[string]error
}

func newMockBulkClient() *mockBulkClient {
	return &mockBulkClient{
		patches: make(map[string]map[string]any),
		failIDs: make(map[string]error),
	}
}

func (m *mockBulkClient) PatchContent(ctx context.Context, id string, fields map[string]any) error {
	if err, ok := m.failIDs[id]; ok {
		return err
	}
	m.patches[id] = fields
	return nil
}

func (m *mockBulkClient) DeleteContent(ctx context.Context, id string) error {
	if err, ok := m.failIDs[id]; ok {
		return err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func TestBulkContentAction_Publish(t *testing.T) {
	mock := newMockBulkClient()
	ids := []string{"a", "b", "c"}

	report, err := BulkContentAction(context.Background(), mock, zap.NewNop(), BulkPublish, ids)
	require.NoError(t, err)

	assert.NotEmpty(t, report.BatchID)
	assert.Equal(t, ids, report.Succeeded)
	assert.Empty(t, report.Failed)
	for _, id := range ids {
		assert.Equal(t, map[string]any{"status": "published"}, mock.patches[id])
	}
}

func TestBulkContentAction_Archive(t *testing.T) {
	mock := newMockBulkClient()
	_, err := BulkContentAction(context.Background(), mock, zap.NewNop(), BulkArchive, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"status": "archived"}, mock.patches["a"])
}

func TestBulkContentAction_Delete(t *testing.T) {
	mock := newMockBulkClient()
	report, err := BulkContentAction(context.Background(), mock, zap.NewNop(), BulkDelete, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, mock.deleted)
	assert.Len(t, report.Succeeded, 2)
}

func TestBulkContentAction_PartialFailure(t *testing.T) {
	mock := newMockBulkClient()
	boom := errors.New("record locked")
	mock.failIDs["b"] = boom

	report, err := BulkContentAction(context.Background(), mock, zap.NewNop(), BulkPublish, []string{"a", "b", "c"})
	require.NoError(t, err, "a partial failure is reported, not returned")

	// The batch keeps going past the failure
	assert.Equal(t, []string{"a", "c"}, report.Succeeded)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "b", report.Failed[0].ID)
	assert.ErrorIs(t, report.Failed[0].Err, boom)
}

func TestBulkContentAction_UnknownAction(t *testing.T) {
	mock := newMockBulkClient()
	report, err := BulkContentAction(context.Background(), mock, zap.NewNop(), BulkAction("unpublish"), []string{"a"})
	assert.Nil(t, report)
	assert.ErrorContains(t, err, "unknown bulk action")
	assert.Empty(t, mock.patches)
}

func TestBulkContentAction_EmptySelection(t *testing.T) {
	mock := newMockBulkClient()
	report, err := BulkContentAction(context.Background(), mock, zap.NewNop(), BulkDelete, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Succeeded)
	assert.Empty(t, report.Failed)
}
