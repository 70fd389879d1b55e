package memory

import (
	"context"
	"testing"
	"time"

	"request-approvals/internal/entities"
	"request-approvals/internal/workflow"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(zap.NewNop().Sugar())
	require.NoError(t, s.OnStart(ctx))

	_, err := s.GetRequest(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrRequestNotFound)

	req := entities.RequestForm{
		ID:            "req-1",
		Title:         "Chair",
		Type:          "purchase",
		RequestedBy:   entities.Requester{ID: "u1"},
		DateRequested: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Status:        entities.RequestDraft,
		Approvals:     []entities.Approval{},
		Comments:      []entities.RequestComment{},
	}
	require.NoError(t, s.PutRequest(ctx, req))

	got, err := s.GetRequest(ctx, "req-1")
	require.NoError(t, err)
	require.Equal(t, "Chair", got.Title)
	require.Equal(t, workflow.SchemaVersion, got.SchemaVersion)

	got.Title = "Changed locally"
	again, err := s.GetRequest(ctx, "req-1")
	require.NoError(t, err)
	require.Equal(t, "Chair", again.Title)

	list, err := s.ListRequests(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, s.DeleteRequest(ctx, "req-1"))
	require.ErrorIs(t, s.DeleteRequest(ctx, "req-1"), entities.ErrRequestNotFound)
}

func TestStoreNormalizesRawRecords(t *testing.T) {
	s := New(zap.NewNop().Sugar())
	s.PutRaw("req-old", []byte(`{"id":"req-old","title":"t","requestedBy":{"id":"u"},"dateRequested":"2024-01-01T00:00:00Z","approvals":[{"userId":"a","level":1}],"comments":[]}`))

	got, err := s.GetRequest(context.Background(), "req-old")
	require.NoError(t, err)
	require.Equal(t, entities.RequestDraft, got.Status)
	require.Equal(t, "approval-req-old-0", got.Approvals[0].ID)
}
