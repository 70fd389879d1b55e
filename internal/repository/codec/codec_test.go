package codec

import (
	"testing"
	"time"

	"request-approvals/internal/entities"

	"github.com/stretchr/testify/require"
)

const legacyRecord = `{
  "id": "req-lq2x",
  "title": "Team offsite",
  "description": "",
  "type": "travel",
  "requestedBy": {"id": "user-4", "name": "Regular User", "avatar": "", "position": "Staff"},
  "department": "Operations",
  "dateRequested": "2024-03-04T08:15:30.123Z",
  "dateNeeded": "2024-04-01T00:00:00.000Z",
  "approvals": [
    {"userId": "user-3", "userName": "Team Supervisor", "userAvatar": "", "userPosition": "Team Supervisor", "level": 1},
    {"userId": "user-2", "userName": "Department Manager", "userAvatar": "", "userPosition": "Department Manager", "level": 2, "status": "pending"}
  ],
  "comments": [
    {"id": "comment-1", "requestId": "req-lq2x", "userId": "user-4", "userName": "Regular User", "userAvatar": "", "content": "hi", "timestamp": "2024-03-04T09:00:00.000Z"}
  ]
}`

func TestDecodeRepairsLegacyRecord(t *testing.T) {
	req, err := Decode([]byte(legacyRecord))
	require.NoError(t, err)

	require.Equal(t, entities.RequestDraft, req.Status)
	require.Equal(t, 0, req.CurrentLevel)
	require.Equal(t, "approval-req-lq2x-0", req.Approvals[0].ID)
	require.Equal(t, entities.ApprovalPending, req.Approvals[0].Status)
	require.Equal(t, time.Date(2024, 3, 4, 8, 15, 30, 123000000, time.UTC), req.DateRequested.UTC())
	require.NotNil(t, req.DateNeeded)
	require.Len(t, req.Comments, 1)
	require.Equal(t, time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), req.Comments[0].Timestamp.UTC())
}

func TestDecodeReopensPendingRecordWithoutLevel(t *testing.T) {
	doc := `{"id":"req-stuck","status":"pending","requestedBy":{"id":"user-4"},
		"approvals":[{"id":"a1","userId":"user-3","level":1}]}`

	req, err := Decode([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, entities.RequestPending, req.Status)
	require.Equal(t, 1, req.CurrentLevel)
	require.Equal(t, entities.ApprovalPending, req.Approvals[0].Status)
}

func TestEncodeDecodeIsStableAfterRepair(t *testing.T) {
	first, err := Decode([]byte(legacyRecord))
	require.NoError(t, err)

	data, err := Encode(*first)
	require.NoError(t, err)
	second, err := Decode(data)
	require.NoError(t, err)

	again, err := Encode(*second)
	require.NoError(t, err)
	require.JSONEq(t, string(data), string(again))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte(`{"id":`))
	require.Error(t, err)
}
