package workflow

import (
	"testing"

	"request-approvals/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestCanView(t *testing.T) {
	req := draftWith(t, entities.Approver{UserID: carol.ID, Level: 2})

	require.True(t, CanView(requester, req))
	require.True(t, CanView(carol, req))
	require.True(t, CanView(admin, req))
	require.False(t, CanView(stranger, req))
	require.False(t, CanView(entities.User{}, req))
	require.False(t, CanView(requester, nil))
}

func TestCanViewFollowsAssignment(t *testing.T) {
	req := draftWith(t)
	require.False(t, CanView(stranger, req))

	_, err := AddApprover(req, requester, entities.Approver{UserID: stranger.ID, Level: 1})
	require.NoError(t, err)
	require.True(t, CanView(stranger, req))
}

func TestCanAct(t *testing.T) {
	req := draftWith(t,
		entities.Approver{UserID: alice.ID, Level: 1},
		entities.Approver{UserID: carol.ID, Level: 2},
	)
	require.False(t, CanAct(alice, req))

	require.NoError(t, Submit(req, requester))
	require.True(t, CanAct(alice, req))
	require.False(t, CanAct(carol, req))
	require.False(t, CanAct(requester, req))
	require.False(t, CanAct(admin, req))

	require.NoError(t, decide(t, req, alice, entities.ApprovalApproved))
	require.False(t, CanAct(alice, req))
	require.True(t, CanAct(carol, req))
	require.True(t, CanView(alice, req))
}
