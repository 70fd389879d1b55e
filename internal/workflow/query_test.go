package workflow

import (
	"testing"
	"time"

	"request-approvals/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestQueries(t *testing.T) {
	older := draftWith(t, entities.Approver{UserID: alice.ID, Level: 1})
	require.NoError(t, Submit(older, requester))

	newer := draftWith(t, entities.Approver{UserID: alice.ID, Level: 2})
	newer.DateRequested = now.Add(time.Hour)
	require.NoError(t, Submit(newer, requester))

	draft := draftWith(t, entities.Approver{UserID: alice.ID, Level: 1})

	own, err := NewRequest(alice, entities.RequestInput{Title: "Own", Type: "leave",
		Approvers: []entities.Approver{{UserID: requester.ID, Level: 1}}}, now)
	require.NoError(t, err)
	require.NoError(t, Submit(own, alice))

	all := []entities.RequestForm{*older, *newer, *draft, *own}

	mine := OwnedBy(all, requester)
	require.Len(t, mine, 3)

	inbox := AwaitingAction(all, alice)
	require.Len(t, inbox, 2)
	require.Equal(t, newer.ID, inbox[0].ID)
	require.Equal(t, older.ID, inbox[1].ID)
}
