package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"request-approvals/internal/entities"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	require.Equal(t, "ok", Outcome(nil))
	require.Equal(t, "not_found", Outcome(fmt.Errorf("x: %w", entities.ErrApprovalNotFound)))
	require.Equal(t, "invalid_transition", Outcome(entities.ErrInvalidTransition))
	require.Equal(t, "unauthorized", Outcome(entities.ErrUnauthorized))
	require.Equal(t, "invalid", Outcome(entities.ErrApproverExists))
	require.Equal(t, "error", Outcome(errors.New("boom")))
}

func TestObserveAndTransition(t *testing.T) {
	before := testutil.ToFloat64(OperationsTotal.WithLabelValues("test_op", "unauthorized"))
	Observe("test_op", time.Now(), entities.ErrUnauthorized)
	require.Equal(t, before+1, testutil.ToFloat64(OperationsTotal.WithLabelValues("test_op", "unauthorized")))

	moved := StatusTransitions.WithLabelValues("draft", "pending")
	before = testutil.ToFloat64(moved)
	Transition(entities.RequestDraft, entities.RequestPending)
	Transition(entities.RequestPending, entities.RequestPending)
	require.Equal(t, before+1, testutil.ToFloat64(moved))
}
