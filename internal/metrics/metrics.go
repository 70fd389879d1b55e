// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"request-approvals/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationsTotal counts engine operations by outcome.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "approvals_operations_total",
			Help: "Total number of workflow engine operations",
		},
		[]string{"operation", "outcome"},
	)

	// OperationDuration tracks engine operation latency, store I/O included.
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "approvals_operation_duration_seconds",
			Help:    "Workflow engine operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// StatusTransitions counts request status changes.
	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "approvals_status_transitions_total",
			Help: "Total number of request status transitions",
		},
		[]string{"from", "to"},
	)

	// HTTPRequestsTotal counts served HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "approvals_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)
)

// Observe records one finished operation.
func Observe(operation string, start time.Time, err error) {
	OperationsTotal.WithLabelValues(operation, Outcome(err)).Inc()
	OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Transition records a status change; equal states are ignored.
func Transition(from, to entities.RequestStatus) {
	if from == to {
		return
	}
	StatusTransitions.WithLabelValues(string(from), string(to)).Inc()
}

// HTTPRequest records one served request.
func HTTPRequest(method string, status int) {
	HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Outcome buckets an operation error into a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case entities.IsNotFound(err):
		return "not_found"
	case errors.Is(err, entities.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, entities.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, entities.ErrInvalidArgument), errors.Is(err, entities.ErrApproverExists):
		return "invalid"
	default:
		return "error"
	}
}
