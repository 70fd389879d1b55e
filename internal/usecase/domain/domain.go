// Package domain implements the workflow engine: it serializes work per
// request, loads fresh state, applies workflow transitions and persists the
// whole record.
package domain

import (
	"context"
	"fmt"
	"time"

	"request-approvals/internal/directory"
	"request-approvals/internal/entities"
	"request-approvals/internal/metrics"
	"request-approvals/internal/repository"
	"request-approvals/internal/workflow"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log     *zap.SugaredLogger
	repo    repository.Repository
	dir     directory.Directory
	locks   *keyLock
	timeout time.Duration
	now     func() time.Time
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	dir directory.Directory,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		log:     log.Named("engine"),
		repo:    repo,
		dir:     dir,
		locks:   newKeyLock(),
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// mutate runs fn against a freshly loaded copy of request id while holding the
// request's lock, then validates and stores the result. Nothing is written when
// fn or validation fails.
func (u *Usecase) mutate(
	ctx context.Context,
	op, id string,
	fn func(req *entities.RequestForm) error,
) (res *entities.RequestForm, err error) {
	defer func(start time.Time) { metrics.Observe(op, start, err) }(time.Now())

	if id == "" {
		return nil, fmt.Errorf("%w: request id is required", entities.ErrInvalidArgument)
	}

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	unlock := u.locks.Lock(id)
	defer unlock()

	req, err := u.repo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	from := req.Status

	if err := fn(req); err != nil {
		return nil, err
	}
	if err := workflow.Validate(req); err != nil {
		u.log.Errorw("refusing to persist invalid request", "op", op, "request_id", id, "error", err)
		return nil, err
	}
	if err := u.repo.PutRequest(ctx, *req); err != nil {
		u.log.Errorw("failed to store request", "op", op, "request_id", id, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.Transition(from, req.Status)
	return req, nil
}
