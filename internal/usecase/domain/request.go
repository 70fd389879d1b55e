package domain

import (
	"context"
	"fmt"
	"time"

	"request-approvals/internal/directory"
	"request-approvals/internal/entities"
	"request-approvals/internal/metrics"
	"request-approvals/internal/workflow"
)

// CreateRequest stores a new draft owned by actor. With in.Submit set and at
// least one approver the draft is submitted straight away.
func (u *Usecase) CreateRequest(ctx context.Context, actor entities.User, in entities.RequestInput) (res *entities.RequestForm, err error) {
	defer func(start time.Time) { metrics.Observe("create_request", start, err) }(time.Now())

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	approvers := make([]entities.Approver, 0, len(in.Approvers))
	if in.PreApproverSetID != "" {
		set, err := u.dir.PreApproverSet(ctx, in.PreApproverSetID)
		if err != nil {
			return nil, err
		}
		approvers = append(approvers, set.Approvers...)
	}
	for _, ap := range in.Approvers {
		resolved, err := u.resolveApprover(ctx, ap)
		if err != nil {
			return nil, err
		}
		approvers = append(approvers, resolved)
	}
	in.Approvers = approvers

	req, err := workflow.NewRequest(actor, in, u.now())
	if err != nil {
		return nil, err
	}
	if in.Submit && len(req.Approvals) > 0 {
		if err := workflow.Submit(req, actor); err != nil {
			return nil, err
		}
	}
	if err := workflow.Validate(req); err != nil {
		return nil, err
	}

	unlock := u.locks.Lock(req.ID)
	defer unlock()
	if err := u.repo.PutRequest(ctx, *req); err != nil {
		u.log.Errorw("failed to store request", "op", "create_request", "request_id", req.ID, "error", err)
		return nil, fmt.Errorf("create request: %w", err)
	}

	metrics.Transition(entities.RequestDraft, req.Status)
	u.log.Infow("request created",
		"request_id", req.ID,
		"requester", actor.ID,
		"approvers", len(req.Approvals),
		"status", req.Status,
	)
	return req, nil
}

// UpdateDraft edits the requester-owned fields of a draft.
func (u *Usecase) UpdateDraft(ctx context.Context, actor entities.User, id string, patch entities.RequestPatch) (*entities.RequestForm, error) {
	return u.mutate(ctx, "update_draft", id, func(req *entities.RequestForm) error {
		return workflow.Update(req, actor, patch)
	})
}

// ApplyPreApproverSet replaces the approvers of a draft with a pre-approver set.
func (u *Usecase) ApplyPreApproverSet(ctx context.Context, actor entities.User, id, setID string) (*entities.RequestForm, error) {
	if setID == "" {
		return nil, fmt.Errorf("%w: pre-approver set id is required", entities.ErrInvalidArgument)
	}
	set, err := u.dir.PreApproverSet(ctx, setID)
	if err != nil {
		return nil, err
	}
	req, err := u.mutate(ctx, "apply_pre_approvers", id, func(req *entities.RequestForm) error {
		return workflow.ApplyPreApprovers(req, actor, set)
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("pre-approver set applied", "request_id", id, "set_id", setID)
	return req, nil
}

// AddApprover assigns a directory user to a draft at the given level.
func (u *Usecase) AddApprover(ctx context.Context, actor entities.User, id string, approver entities.Approver) (*entities.RequestForm, error) {
	resolved, err := u.resolveApprover(ctx, approver)
	if err != nil {
		return nil, err
	}
	return u.mutate(ctx, "add_approver", id, func(req *entities.RequestForm) error {
		_, err := workflow.AddApprover(req, actor, resolved)
		return err
	})
}

// RemoveApprover drops an approval slot from a draft.
func (u *Usecase) RemoveApprover(ctx context.Context, actor entities.User, id, approvalID string) (*entities.RequestForm, error) {
	return u.mutate(ctx, "remove_approver", id, func(req *entities.RequestForm) error {
		return workflow.RemoveApprover(req, actor, approvalID)
	})
}

// Submit sends a draft for approval.
func (u *Usecase) Submit(ctx context.Context, actor entities.User, id string) (*entities.RequestForm, error) {
	req, err := u.mutate(ctx, "submit", id, func(req *entities.RequestForm) error {
		return workflow.Submit(req, actor)
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("request submitted", "request_id", id, "current_level", req.CurrentLevel)
	return req, nil
}

// CancelRequest withdraws a request that has not reached a terminal state.
func (u *Usecase) CancelRequest(ctx context.Context, actor entities.User, id string) (*entities.RequestForm, error) {
	req, err := u.mutate(ctx, "cancel", id, func(req *entities.RequestForm) error {
		return workflow.Cancel(req, actor)
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("request cancelled", "request_id", id)
	return req, nil
}

// DeleteRequest destroys a draft.
func (u *Usecase) DeleteRequest(ctx context.Context, actor entities.User, id string) (err error) {
	defer func(start time.Time) { metrics.Observe("delete_request", start, err) }(time.Now())

	if id == "" {
		return fmt.Errorf("%w: request id is required", entities.ErrInvalidArgument)
	}

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	unlock := u.locks.Lock(id)
	defer unlock()

	req, err := u.repo.GetRequest(ctx, id)
	if err != nil {
		return err
	}
	if err := workflow.CheckDelete(req, actor); err != nil {
		return err
	}
	if err := u.repo.DeleteRequest(ctx, id); err != nil {
		return err
	}
	u.log.Infow("request deleted", "request_id", id)
	return nil
}

// GetRequest returns a request the actor may view.
func (u *Usecase) GetRequest(ctx context.Context, actor entities.User, id string) (*entities.RequestForm, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: request id is required", entities.ErrInvalidArgument)
	}
	req, err := u.repo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !workflow.CanView(actor, req) {
		return nil, fmt.Errorf("%w: cannot view request %s", entities.ErrUnauthorized, id)
	}
	return req, nil
}

// ListUserRequests returns the actor's own requests, newest first.
func (u *Usecase) ListUserRequests(ctx context.Context, actor entities.User) ([]entities.RequestForm, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	all, err := u.repo.ListRequests(ctx)
	if err != nil {
		return nil, err
	}
	return workflow.OwnedBy(all, actor), nil
}

// ListPendingApprovals returns the requests waiting on the actor's decision,
// newest first.
func (u *Usecase) ListPendingApprovals(ctx context.Context, actor entities.User) ([]entities.RequestForm, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	all, err := u.repo.ListRequests(ctx)
	if err != nil {
		return nil, err
	}
	return workflow.AwaitingAction(all, actor), nil
}

func (u *Usecase) resolveApprover(ctx context.Context, ap entities.Approver) (entities.Approver, error) {
	if ap.UserID == "" {
		return ap, fmt.Errorf("%w: approver user id is required", entities.ErrInvalidArgument)
	}
	user, err := u.dir.User(ctx, ap.UserID)
	if err != nil {
		return ap, err
	}
	return directory.Complete(ap, user), nil
}
