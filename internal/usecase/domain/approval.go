package domain

import (
	"context"
	"fmt"

	"request-approvals/internal/entities"
	"request-approvals/internal/workflow"
)

// RecordDecision applies an approver's verdict and advances or closes the
// request.
func (u *Usecase) RecordDecision(ctx context.Context, actor entities.User, id string, d entities.Decision) (*entities.RequestForm, error) {
	if d.Status != entities.ApprovalApproved && d.Status != entities.ApprovalRejected {
		return nil, fmt.Errorf("%w: decision must be approved or rejected", entities.ErrInvalidArgument)
	}

	var level int
	req, err := u.mutate(ctx, "record_decision", id, func(req *entities.RequestForm) error {
		level = req.CurrentLevel
		_, _, err := workflow.Decide(req, actor, d, u.now())
		return err
	})
	if err != nil {
		u.log.Warnw("decision refused",
			"request_id", id,
			"approval_id", d.ApprovalID,
			"actor", actor.ID,
			"error", err,
		)
		return nil, err
	}

	u.log.Infow("decision recorded",
		"request_id", id,
		"approval_id", d.ApprovalID,
		"decision", d.Status,
		"level", level,
		"current_level", req.CurrentLevel,
		"status", req.Status,
	)
	return req, nil
}

// AddComment appends a comment by a user who may view the request.
func (u *Usecase) AddComment(ctx context.Context, actor entities.User, id, content string) (*entities.RequestComment, error) {
	var added *entities.RequestComment
	_, err := u.mutate(ctx, "add_comment", id, func(req *entities.RequestForm) error {
		c, err := workflow.Comment(req, actor, content, u.now())
		added = c
		return err
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}
