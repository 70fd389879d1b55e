package workflow

import (
	"fmt"

	"request-approvals/internal/entities"
)

// Validate checks the structural invariants of a request before it is persisted.
func Validate(req *entities.RequestForm) error {
	if req.ID == "" {
		return fmt.Errorf("%w: request id is empty", entities.ErrInvalidArgument)
	}
	if !req.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, req.Status)
	}
	if req.CurrentLevel < 0 {
		return fmt.Errorf("%w: negative current level", entities.ErrInvalidArgument)
	}

	ids := make(map[string]struct{}, len(req.Approvals))
	users := make(map[string]struct{}, len(req.Approvals))
	allApproved, anyRejected := true, false
	for _, a := range req.Approvals {
		if a.ID == "" {
			return fmt.Errorf("%w: approval without id", entities.ErrInvalidArgument)
		}
		if _, dup := ids[a.ID]; dup {
			return fmt.Errorf("%w: duplicate approval id %s", entities.ErrInvalidArgument, a.ID)
		}
		ids[a.ID] = struct{}{}
		if _, dup := users[a.UserID]; dup {
			return fmt.Errorf("%w: duplicate approver %s", entities.ErrApproverExists, a.UserID)
		}
		users[a.UserID] = struct{}{}
		if a.Level < 1 {
			return fmt.Errorf("%w: approval %s has level %d", entities.ErrInvalidArgument, a.ID, a.Level)
		}
		if !a.Status.Valid() {
			return fmt.Errorf("%w: approval %s has status %q", entities.ErrInvalidArgument, a.ID, a.Status)
		}
		allApproved = allApproved && a.Status == entities.ApprovalApproved
		anyRejected = anyRejected || a.Status == entities.ApprovalRejected
	}

	switch req.Status {
	case entities.RequestApproved:
		if len(req.Approvals) == 0 || !allApproved {
			return fmt.Errorf("%w: approved request with undecided approvals", entities.ErrInvalidTransition)
		}
	case entities.RequestRejected:
		if !anyRejected {
			return fmt.Errorf("%w: rejected request without a rejection", entities.ErrInvalidTransition)
		}
	case entities.RequestDraft:
		if req.CurrentLevel != 0 {
			return fmt.Errorf("%w: draft with current level %d", entities.ErrInvalidTransition, req.CurrentLevel)
		}
	}
	return nil
}
