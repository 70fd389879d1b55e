package domain

import (
	"context"
	"fmt"

	"request-approvals/internal/entities"
)

// PreApproversForType lists the pre-approver sets offered to actor for a
// request type: global defaults first, then the actor's own sets.
func (u *Usecase) PreApproversForType(ctx context.Context, actor entities.User, requestType string) ([]entities.PreApproverSet, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if requestType == "" {
		return nil, fmt.Errorf("%w: request type is required", entities.ErrInvalidArgument)
	}
	sets, err := u.dir.PreApproverSets(ctx, requestType)
	if err != nil {
		return nil, err
	}

	out := make([]entities.PreApproverSet, 0, len(sets))
	for _, s := range sets {
		if s.IsGlobal && s.IsDefault {
			out = append(out, s)
		}
	}
	for _, s := range sets {
		if !s.IsGlobal && s.CreatedBy == actor.ID {
			out = append(out, s)
		}
	}
	return out, nil
}

// AvailableApprovers lists directory approvers other than the actor.
func (u *Usecase) AvailableApprovers(ctx context.Context, actor entities.User) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, err := u.dir.Approvers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.User, 0, len(users))
	for _, usr := range users {
		if usr.ID != actor.ID {
			out = append(out, usr)
		}
	}
	return out, nil
}

// Authenticate resolves the acting user by id.
func (u *Usecase) Authenticate(ctx context.Context, userID string) (entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return entities.User{}, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.dir.User(ctx, userID)
}
