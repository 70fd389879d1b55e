// Package workflow holds the approval state machine as pure functions over
// request snapshots. Nothing here performs I/O.
package workflow

import "request-approvals/internal/entities"

// CanView reports whether user may read req: the requester, any assigned
// approver regardless of level or status, or an administrator.
func CanView(user entities.User, req *entities.RequestForm) bool {
	if req == nil || user.ID == "" {
		return false
	}
	if req.RequestedBy.ID == user.ID {
		return true
	}
	if req.HasApprover(user.ID) {
		return true
	}
	return user.IsAdministrator()
}

// CanAct reports whether user holds a pending approval at the current level
// of a pending request.
func CanAct(user entities.User, req *entities.RequestForm) bool {
	return actionableApproval(user.ID, req) >= 0
}

func actionableApproval(userID string, req *entities.RequestForm) int {
	if req == nil || userID == "" || req.Status != entities.RequestPending {
		return -1
	}
	for i, a := range req.Approvals {
		if a.UserID == userID && a.Level == req.CurrentLevel && a.Status == entities.ApprovalPending {
			return i
		}
	}
	return -1
}

// IsRequester reports whether user created req.
func IsRequester(user entities.User, req *entities.RequestForm) bool {
	return req != nil && user.ID != "" && req.RequestedBy.ID == user.ID
}
