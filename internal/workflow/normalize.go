package workflow

import (
	"fmt"

	"request-approvals/internal/entities"
)

// SchemaVersion is stamped on every normalized record.
// Version 2 also reopens pending records whose current level matches no approval.
const SchemaVersion = 2

// Normalize repairs records written by older schemas in place and reports
// whether anything changed. Running it twice yields the same record.
func Normalize(req *entities.RequestForm) bool {
	changed := false

	if req.Status == "" {
		req.Status = entities.RequestDraft
		changed = true
	}
	if req.CurrentLevel < 0 {
		req.CurrentLevel = 0
		changed = true
	}
	if req.Approvals == nil {
		req.Approvals = []entities.Approval{}
		changed = true
	}
	if req.Comments == nil {
		req.Comments = []entities.RequestComment{}
		changed = true
	}

	taken := make(map[string]struct{}, len(req.Approvals))
	for _, a := range req.Approvals {
		if a.ID != "" {
			taken[a.ID] = struct{}{}
		}
	}
	for i := range req.Approvals {
		a := &req.Approvals[i]
		if a.ID == "" {
			a.ID = repairedApprovalID(req.ID, i, taken)
			taken[a.ID] = struct{}{}
			changed = true
		}
		if a.Status == "" {
			a.Status = entities.ApprovalPending
			changed = true
		}
	}

	if req.Status == entities.RequestPending && !hasLevel(req.Approvals, req.CurrentLevel) {
		if level, ok := lowestPendingLevel(req.Approvals); ok {
			req.CurrentLevel = level
			changed = true
		}
	}

	if req.SchemaVersion != SchemaVersion {
		req.SchemaVersion = SchemaVersion
		changed = true
	}
	return changed
}

func hasLevel(approvals []entities.Approval, level int) bool {
	for _, a := range approvals {
		if a.Level == level {
			return true
		}
	}
	return false
}

// lowestPendingLevel returns the smallest level that still has a pending approval.
func lowestPendingLevel(approvals []entities.Approval) (int, bool) {
	level, found := 0, false
	for _, a := range approvals {
		if a.Status == entities.ApprovalPending && (!found || a.Level < level) {
			level, found = a.Level, true
		}
	}
	return level, found
}

// repairedApprovalID derives a stable id from the request id and position,
// appending a counter only when that id is already in use.
func repairedApprovalID(requestID string, index int, taken map[string]struct{}) string {
	base := fmt.Sprintf("approval-%s-%d", requestID, index)
	id := base
	for n := 1; ; n++ {
		if _, ok := taken[id]; !ok {
			return id
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}
