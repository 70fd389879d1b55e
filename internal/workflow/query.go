package workflow

import (
	"sort"

	"request-approvals/internal/entities"
)

// OwnedBy returns the requests created by user, newest first.
func OwnedBy(requests []entities.RequestForm, user entities.User) []entities.RequestForm {
	out := make([]entities.RequestForm, 0)
	for _, r := range requests {
		if r.RequestedBy.ID == user.ID {
			out = append(out, r)
		}
	}
	newestFirst(out)
	return out
}

// AwaitingAction returns pending requests of other users where user holds a
// pending approval at the current level, newest first.
func AwaitingAction(requests []entities.RequestForm, user entities.User) []entities.RequestForm {
	out := make([]entities.RequestForm, 0)
	for i := range requests {
		r := &requests[i]
		if r.RequestedBy.ID == user.ID {
			continue
		}
		if CanAct(user, r) {
			out = append(out, *r)
		}
	}
	newestFirst(out)
	return out
}

func newestFirst(requests []entities.RequestForm) {
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].DateRequested.After(requests[j].DateRequested)
	})
}
