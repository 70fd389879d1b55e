package workflow

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"request-approvals/internal/entities"

	"github.com/google/uuid"
)

// NewID returns a fresh identifier with the given prefix.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// NewRequest builds a draft owned by requester. Approvals are copied by value
// and given fresh ids; items with a blank description are dropped.
func NewRequest(requester entities.User, in entities.RequestInput, now time.Time) (*entities.RequestForm, error) {
	if requester.ID == "" {
		return nil, fmt.Errorf("%w: requester is required", entities.ErrInvalidArgument)
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if strings.TrimSpace(in.Type) == "" {
		return nil, fmt.Errorf("%w: type is required", entities.ErrInvalidArgument)
	}

	req := &entities.RequestForm{
		ID:            NewID("req"),
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		Type:          in.Type,
		RequestedBy:   requester.AsRequester(),
		Department:    in.Department,
		DateRequested: now,
		DateNeeded:    in.DateNeeded,
		Status:        entities.RequestDraft,
		CurrentLevel:  0,
		Approvals:     []entities.Approval{},
		Comments:      []entities.RequestComment{},
		Items:         cleanItems(in.Items),
		SchemaVersion: SchemaVersion,
	}
	if err := replaceApprovers(req, in.Approvers); err != nil {
		return nil, err
	}
	return req, nil
}

// Update applies a patch to a draft on behalf of its requester.
func Update(req *entities.RequestForm, actor entities.User, patch entities.RequestPatch) error {
	if err := requireDraftOwner(req, actor); err != nil {
		return err
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if patch.Type != nil && strings.TrimSpace(*patch.Type) == "" {
		return fmt.Errorf("%w: type is required", entities.ErrInvalidArgument)
	}

	if patch.Title != nil {
		req.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		req.Description = *patch.Description
	}
	if patch.Type != nil {
		req.Type = *patch.Type
	}
	if patch.Department != nil {
		req.Department = *patch.Department
	}
	if patch.DateNeeded != nil {
		d := *patch.DateNeeded
		req.DateNeeded = &d
	}
	if patch.Items != nil {
		req.Items = cleanItems(*patch.Items)
	}
	return nil
}

// ApplyPreApprovers replaces the approvals of a draft with the set's approvers.
func ApplyPreApprovers(req *entities.RequestForm, actor entities.User, set entities.PreApproverSet) error {
	if err := requireDraftOwner(req, actor); err != nil {
		return err
	}
	return replaceApprovers(req, set.Approvers)
}

// AddApprover assigns a new pending approval slot to a draft.
func AddApprover(req *entities.RequestForm, actor entities.User, approver entities.Approver) (*entities.Approval, error) {
	if err := requireDraftOwner(req, actor); err != nil {
		return nil, err
	}
	if err := checkApprover(approver); err != nil {
		return nil, err
	}
	if req.HasApprover(approver.UserID) {
		return nil, fmt.Errorf("%w: user %s", entities.ErrApproverExists, approver.UserID)
	}

	approval := newApproval(approver)
	req.Approvals = append(req.Approvals, approval)
	sortByLevel(req.Approvals)
	return &approval, nil
}

// RemoveApprover drops an approval slot from a draft.
func RemoveApprover(req *entities.RequestForm, actor entities.User, approvalID string) error {
	if err := requireDraftOwner(req, actor); err != nil {
		return err
	}
	idx := req.FindApproval(approvalID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", entities.ErrApprovalNotFound, approvalID)
	}
	req.Approvals = append(req.Approvals[:idx], req.Approvals[idx+1:]...)
	return nil
}

// Submit moves a draft to pending and opens the lowest approval level.
func Submit(req *entities.RequestForm, actor entities.User) error {
	if !IsRequester(actor, req) {
		return fmt.Errorf("%w: only the requester may submit", entities.ErrUnauthorized)
	}
	if req.Status != entities.RequestDraft {
		return fmt.Errorf("%w: cannot submit a %s request", entities.ErrInvalidTransition, req.Status)
	}
	if len(req.Approvals) == 0 {
		return fmt.Errorf("%w: at least one approver is required", entities.ErrInvalidArgument)
	}
	for _, a := range req.Approvals {
		if a.Level < 1 {
			return fmt.Errorf("%w: approval %s has level %d", entities.ErrInvalidArgument, a.ID, a.Level)
		}
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
		}
		a.Status = entities.ApprovalPending
		a.Comments = ""
		a.Timestamp = nil
	}
	sortByLevel(req.Approvals)

	req.Status = entities.RequestPending
	req.CurrentLevel = req.Approvals[0].Level
	return nil
}

// Decide records an approver's verdict and advances the workflow. It returns
// the updated approval and the audit comment appended to the timeline.
func Decide(req *entities.RequestForm, actor entities.User, d entities.Decision, now time.Time) (*entities.Approval, *entities.RequestComment, error) {
	if d.Status != entities.ApprovalApproved && d.Status != entities.ApprovalRejected {
		return nil, nil, fmt.Errorf("%w: decision must be approved or rejected", entities.ErrInvalidArgument)
	}
	if req.Status != entities.RequestPending {
		return nil, nil, fmt.Errorf("%w: request is %s", entities.ErrInvalidTransition, req.Status)
	}
	idx := req.FindApproval(d.ApprovalID)
	if idx < 0 {
		return nil, nil, fmt.Errorf("%w: %s", entities.ErrApprovalNotFound, d.ApprovalID)
	}
	approval := &req.Approvals[idx]
	if approval.Status != entities.ApprovalPending {
		return nil, nil, fmt.Errorf("%w: approval already %s", entities.ErrInvalidTransition, approval.Status)
	}
	if approval.Level != req.CurrentLevel {
		return nil, nil, fmt.Errorf("%w: approval level %d is not the current level %d",
			entities.ErrInvalidTransition, approval.Level, req.CurrentLevel)
	}
	if approval.UserID != actor.ID {
		return nil, nil, fmt.Errorf("%w: approval belongs to another user", entities.ErrUnauthorized)
	}

	level := req.CurrentLevel
	at := now
	approval.Status = d.Status
	approval.Comments = strings.TrimSpace(d.Comment)
	approval.Timestamp = &at

	switch d.Status {
	case entities.ApprovalRejected:
		req.Status = entities.RequestRejected
	case entities.ApprovalApproved:
		if levelCleared(req.Approvals, level) {
			if next, ok := nextLevel(req.Approvals, level); ok {
				req.CurrentLevel = next
			} else {
				req.Status = entities.RequestApproved
			}
		}
	}

	audit := entities.RequestComment{
		ID:         NewID("comment"),
		RequestID:  req.ID,
		UserID:     actor.ID,
		UserName:   actor.Name,
		UserAvatar: actor.Avatar,
		Content:    decisionSummary(d.Status, level, approval.Comments),
		Timestamp:  now,
	}
	req.Comments = append(req.Comments, audit)

	updated := *approval
	return &updated, &audit, nil
}

// Comment appends a timeline entry authored by actor.
func Comment(req *entities.RequestForm, actor entities.User, content string, now time.Time) (*entities.RequestComment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content is empty", entities.ErrInvalidArgument)
	}
	if !CanView(actor, req) {
		return nil, fmt.Errorf("%w: cannot comment on this request", entities.ErrUnauthorized)
	}
	c := entities.RequestComment{
		ID:         NewID("comment"),
		RequestID:  req.ID,
		UserID:     actor.ID,
		UserName:   actor.Name,
		UserAvatar: actor.Avatar,
		Content:    content,
		Timestamp:  now,
	}
	req.Comments = append(req.Comments, c)
	return &c, nil
}

// Cancel withdraws a request on behalf of its requester. Approved and
// rejected requests are final; cancelling a cancelled request is a no-op.
func Cancel(req *entities.RequestForm, actor entities.User) error {
	if !IsRequester(actor, req) {
		return fmt.Errorf("%w: only the requester may cancel", entities.ErrUnauthorized)
	}
	switch req.Status {
	case entities.RequestApproved, entities.RequestRejected:
		return fmt.Errorf("%w: request is already %s", entities.ErrInvalidTransition, req.Status)
	}
	req.Status = entities.RequestCancelled
	return nil
}

// CheckDelete reports whether actor may destroy req.
func CheckDelete(req *entities.RequestForm, actor entities.User) error {
	return requireDraftOwner(req, actor)
}

func requireDraftOwner(req *entities.RequestForm, actor entities.User) error {
	if !IsRequester(actor, req) {
		return fmt.Errorf("%w: only the requester may change this request", entities.ErrUnauthorized)
	}
	if req.Status != entities.RequestDraft {
		return fmt.Errorf("%w: request is %s, not draft", entities.ErrInvalidTransition, req.Status)
	}
	return nil
}

func replaceApprovers(req *entities.RequestForm, approvers []entities.Approver) error {
	out := make([]entities.Approval, 0, len(approvers))
	seen := make(map[string]struct{}, len(approvers))
	for _, ap := range approvers {
		if err := checkApprover(ap); err != nil {
			return err
		}
		if _, dup := seen[ap.UserID]; dup {
			continue
		}
		seen[ap.UserID] = struct{}{}
		out = append(out, newApproval(ap))
	}
	sortByLevel(out)
	req.Approvals = out
	return nil
}

func checkApprover(ap entities.Approver) error {
	if ap.UserID == "" {
		return fmt.Errorf("%w: approver user id is required", entities.ErrInvalidArgument)
	}
	if ap.Level < 1 {
		return fmt.Errorf("%w: approver level must be positive", entities.ErrInvalidArgument)
	}
	return nil
}

func newApproval(ap entities.Approver) entities.Approval {
	return entities.Approval{
		ID:           NewID("approval"),
		UserID:       ap.UserID,
		UserName:     ap.UserName,
		UserAvatar:   ap.UserAvatar,
		UserPosition: ap.UserPosition,
		Level:        ap.Level,
		Status:       entities.ApprovalPending,
	}
}

func cleanItems(items []entities.RequestItem) []entities.RequestItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.RequestItem, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Description) == "" {
			continue
		}
		if it.ID == "" {
			it.ID = NewID("item")
		}
		out = append(out, it)
	}
	return out
}

func sortByLevel(approvals []entities.Approval) {
	sort.SliceStable(approvals, func(i, j int) bool {
		return approvals[i].Level < approvals[j].Level
	})
}

// levelCleared reports whether every approval at level is approved.
func levelCleared(approvals []entities.Approval, level int) bool {
	for _, a := range approvals {
		if a.Level == level && a.Status != entities.ApprovalApproved {
			return false
		}
	}
	return true
}

// nextLevel returns the smallest level above current; gaps in numbering are skipped.
func nextLevel(approvals []entities.Approval, current int) (int, bool) {
	next, found := 0, false
	for _, a := range approvals {
		if a.Level > current && (!found || a.Level < next) {
			next, found = a.Level, true
		}
	}
	return next, found
}

func decisionSummary(status entities.ApprovalStatus, level int, comment string) string {
	verb := "Approved"
	if status == entities.ApprovalRejected {
		verb = "Rejected"
	}
	msg := fmt.Sprintf("%s the request at level %d", verb, level)
	if comment != "" {
		msg += ": " + comment
	}
	return msg
}
