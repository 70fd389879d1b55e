// Package entities contains core business entities.
package entities

import "time"

// RequestStatus enumerates request lifecycle states.
type RequestStatus string

const (
	// RequestDraft is the initial state, owned by the requester.
	RequestDraft RequestStatus = "draft"
	// RequestPending marks a submitted request awaiting approvals.
	RequestPending RequestStatus = "pending"
	// RequestApproved is terminal: every level cleared.
	RequestApproved RequestStatus = "approved"
	// RequestRejected is terminal: some approver vetoed.
	RequestRejected RequestStatus = "rejected"
	// RequestCancelled is terminal: withdrawn by the requester.
	RequestCancelled RequestStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are permitted.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestApproved || s == RequestRejected || s == RequestCancelled
}

// Valid reports whether s is a known request status.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestDraft, RequestPending, RequestApproved, RequestRejected, RequestCancelled:
		return true
	}
	return false
}

// ApprovalStatus enumerates the decision state of a single approval slot.
type ApprovalStatus string

const (
	// ApprovalPending awaits the approver's decision.
	ApprovalPending ApprovalStatus = "pending"
	// ApprovalApproved records a sign-off.
	ApprovalApproved ApprovalStatus = "approved"
	// ApprovalRejected records a veto.
	ApprovalRejected ApprovalStatus = "rejected"
)

// Valid reports whether s is a known approval status.
func (s ApprovalStatus) Valid() bool {
	return s == ApprovalPending || s == ApprovalApproved || s == ApprovalRejected
}

// Requester is a snapshot of the requesting user taken at creation time.
type Requester struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Position string `json:"position"`
}

// Approval is one approver's slot within a request.
type Approval struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	UserName     string         `json:"userName"`
	UserAvatar   string         `json:"userAvatar"`
	UserPosition string         `json:"userPosition"`
	Level        int            `json:"level"`
	Status       ApprovalStatus `json:"status"`
	Comments     string         `json:"comments,omitempty"`
	Timestamp    *time.Time     `json:"timestamp,omitempty"`
}

// RequestComment is an immutable entry of the request timeline.
type RequestComment struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"requestId"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// RequestItem is an informational line item.
type RequestItem struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	Quantity      float64  `json:"quantity"`
	Unit          string   `json:"unit"`
	EstimatedCost *float64 `json:"estimatedCost,omitempty"`
}

// RequestForm is the aggregate root of the approval workflow.
type RequestForm struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Type          string           `json:"type"`
	RequestedBy   Requester        `json:"requestedBy"`
	Department    string           `json:"department"`
	DateRequested time.Time        `json:"dateRequested"`
	DateNeeded    *time.Time       `json:"dateNeeded,omitempty"`
	Status        RequestStatus    `json:"status"`
	CurrentLevel  int              `json:"currentLevel"`
	Approvals     []Approval       `json:"approvals"`
	Comments      []RequestComment `json:"comments"`
	Items         []RequestItem    `json:"items,omitempty"`
	SchemaVersion int              `json:"schemaVersion,omitempty"`
}

// FindApproval returns the index of the approval with the given id or -1.
func (r *RequestForm) FindApproval(id string) int {
	for i := range r.Approvals {
		if r.Approvals[i].ID == id {
			return i
		}
	}
	return -1
}

// HasApprover reports whether userID already holds an approval slot.
func (r *RequestForm) HasApprover(userID string) bool {
	for _, a := range r.Approvals {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

// RequestInput carries requester-supplied fields for a new request.
type RequestInput struct {
	Title            string
	Description      string
	Type             string
	Department       string
	DateNeeded       *time.Time
	Items            []RequestItem
	Approvers        []Approver
	PreApproverSetID string
	Submit           bool
}

// RequestPatch carries editable draft fields; nil means unchanged.
type RequestPatch struct {
	Title       *string
	Description *string
	Type        *string
	Department  *string
	DateNeeded  *time.Time
	Items       *[]RequestItem
}

// Decision is an approver's verdict on one approval slot.
type Decision struct {
	ApprovalID string
	Status     ApprovalStatus
	Comment    string
}
