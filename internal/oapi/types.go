// Package api holds the HTTP wire types and route registration of the
// approvals API.
package api

import "time"

// ErrorResponseErrorCode is the machine-readable error code.
type ErrorResponseErrorCode string

// Defines values for ErrorResponseErrorCode.
const (
	NOTFOUND          ErrorResponseErrorCode = "NOT_FOUND"
	INVALIDTRANSITION ErrorResponseErrorCode = "INVALID_TRANSITION"
	UNAUTHORIZED      ErrorResponseErrorCode = "UNAUTHORIZED"
	VALIDATION        ErrorResponseErrorCode = "VALIDATION"
	APPROVEREXISTS    ErrorResponseErrorCode = "APPROVER_EXISTS"
	UNAUTHENTICATED   ErrorResponseErrorCode = "UNAUTHENTICATED"
	INTERNAL          ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// Requester defines model for Requester.
type Requester struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Position string `json:"position"`
}

// Approval defines model for Approval.
type Approval struct {
	Id           string     `json:"id"`
	UserId       string     `json:"userId"`
	UserName     string     `json:"userName"`
	UserAvatar   string     `json:"userAvatar"`
	UserPosition string     `json:"userPosition"`
	Level        int        `json:"level"`
	Status       string     `json:"status"`
	Comments     *string    `json:"comments,omitempty"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
}

// Comment defines model for Comment.
type Comment struct {
	Id         string    `json:"id"`
	RequestId  string    `json:"requestId"`
	UserId     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// Item defines model for Item.
type Item struct {
	Id            string   `json:"id,omitempty"`
	Description   string   `json:"description"`
	Quantity      float64  `json:"quantity"`
	Unit          string   `json:"unit"`
	EstimatedCost *float64 `json:"estimatedCost,omitempty"`
}

// Request defines model for Request.
type Request struct {
	Id            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Type          string     `json:"type"`
	RequestedBy   Requester  `json:"requestedBy"`
	Department    string     `json:"department"`
	DateRequested time.Time  `json:"dateRequested"`
	DateNeeded    *time.Time `json:"dateNeeded,omitempty"`
	Status        string     `json:"status"`
	CurrentLevel  int        `json:"currentLevel"`
	Approvals     []Approval `json:"approvals"`
	Comments      []Comment  `json:"comments"`
	Items         []Item     `json:"items"`
}

// Approver defines model for Approver.
type Approver struct {
	UserId       string `json:"userId"`
	UserName     string `json:"userName,omitempty"`
	UserAvatar   string `json:"userAvatar,omitempty"`
	UserPosition string `json:"userPosition,omitempty"`
	Level        int    `json:"level"`
}

// PreApproverSet defines model for PreApproverSet.
type PreApproverSet struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	RequestType string     `json:"requestType"`
	Approvers   []Approver `json:"approvers"`
	IsDefault   bool       `json:"isDefault"`
	IsGlobal    bool       `json:"isGlobal"`
	CreatedBy   string     `json:"createdBy"`
}

// User defines model for User.
type User struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	Position      string `json:"position"`
	Role          string `json:"role"`
	Department    string `json:"department"`
	IsApprover    bool   `json:"isApprover"`
	ApproverLevel int    `json:"approverLevel"`
}

// PostRequestsJSONRequestBody defines body for PostRequests.
type PostRequestsJSONRequestBody struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Type             string     `json:"type"`
	Department       string     `json:"department"`
	DateNeeded       *time.Time `json:"dateNeeded,omitempty"`
	Items            []Item     `json:"items"`
	Approvers        []Approver `json:"approvers"`
	PreApproverSetId string     `json:"preApproverSetId,omitempty"`
	Submit           bool       `json:"submit"`
}

// PatchRequestsIdJSONRequestBody defines body for PatchRequestsId. Absent
// fields are left unchanged.
type PatchRequestsIdJSONRequestBody struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Type        *string    `json:"type,omitempty"`
	Department  *string    `json:"department,omitempty"`
	DateNeeded  *time.Time `json:"dateNeeded,omitempty"`
	Items       *[]Item    `json:"items,omitempty"`
}

// PostRequestsIdApproversJSONRequestBody defines body for PostRequestsIdApprovers.
type PostRequestsIdApproversJSONRequestBody struct {
	UserId string `json:"userId"`
	Level  int    `json:"level"`
}

// PostRequestsIdPreApproversJSONRequestBody defines body for PostRequestsIdPreApprovers.
type PostRequestsIdPreApproversJSONRequestBody struct {
	PreApproverSetId string `json:"preApproverSetId"`
}

// PostRequestsIdApprovalsApprovalIdDecisionJSONRequestBody defines body for
// PostRequestsIdApprovalsApprovalIdDecision.
type PostRequestsIdApprovalsApprovalIdDecisionJSONRequestBody struct {
	Decision string `json:"decision"`
	Comment  string `json:"comment,omitempty"`
}

// PostRequestsIdCommentsJSONRequestBody defines body for PostRequestsIdComments.
type PostRequestsIdCommentsJSONRequestBody struct {
	Content string `json:"content"`
}

// GetPreApproversParams defines parameters for GetPreApprovers.
type GetPreApproversParams struct {
	Type string `query:"type"`
}
