package usecase

import (
	"context"

	"request-approvals/internal/entities"
)

// RequestUsecaseInterface covers the requester side of the lifecycle.
type RequestUsecaseInterface interface {
	CreateRequest(ctx context.Context, actor entities.User, in entities.RequestInput) (*entities.RequestForm, error)
	UpdateDraft(ctx context.Context, actor entities.User, id string, patch entities.RequestPatch) (*entities.RequestForm, error)
	ApplyPreApproverSet(ctx context.Context, actor entities.User, id, setID string) (*entities.RequestForm, error)
	AddApprover(ctx context.Context, actor entities.User, id string, approver entities.Approver) (*entities.RequestForm, error)
	RemoveApprover(ctx context.Context, actor entities.User, id, approvalID string) (*entities.RequestForm, error)
	Submit(ctx context.Context, actor entities.User, id string) (*entities.RequestForm, error)
	CancelRequest(ctx context.Context, actor entities.User, id string) (*entities.RequestForm, error)
	DeleteRequest(ctx context.Context, actor entities.User, id string) error
	GetRequest(ctx context.Context, actor entities.User, id string) (*entities.RequestForm, error)
	ListUserRequests(ctx context.Context, actor entities.User) ([]entities.RequestForm, error)
}

// ApprovalUsecaseInterface covers decisions and the request timeline.
type ApprovalUsecaseInterface interface {
	RecordDecision(ctx context.Context, actor entities.User, id string, d entities.Decision) (*entities.RequestForm, error)
	AddComment(ctx context.Context, actor entities.User, id, content string) (*entities.RequestComment, error)
	ListPendingApprovals(ctx context.Context, actor entities.User) ([]entities.RequestForm, error)
}

// UserUsecaseInterface abstracts directory lookups for delivery layer.
type UserUsecaseInterface interface {
	Authenticate(ctx context.Context, userID string) (entities.User, error)
	PreApproversForType(ctx context.Context, actor entities.User, requestType string) ([]entities.PreApproverSet, error)
	AvailableApprovers(ctx context.Context, actor entities.User) ([]entities.User, error)
}
