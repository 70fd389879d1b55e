package usecase

import (
	"time"

	"request-approvals/internal/directory"
	"request-approvals/internal/repository"
	"request-approvals/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	RequestUsecaseInterface
	ApprovalUsecaseInterface
	UserUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	dir directory.Directory,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, repo, dir, timeout)
}
