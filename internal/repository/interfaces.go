// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"request-approvals/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// RequestInterface exposes whole-record access to request forms.
// Loaded records are always normalized.
type RequestInterface interface {
	GetRequest(ctx context.Context, id string) (*entities.RequestForm, error)
	ListRequests(ctx context.Context) ([]entities.RequestForm, error)
	PutRequest(ctx context.Context, req entities.RequestForm) error
	DeleteRequest(ctx context.Context, id string) error
}
