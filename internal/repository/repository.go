// Package repository provides factory for repositories.
package repository

import (
	"fmt"

	"request-approvals/config"
	"request-approvals/internal/repository/memory"
	"request-approvals/internal/repository/postgres"
	"request-approvals/internal/repository/redis"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	RequestInterface
}

// New constructs repository backend by name.
func New(name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "memory":
		return memory.New(log), nil
	case "postgres":
		return postgres.New(log, cfg), nil
	case "redis":
		return redis.New(log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
