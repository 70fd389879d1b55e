package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"request-approvals/config"
	"request-approvals/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	_, err := repo.GetRequest(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrRequestNotFound)

	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	req := entities.RequestForm{
		ID:            "req-1",
		Title:         "Monitor",
		Type:          "purchase",
		RequestedBy:   entities.Requester{ID: "u1", Name: "Alice"},
		DateRequested: ts,
		Status:        entities.RequestPending,
		CurrentLevel:  1,
		Approvals: []entities.Approval{
			{ID: "ap-1", UserID: "u2", Level: 1, Status: entities.ApprovalPending},
		},
		Comments: []entities.RequestComment{},
	}
	require.NoError(t, repo.PutRequest(ctx, req))

	got, err := repo.GetRequest(ctx, req.ID)
	require.NoError(t, err)
	require.Equal(t, req.Title, got.Title)
	require.Equal(t, entities.RequestPending, got.Status)
	require.True(t, ts.Equal(got.DateRequested))
	require.Len(t, got.Approvals, 1)

	req.Status = entities.RequestApproved
	req.Approvals[0].Status = entities.ApprovalApproved
	require.NoError(t, repo.PutRequest(ctx, req))

	older := entities.RequestForm{
		ID:            "req-0",
		Title:         "Desk",
		Type:          "purchase",
		RequestedBy:   entities.Requester{ID: "u3"},
		DateRequested: ts.Add(-time.Hour),
		Status:        entities.RequestDraft,
	}
	require.NoError(t, repo.PutRequest(ctx, older))

	list, err := repo.ListRequests(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "req-1", list[0].ID)
	require.Equal(t, entities.RequestApproved, list[0].Status)
	require.NotNil(t, list[1].Approvals)

	require.NoError(t, repo.DeleteRequest(ctx, older.ID))
	require.ErrorIs(t, repo.DeleteRequest(ctx, older.ID), entities.ErrRequestNotFound)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=request_approvals_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server:     config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:       config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Repository: config.RepositoryConfig{Backend: "postgres"},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "request_approvals_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=request_approvals_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
