// Package postgres implements the repository against PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"request-approvals/config"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

const countRequestsQuery = `SELECT COUNT(*) FROM request_forms`

// Postgres stores request forms as JSONB records in a pgx pool.
type Postgres struct {
	log *zap.SugaredLogger
	db  *pgxpool.Pool
	cfg config.PostgresConfig
}

// New creates a Postgres repository. The pool is opened in OnStart.
func New(log *zap.SugaredLogger, cfg *config.Config) *Postgres {
	return &Postgres{
		log: log.Named("repo.postgres"),
		cfg: cfg.Postgres,
	}
}

// OnStart migrates the request_forms schema and then opens the pool.
// On failure nothing is left open.
func (p *Postgres) OnStart(ctx context.Context) error {
	version, err := p.migrate(ctx)
	if err != nil {
		return err
	}

	pool, err := p.openPool(ctx)
	if err != nil {
		return err
	}

	countCtx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	var stored int64
	if err := pool.QueryRow(countCtx, countRequestsQuery).Scan(&stored); err != nil {
		pool.Close()
		return fmt.Errorf("count request forms: %w", err)
	}

	p.db = pool
	p.log.Infow("request store ready",
		"host", p.cfg.Host,
		"db", p.cfg.DBName,
		"schema_version", version,
		"requests", stored,
	)
	return nil
}

// OnStop closes the pool. It is safe to call when OnStart failed.
func (p *Postgres) OnStop(_ context.Context) error {
	if p.db != nil {
		p.db.Close()
		p.db = nil
	}
	return nil
}

func (p *Postgres) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(p.cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolCfg.MaxConns = p.cfg.MaxConns
	poolCfg.MinConns = p.cfg.MinConns

	connectCtx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping pool: %w", err)
	}
	return pool, nil
}

// migrate applies goose migrations over a short-lived database/sql handle and
// returns the resulting schema version.
func (p *Postgres) migrate(ctx context.Context) (version int64, err error) {
	sqlDB, err := sql.Open("postgres", p.cfg.DSN())
	if err != nil {
		return 0, fmt.Errorf("open migration handle: %w", err)
	}
	defer func() {
		err = errors.Join(err, sqlDB.Close())
	}()

	migrateCtx, cancel := context.WithTimeout(ctx, p.cfg.MigrateTimeout)
	defer cancel()

	if err := goose.UpContext(migrateCtx, sqlDB, p.cfg.MigrationsDir); err != nil {
		return 0, fmt.Errorf("migrate request_forms: %w", err)
	}
	version, err = goose.GetDBVersionContext(migrateCtx, sqlDB)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}
