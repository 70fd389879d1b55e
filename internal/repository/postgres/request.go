package postgres

import (
	"context"
	"errors"
	"fmt"

	"request-approvals/internal/entities"
	"request-approvals/internal/repository/codec"

	"github.com/jackc/pgx/v5"
)

const (
	selectRequestQuery = `SELECT record FROM request_forms WHERE id=$1`
	listRequestsQuery  = `SELECT record FROM request_forms ORDER BY date_requested DESC, id`
	upsertRequestQuery = `
INSERT INTO request_forms(id, requested_by, status, current_level, date_requested, record, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW())
ON CONFLICT (id) DO UPDATE SET
    requested_by = EXCLUDED.requested_by,
    status = EXCLUDED.status,
    current_level = EXCLUDED.current_level,
    date_requested = EXCLUDED.date_requested,
    record = EXCLUDED.record,
    updated_at = NOW()
`
	deleteRequestQuery = `DELETE FROM request_forms WHERE id=$1`
)

// GetRequest loads a request record by id.
func (p *Postgres) GetRequest(ctx context.Context, id string) (*entities.RequestForm, error) {
	var record []byte
	if err := p.db.QueryRow(ctx, selectRequestQuery, id).Scan(&record); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRequestNotFound
		}
		p.log.Errorw("failed to select request", "error", err, "request_id", id)
		return nil, fmt.Errorf("get request: %w", err)
	}
	return codec.Decode(record)
}

// ListRequests returns every stored request, newest first.
func (p *Postgres) ListRequests(ctx context.Context) ([]entities.RequestForm, error) {
	rows, err := p.db.Query(ctx, listRequestsQuery)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	out := make([]entities.RequestForm, 0)
	for rows.Next() {
		var record []byte
		if err := rows.Scan(&record); err != nil {
			p.log.Errorw("failed to scan request", "error", err)
			return nil, fmt.Errorf("scan request: %w", err)
		}
		req, err := codec.Decode(record)
		if err != nil {
			p.log.Errorw("failed to decode request", "error", err)
			return nil, err
		}
		out = append(out, *req)
	}
	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate requests", "error", err)
		return nil, fmt.Errorf("iterate requests: %w", err)
	}
	return out, nil
}

// PutRequest upserts the whole record; the last write wins.
func (p *Postgres) PutRequest(ctx context.Context, req entities.RequestForm) error {
	record, err := codec.Encode(req)
	if err != nil {
		return err
	}
	if _, err := p.db.Exec(ctx, upsertRequestQuery,
		req.ID, req.RequestedBy.ID, string(req.Status), req.CurrentLevel, req.DateRequested, record,
	); err != nil {
		p.log.Errorw("failed to upsert request", "error", err, "request_id", req.ID)
		return fmt.Errorf("put request: %w", err)
	}
	return nil
}

// DeleteRequest removes a request record.
func (p *Postgres) DeleteRequest(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteRequestQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete request", "error", err, "request_id", id)
		return fmt.Errorf("delete request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrRequestNotFound
	}
	p.log.Infow("request deleted", "request_id", id)
	return nil
}
