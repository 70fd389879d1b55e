// Package memory implements the request store in process memory. Records are
// kept encoded so every load goes through the same decode step as durable
// backends.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"request-approvals/internal/entities"
	"request-approvals/internal/repository/codec"

	"go.uber.org/zap"
)

// Store is a thread-safe in-memory request store.
type Store struct {
	log *zap.SugaredLogger

	mu      sync.RWMutex
	records map[string][]byte
}

// New creates an empty store.
func New(log *zap.SugaredLogger) *Store {
	return &Store{
		log:     log.Named("repo.memory"),
		records: make(map[string][]byte),
	}
}

// OnStart is a no-op.
func (s *Store) OnStart(_ context.Context) error {
	s.log.Infow("memory store ready")
	return nil
}

// OnStop is a no-op.
func (s *Store) OnStop(_ context.Context) error { return nil }

// GetRequest loads and decodes a request by id.
func (s *Store) GetRequest(_ context.Context, id string) (*entities.RequestForm, error) {
	s.mu.RLock()
	data, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return nil, entities.ErrRequestNotFound
	}
	return codec.Decode(data)
}

// ListRequests returns every stored request ordered by id.
func (s *Store) ListRequests(_ context.Context) ([]entities.RequestForm, error) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	raw := make([][]byte, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, s.records[id])
	}
	s.mu.RUnlock()

	out := make([]entities.RequestForm, 0, len(raw))
	for _, data := range raw {
		req, err := codec.Decode(data)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	return out, nil
}

// PutRequest stores the whole record, replacing any previous version.
func (s *Store) PutRequest(_ context.Context, req entities.RequestForm) error {
	data, err := codec.Encode(req)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records[req.ID] = data
	s.mu.Unlock()
	return nil
}

// PutRaw stores an already encoded record as is.
func (s *Store) PutRaw(id string, data []byte) {
	s.mu.Lock()
	s.records[id] = append([]byte(nil), data...)
	s.mu.Unlock()
}

// DeleteRequest removes a record.
func (s *Store) DeleteRequest(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return fmt.Errorf("delete %s: %w", id, entities.ErrRequestNotFound)
	}
	delete(s.records, id)
	return nil
}
