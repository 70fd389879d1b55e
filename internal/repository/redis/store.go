// Package redis implements the request store on top of Redis. Each request is
// one string key holding the encoded record, plus a set indexing all ids.
package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"request-approvals/config"
	"request-approvals/internal/entities"
	"request-approvals/internal/repository/codec"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Store keeps request records in Redis.
type Store struct {
	client *redis.Client
	log    *zap.SugaredLogger
	cfg    config.RedisConfig
}

// New builds a Redis-backed store. The connection is verified in OnStart.
func New(log *zap.SugaredLogger, cfg *config.Config) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
		}),
		log: log.Named("repo.redis"),
		cfg: cfg.Redis,
	}
}

// OnStart pings the server.
func (s *Store) OnStart(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis at %s: %w", s.cfg.Addr, err)
	}
	s.log.Infow("redis connected", "addr", s.cfg.Addr, "db", s.cfg.DB)
	return nil
}

// OnStop closes the client.
func (s *Store) OnStop(_ context.Context) error {
	return s.client.Close()
}

func (s *Store) key(id string) string {
	return s.cfg.KeyPrefix + "request:" + id
}

func (s *Store) indexKey() string {
	return s.cfg.KeyPrefix + "requests"
}

// GetRequest loads a request by id.
func (s *Store) GetRequest(ctx context.Context, id string) (*entities.RequestForm, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, entities.ErrRequestNotFound
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	return codec.Decode(data)
}

// ListRequests returns every indexed request ordered by id. Index entries
// whose record has vanished are skipped.
func (s *Store) ListRequests(ctx context.Context) ([]entities.RequestForm, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	if len(ids) == 0 {
		return []entities.RequestForm{}, nil
	}
	sort.Strings(ids)

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, s.key(id))
	}
	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	out := make([]entities.RequestForm, 0, len(vals))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			s.log.Warnw("dangling request index entry", "request_id", ids[i])
			continue
		}
		req, err := codec.Decode([]byte(raw))
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	return out, nil
}

// PutRequest writes the record and its index entry atomically.
func (s *Store) PutRequest(ctx context.Context, req entities.RequestForm) error {
	data, err := codec.Encode(req)
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.key(req.ID), data, 0)
		pipe.SAdd(ctx, s.indexKey(), req.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("put request: %w", err)
	}
	return nil
}

// DeleteRequest removes the record and its index entry.
func (s *Store) DeleteRequest(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.key(id))
		pipe.SRem(ctx, s.indexKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("delete %s: %w", id, entities.ErrRequestNotFound)
	}
	return nil
}
