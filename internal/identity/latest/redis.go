// Package latest mirrors the most recently issued identity into Redis so
// operators (and sibling processes) can see "what just happened". The mirror
// is advisory only: it is last-write-wins across the whole deployment and
// carries no persistence guarantee. The authoritative trail is the
// append-only store.
package latest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/models"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/platform/sentinel"
)

const (
	defaultKey = "identity:latest"
	defaultTTL = 24 * time.Hour
)

// entry is the JSON value stored under the mirror key.
type entry struct {
	UUID        string    `json:"uuid"`
	EventTypeID int       `json:"event_type_id"`
	IssuedAt    time.Time `json:"issued_at"`
}

// RedisMirror implements service.Sink over a Redis client.
type RedisMirror struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// Option customizes a RedisMirror.
type Option func(*RedisMirror)

// WithKey overrides the mirror key.
func WithKey(key string) Option {
	return func(m *RedisMirror) { m.key = key }
}

// WithTTL overrides how long the mirrored value lives without a newer write.
func WithTTL(ttl time.Duration) Option {
	return func(m *RedisMirror) { m.ttl = ttl }
}

func NewRedisMirror(client *redis.Client, opts ...Option) *RedisMirror {
	m := &RedisMirror{client: client, key: defaultKey, ttl: defaultTTL}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Publish overwrites the mirrored identity with the given record.
func (m *RedisMirror) Publish(ctx context.Context, record *models.Record) error {
	payload, err := json.Marshal(entry{
		UUID:        record.UUID,
		EventTypeID: int(record.EventType),
		IssuedAt:    record.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal latest identity: %w", err)
	}
	if err := m.client.Set(ctx, m.key, payload, m.ttl).Err(); err != nil {
		return fmt.Errorf("mirror latest identity: %w", err)
	}
	return nil
}

// Last returns the mirrored identity, or sentinel.ErrNotFound when nothing
// has been mirrored (or the value has expired).
func (m *RedisMirror) Last(ctx context.Context) (string, models.EventType, error) {
	payload, err := m.client.Get(ctx, m.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return "", 0, sentinel.ErrNotFound
	}
	if err != nil {
		return "", 0, fmt.Errorf("read latest identity: %w", err)
	}

	var e entry
	if err := json.Unmarshal(payload, &e); err != nil {
		return "", 0, fmt.Errorf("decode latest identity: %w", err)
	}
	return e.UUID, models.EventType(e.EventTypeID), nil
}
