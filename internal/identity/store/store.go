// Package store persists identity records append-only through the query
// collaborator. There is deliberately no update or delete: once issued, an
// identity record belongs to the store forever.
package store

import (
	"context"
	"fmt"

	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/models"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/store"
)

// defaultTable is the append-only table identity records land in.
const defaultTable = "uuids"

// Store is the persistence contract the tracker needs.
type Store interface {
	// Append persists the record as a new row and returns its id.
	Append(ctx context.Context, record *models.Record) (int64, error)
}

// QuerierStore implements Store over the shared query collaborator, so the
// same implementation serves both the in-memory and PostgreSQL backends.
type QuerierStore struct {
	querier store.Querier
	table   string
}

// Option customizes a QuerierStore.
type Option func(*QuerierStore)

// WithTable overrides the target table.
func WithTable(table string) Option {
	return func(s *QuerierStore) { s.table = table }
}

func New(querier store.Querier, opts ...Option) *QuerierStore {
	s := &QuerierStore{querier: querier, table: defaultTable}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *QuerierStore) Append(ctx context.Context, record *models.Record) (int64, error) {
	id, err := s.querier.Insert(ctx, s.table, map[string]any{
		"uuid":         record.UUID,
		"uuid_type_id": int64(record.EventType),
		"comment":      record.Comment,
		"created_at":   record.CreatedAt,
		"created_by":   record.CreatedBy,
	})
	if err != nil {
		return 0, fmt.Errorf("append identity record: %w", err)
	}
	return id, nil
}
