// Package store defines the relational query collaborator consumed by the
// deduplication and identity-tracking services. The engine never owns schema
// or migrations; it only counts rows against equality predicates and appends
// new rows.
package store

import "context"

// Querier is the narrow contract the engine needs from the backing store.
//
// Count and a later Insert are not atomic. Two concurrent callers can both
// observe a zero count for the same candidate value and both attempt the
// insert; the store's own uniqueness constraint is the authoritative backstop,
// surfaced by Insert as sentinel.ErrAlreadyUsed.
type Querier interface {
	// Count returns the number of rows in table matching every equality
	// predicate, excluding the row whose id equals excludeID when excludeID
	// is non-zero. Excluding the current record's id lets an update keep its
	// own existing value without being flagged as a collision.
	Count(ctx context.Context, table string, equals map[string]any, excludeID int64) (int64, error)

	// Insert appends a new row and returns its id.
	Insert(ctx context.Context, table string, record map[string]any) (int64, error)
}
