// Package service orchestrates uniqueness checking and slug resolution over
// the query collaborator.
package service

import (
	"context"
	"fmt"

	dedupemetrics "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/dedupe/metrics"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/store"
)

// UniquenessChecker answers whether a candidate value is unique within a
// table, excluding the current record's id.
type UniquenessChecker interface {
	IsUnique(ctx context.Context, table, field, value string, excludeID int64) (bool, error)
}

// Checker implements UniquenessChecker with a read-then-decide query. It is a
// best-effort pre-check only: between the count and a later insert another
// writer can race in, so the store's uniqueness constraint (surfaced as
// sentinel.ErrAlreadyUsed on insert) remains the authority.
type Checker struct {
	querier store.Querier
	metrics *dedupemetrics.Metrics
}

// NewChecker constructs a Checker over the query collaborator. Metrics may be
// nil.
func NewChecker(querier store.Querier, metrics *dedupemetrics.Metrics) *Checker {
	return &Checker{querier: querier, metrics: metrics}
}

// IsUnique returns true iff no row other than excludeID holds the candidate
// value in the given field. A record updating itself to its own existing
// value is therefore not flagged as a collision.
func (c *Checker) IsUnique(ctx context.Context, table, field, value string, excludeID int64) (bool, error) {
	n, err := c.querier.Count(ctx, table, map[string]any{field: value}, excludeID)
	if err != nil {
		return false, fmt.Errorf("check uniqueness of %s.%s: %w", table, field, err)
	}

	if c.metrics != nil {
		c.metrics.IncrementUniquenessChecks()
		if n > 0 {
			c.metrics.IncrementDuplicatesFlagged()
		}
	}
	return n == 0, nil
}
