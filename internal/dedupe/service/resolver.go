package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	dedupemetrics "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/dedupe/metrics"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/platform/sentinel"
)

var tracer = otel.Tracer("dedupe/service")

// maxDisambiguationAttempts is the fixed retry budget: nine uniqueness checks,
// with the 1-based attempt digit appended after each collision.
const maxDisambiguationAttempts = 9

// Resolver produces a best-effort unique slug for a record.
//
// Resolution is a read-then-decide loop with no locking. Two concurrent
// resolutions can both observe "unique" for the same candidate; the backing
// store's uniqueness constraint is the only correctness guarantee, and its
// violation (sentinel.ErrAlreadyUsed on insert) must be treated as the
// authoritative failure.
type Resolver struct {
	checker UniquenessChecker
	field   string
	metrics *dedupemetrics.Metrics
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithSlugField overrides the column checked for collisions (default "slug").
func WithSlugField(field string) ResolverOption {
	return func(r *Resolver) { r.field = field }
}

// WithMetrics attaches dedupe metrics.
func WithMetrics(m *dedupemetrics.Metrics) ResolverOption {
	return func(r *Resolver) { r.metrics = m }
}

func NewResolver(checker UniquenessChecker, opts ...ResolverOption) *Resolver {
	r := &Resolver{checker: checker, field: "slug"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve turns a title (or an explicitly supplied slug, which wins when
// non-empty) into a slug unique within table, excluding excludeID.
//
// Up to nine uniqueness checks are made. After each collision the candidate
// is truncated to MaxSlugLength-1 characters and the 1-based attempt digit is
// appended. If every attempt collides, the final (still colliding) candidate
// is returned together with sentinel.ErrSlugExhausted so the caller can
// decide whether to surface an error or lean on the store constraint.
func (r *Resolver) Resolve(ctx context.Context, table, title, explicitSlug string, excludeID int64) (string, error) {
	ctx, span := tracer.Start(ctx, "slug.resolve")
	defer span.End()
	span.SetAttributes(attribute.String("slug.table", table))

	base := explicitSlug
	if strings.TrimSpace(base) == "" {
		base = title
	}
	candidate := Slugify(base)

	for attempt := 1; attempt <= maxDisambiguationAttempts; attempt++ {
		unique, err := r.checker.IsUnique(ctx, table, r.field, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("resolve slug for %s: %w", table, err)
		}
		if unique {
			span.SetAttributes(attribute.Int("slug.attempts", attempt))
			if r.metrics != nil {
				r.metrics.IncrementSlugsResolved()
			}
			return candidate, nil
		}

		candidate = truncate(candidate, MaxSlugLength-1) + strconv.Itoa(attempt)
		if r.metrics != nil {
			r.metrics.IncrementSlugRetries()
		}
	}

	if r.metrics != nil {
		r.metrics.IncrementSlugExhaustions()
	}
	span.SetAttributes(attribute.Int("slug.attempts", maxDisambiguationAttempts))
	return candidate, fmt.Errorf("resolve slug for %s: %w", table, sentinel.ErrSlugExhausted)
}
