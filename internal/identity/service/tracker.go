// Package service issues immutable, provenance-tagged identity records.
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	identitymetrics "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/metrics"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/models"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/store"
	dErrors "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/domain-errors"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/requestcontext"
)

var tracer = otel.Tracer("identity/service")

// Sink receives issued identity records after they are persisted. Sinks are
// advisory: a sink failure is logged and never fails the issuance. The Redis
// latest-mirror and the Kafka publisher both implement this.
type Sink interface {
	Publish(ctx context.Context, record *models.Record) error
}

// Tracker issues identity records: a fresh UUIDv4 tagged with an event type,
// persisted append-only, with the newest one published into the
// request-scoped correlation context.
type Tracker struct {
	store   store.Store
	sinks   []Sink
	metrics *identitymetrics.Metrics
	log     *log.Logger
}

// Option customizes a Tracker.
type Option func(*Tracker)

// WithSink attaches an advisory sink for issued records.
func WithSink(sink Sink) Option {
	return func(t *Tracker) { t.sinks = append(t.sinks, sink) }
}

// WithMetrics attaches identity metrics.
func WithMetrics(m *identitymetrics.Metrics) Option {
	return func(t *Tracker) { t.metrics = m }
}

// WithLogger overrides the logger used for sink failures.
func WithLogger(l *log.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

func NewTracker(s store.Store, opts ...Option) *Tracker {
	t := &Tracker{store: s, log: log.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Issue generates and persists a new identity record.
//
// The comment is truncated to models.MaxCommentLength before persisting. On
// success the (uuid, event type) pair is published into the correlation
// context, overwriting whatever was there; the publish is dropped silently
// when no correlation holder is installed. A persistence failure is returned
// as a typed error — never a sentinel value — and nothing is published.
func (t *Tracker) Issue(ctx context.Context, eventType models.EventType, comment string, createdBy int64) (*models.Record, error) {
	ctx, span := tracer.Start(ctx, "identity.issue")
	defer span.End()
	span.SetAttributes(attribute.String("identity.event_type", eventType.String()))

	if !eventType.Valid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown event type")
	}

	record := &models.Record{
		UUID:      uuid.NewString(),
		EventType: eventType,
		Comment:   models.TruncateComment(comment),
		CreatedAt: requestcontext.Now(ctx),
		CreatedBy: createdBy,
	}

	id, err := t.store.Append(ctx, record)
	if err != nil {
		if t.metrics != nil {
			t.metrics.IncrementFailures()
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "persist identity record")
	}
	record.ID = id

	requestcontext.PublishIdentity(ctx, requestcontext.Identity{
		UUID:        record.UUID,
		EventTypeID: int(record.EventType),
	})

	for _, sink := range t.sinks {
		if err := sink.Publish(ctx, record); err != nil {
			t.log.Printf("identity sink publish failed for %s: %v", record.UUID, err)
		}
	}

	if t.metrics != nil {
		t.metrics.IncrementIssued(eventType.String())
	}
	return record, nil
}
