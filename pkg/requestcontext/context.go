// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// This package defines context keys and getter/setter functions for values
// that are typically set by middleware but consumed by services. By keeping
// this package free of net/http dependencies, services can import only what
// they need without pulling in HTTP-related code.
//
// The correlation holder deserves a note: the system it replaces kept "the
// most recently issued identity" in process-wide mutable state, which corrupts
// under concurrent requests. Here the holder is installed per logical request
// with WithCorrelation, so two concurrent requests each see only their own
// most recent identity. Last write wins within a request; the value is
// advisory and never persisted.
//
// Usage in services (read values):
//
//	actorID := requestcontext.ActorID(ctx)
//	now := requestcontext.Now(ctx)
//	last, ok := requestcontext.LastIdentity(ctx)
//
// Usage in middleware (set values):
//
//	ctx = requestcontext.WithCorrelation(ctx)
//	ctx = requestcontext.WithActorID(ctx, actorID)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"sync"
	"time"
)

// Context key types (unexported for encapsulation).
type (
	correlationKey struct{}
	actorIDKey     struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// Identity is the most recently issued identity record reference, published
// by the identity tracker for later code in the same request to observe.
type Identity struct {
	UUID        string
	EventTypeID int
}

// correlation is a mutex-guarded last-write-wins holder. It is a pointer
// stored in the context so deeper calls can publish into it without
// re-threading a derived context upward.
type correlation struct {
	mu   sync.Mutex
	last Identity
	set  bool
}

// WithCorrelation installs a fresh correlation holder. Call once per logical
// request or execution unit; identities published deeper in the call chain
// become visible to any code holding a context derived from this one.
func WithCorrelation(ctx context.Context) context.Context {
	return context.WithValue(ctx, correlationKey{}, &correlation{})
}

// PublishIdentity records the identity as the most recent one for this
// request, overwriting whatever was there. Returns false when no correlation
// holder is installed (the publish is silently dropped; the value is
// advisory).
func PublishIdentity(ctx context.Context, identity Identity) bool {
	holder, ok := ctx.Value(correlationKey{}).(*correlation)
	if !ok {
		return false
	}
	holder.mu.Lock()
	defer holder.mu.Unlock()
	holder.last = identity
	holder.set = true
	return true
}

// LastIdentity returns the most recently published identity for this request,
// if any.
func LastIdentity(ctx context.Context) (Identity, bool) {
	holder, ok := ctx.Value(correlationKey{}).(*correlation)
	if !ok {
		return Identity{}, false
	}
	holder.mu.Lock()
	defer holder.mu.Unlock()
	return holder.last, holder.set
}

// ActorID retrieves the acting user's id from the context. Returns zero when
// not set.
func ActorID(ctx context.Context) int64 {
	if actorID, ok := ctx.Value(actorIDKey{}).(int64); ok {
		return actorID
	}
	return 0
}

// WithActorID injects the acting user's id into the context.
func WithActorID(ctx context.Context, actorID int64) context.Context {
	return context.WithValue(ctx, actorIDKey{}, actorID)
}

// RequestID retrieves the correlation id for the current request.
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}

// WithRequestID injects a request id into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// Now returns the request time from the context, falling back to wall-clock
// time. Services use this instead of time.Now so tests can pin the clock.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a fixed request time into the context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
