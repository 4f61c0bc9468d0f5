package requestcontext

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationLastWriteWins(t *testing.T) {
	ctx := WithCorrelation(context.Background())

	_, ok := LastIdentity(ctx)
	assert.False(t, ok, "fresh holder has no identity")

	assert.True(t, PublishIdentity(ctx, Identity{UUID: "first", EventTypeID: 1}))
	assert.True(t, PublishIdentity(ctx, Identity{UUID: "second", EventTypeID: 3}))

	last, ok := LastIdentity(ctx)
	require.True(t, ok)
	assert.Equal(t, "second", last.UUID)
	assert.Equal(t, 3, last.EventTypeID)
}

func TestPublishWithoutHolderIsDropped(t *testing.T) {
	ctx := context.Background()
	assert.False(t, PublishIdentity(ctx, Identity{UUID: "orphan"}))
	_, ok := LastIdentity(ctx)
	assert.False(t, ok)
}

// Two requests with separate holders never observe each other's identities,
// even when publishing concurrently.
func TestCorrelationIsScopedPerRequest(t *testing.T) {
	ctxA := WithCorrelation(context.Background())
	ctxB := WithCorrelation(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			PublishIdentity(ctxA, Identity{UUID: "a", EventTypeID: 1})
		}()
		go func() {
			defer wg.Done()
			PublishIdentity(ctxB, Identity{UUID: "b", EventTypeID: 2})
		}()
	}
	wg.Wait()

	lastA, ok := LastIdentity(ctxA)
	require.True(t, ok)
	assert.Equal(t, "a", lastA.UUID)

	lastB, ok := LastIdentity(ctxB)
	require.True(t, ok)
	assert.Equal(t, "b", lastB.UUID)
}

// A holder installed upstream is visible through contexts derived downstream.
func TestCorrelationVisibleThroughDerivedContexts(t *testing.T) {
	ctx := WithCorrelation(context.Background())
	derived := WithActorID(WithRequestID(ctx, "req-1"), 42)

	PublishIdentity(derived, Identity{UUID: "deep", EventTypeID: 4})

	last, ok := LastIdentity(ctx)
	require.True(t, ok)
	assert.Equal(t, "deep", last.UUID)
}

func TestScalarAccessors(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, int64(0), ActorID(ctx))
	assert.Equal(t, "", RequestID(ctx))

	fixed := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)
	ctx = WithActorID(ctx, 7)
	ctx = WithRequestID(ctx, "req-9")
	ctx = WithTime(ctx, fixed)

	assert.Equal(t, int64(7), ActorID(ctx))
	assert.Equal(t, "req-9", RequestID(ctx))
	assert.Equal(t, fixed, Now(ctx))

	// Without an injected time, Now falls back to the wall clock.
	assert.WithinDuration(t, time.Now(), Now(context.Background()), time.Minute)
}
