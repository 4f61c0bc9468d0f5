package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
//   - ErrNotFound: record does not exist in the store
//   - ErrAlreadyUsed: a uniqueness constraint rejected the write; this is the
//     authoritative duplicate signal, since the pre-insert uniqueness check is
//     only a best-effort read (see internal/dedupe/service)
//   - ErrSlugExhausted: slug disambiguation ran out of retry budget and the
//     returned candidate is still colliding
//   - ErrUnavailable: service or resource temporarily unavailable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyUsed   = errors.New("already used")
	ErrSlugExhausted = errors.New("slug retry budget exhausted")
	ErrUnavailable   = errors.New("unavailable")
)
