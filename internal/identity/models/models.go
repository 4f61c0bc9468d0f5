// Package models defines the identity record and its event taxonomy.
package models

import (
	"time"
	"unicode/utf8"

	dErrors "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/domain-errors"
)

// EventType classifies why an identity was issued. The taxonomy is a small
// closed lookup; identifiers outside it are rejected at issue time.
type EventType int

const (
	EventTypeCreated EventType = 1
	EventTypeUpdated EventType = 2
	EventTypeDeleted EventType = 3
	EventTypeLogin   EventType = 4
	EventTypeLogout  EventType = 5
	EventTypeCustom  EventType = 6
)

var eventTypeNames = map[EventType]string{
	EventTypeCreated: "created",
	EventTypeUpdated: "updated",
	EventTypeDeleted: "deleted",
	EventTypeLogin:   "login",
	EventTypeLogout:  "logout",
	EventTypeCustom:  "custom",
}

// Valid reports whether the event type belongs to the known taxonomy.
func (t EventType) Valid() bool {
	_, ok := eventTypeNames[t]
	return ok
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseEventType validates an event type id received from the calling layer.
func ParseEventType(id int) (EventType, error) {
	t := EventType(id)
	if !t.Valid() {
		return 0, dErrors.New(dErrors.CodeValidation, "unknown event type id")
	}
	return t, nil
}

// MaxCommentLength bounds the free-text comment on an identity record.
const MaxCommentLength = 255

// Record is an immutable, provenance-tagged identifier issued for audit and
// tracing. Lifecycle: created once, never mutated, never deleted — the store
// contract deliberately has no update or delete operation.
type Record struct {
	ID        int64     `json:"id"`
	UUID      string    `json:"uuid"`
	EventType EventType `json:"event_type_id"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy int64     `json:"created_by"`
}

// TruncateComment enforces MaxCommentLength without splitting a rune.
func TruncateComment(comment string) string {
	if len(comment) <= MaxCommentLength {
		return comment
	}
	cut := MaxCommentLength
	for cut > 0 && !utf8.RuneStart(comment[cut]) {
		cut--
	}
	return comment[:cut]
}
