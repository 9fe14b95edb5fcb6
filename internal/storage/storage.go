package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrSchemaVersion is returned when a slot's persisted payload carries a
// different schema version than the store expects. Persisted data is never
// trusted blindly; a mismatch is rejected rather than coerced.
var ErrSchemaVersion = errors.New("persisted slot schema version mismatch")

// PersistenceError wraps a failure of the durable medium (open, read,
// write). It is surfaced from store mutations, never swallowed.
type PersistenceError struct {
	Op   string // "load" or "save"
	Slot string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Slot, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Engine is the durable local key-value persistence medium. Each store
// serializes its entire state under a distinct named slot; the payload is a
// JSON encoding of the store's state tree, wrapped in a versioned envelope.
//
// Load unmarshals the slot's payload into v and reports whether the slot
// existed; an absent slot means "initialize with defaults". A version
// mismatch returns an error wrapping ErrSchemaVersion.
type Engine interface {
	Load(ctx context.Context, slot string, version int, v any) (bool, error)
	Save(ctx context.Context, slot string, version int, v any) error
}
