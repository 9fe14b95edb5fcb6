package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

type memorySlot struct {
	version int
	data    []byte
}

// MemoryEngine is an in-process Engine used by tests and throwaway runs.
// Payloads round-trip through JSON so load/save semantics match the sqlite
// engine exactly.
type MemoryEngine struct {
	mu    sync.Mutex
	slots map[string]memorySlot
}

func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{slots: make(map[string]memorySlot)}
}

// Load implements Engine.
func (e *MemoryEngine) Load(ctx context.Context, slot string, version int, v any) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.slots[slot]
	if !ok {
		return false, nil
	}
	if rec.version != version {
		return false, &PersistenceError{
			Op:   "load",
			Slot: slot,
			Err:  fmt.Errorf("%w: have %d, want %d", ErrSchemaVersion, rec.version, version),
		}
	}
	if err := json.Unmarshal(rec.data, v); err != nil {
		return false, &PersistenceError{Op: "load", Slot: slot, Err: err}
	}
	return true, nil
}

// Save implements Engine.
func (e *MemoryEngine) Save(ctx context.Context, slot string, version int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &PersistenceError{Op: "save", Slot: slot, Err: err}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.slots[slot] = memorySlot{version: version, data: data}
	return nil
}
