package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSlotState struct {
	Names []string `json:"names"`
}

func openTestEngine(t *testing.T, path string) *SQLiteEngine {
	t.Helper()
	engine, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = engine.Close() })
	return engine
}

func TestSQLiteRoundTrip(t *testing.T) {
	engine := openTestEngine(t, filepath.Join(t.TempDir(), "organizer.db"))
	ctx := context.Background()

	state := testSlotState{Names: []string{"Alice", "Bob"}}
	require.NoError(t, engine.Save(ctx, "client-storage", 1, &state))

	var loaded testSlotState
	found, err := engine.Load(ctx, "client-storage", 1, &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, state, loaded)
}

func TestSQLiteLoadAbsentSlot(t *testing.T) {
	engine := openTestEngine(t, filepath.Join(t.TempDir(), "organizer.db"))

	var loaded testSlotState
	found, err := engine.Load(context.Background(), "never-saved", 1, &loaded)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, loaded.Names)
}

func TestSQLiteVersionMismatch(t *testing.T) {
	engine := openTestEngine(t, filepath.Join(t.TempDir(), "organizer.db"))
	ctx := context.Background()

	require.NoError(t, engine.Save(ctx, "client-storage", 1, &testSlotState{}))

	var loaded testSlotState
	_, err := engine.Load(ctx, "client-storage", 2, &loaded)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaVersion)

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "load", perr.Op)
	assert.Equal(t, "client-storage", perr.Slot)
}

func TestSQLiteSaveOverwritesSlot(t *testing.T) {
	engine := openTestEngine(t, filepath.Join(t.TempDir(), "organizer.db"))
	ctx := context.Background()

	require.NoError(t, engine.Save(ctx, "client-storage", 1, &testSlotState{Names: []string{"Alice"}}))
	require.NoError(t, engine.Save(ctx, "client-storage", 1, &testSlotState{Names: []string{"Bob"}}))

	var loaded testSlotState
	found, err := engine.Load(ctx, "client-storage", 1, &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"Bob"}, loaded.Names)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "organizer.db")
	ctx := context.Background()

	first, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "workout-storage", 1, &testSlotState{Names: []string{"Push Day"}}))
	require.NoError(t, first.Close())

	second := openTestEngine(t, path)
	var loaded testSlotState
	found, err := second.Load(ctx, "workout-storage", 1, &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"Push Day"}, loaded.Names)
}

func TestMemoryEngineMatchesSQLiteSemantics(t *testing.T) {
	engine := NewMemoryEngine()
	ctx := context.Background()

	var loaded testSlotState
	found, err := engine.Load(ctx, "client-storage", 1, &loaded)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, engine.Save(ctx, "client-storage", 1, &testSlotState{Names: []string{"Alice"}}))
	found, err = engine.Load(ctx, "client-storage", 1, &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"Alice"}, loaded.Names)

	_, err = engine.Load(ctx, "client-storage", 2, &loaded)
	assert.ErrorIs(t, err, ErrSchemaVersion)
}
