package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachdesk/coach-organizer/internal/domain"
	"coachdesk/coach-organizer/internal/storage"
)

func newTestCatalog(t *testing.T) (*CatalogStore, *storage.MemoryEngine) {
	t.Helper()
	engine := storage.NewMemoryEngine()
	catalog, err := NewCatalogStore(context.Background(), engine)
	require.NoError(t, err)
	return catalog, engine
}

func TestCatalogAllListsBuiltinsFirst(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	added, err := catalog.AddCustom(context.Background(), domain.Exercise{
		Name:       "Kettlebell Swing",
		Type:       domain.ExerciseStrength,
		CategoryID: "2",
	})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	all := catalog.All()
	require.Len(t, all, len(builtinExercises)+1)
	assert.Equal(t, "Bench Press", all[0].Name)
	assert.Equal(t, "Kettlebell Swing", all[len(all)-1].Name)
}

func TestCatalogByCategory(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	t.Run("empty filter returns all", func(t *testing.T) {
		assert.Len(t, catalog.ByCategory(), len(builtinExercises))
	})

	t.Run("single category", func(t *testing.T) {
		upper := catalog.ByCategory("1")
		require.NotEmpty(t, upper)
		for _, ex := range upper {
			assert.Equal(t, "1", ex.CategoryID)
		}
	})

	t.Run("multiple categories keep list order", func(t *testing.T) {
		got := catalog.ByCategory("4", "5")
		require.Len(t, got, 2)
		assert.Equal(t, "Running", got[0].Name)
		assert.Equal(t, "Dynamic Stretching", got[1].Name)
	})
}

func TestCatalogCustomLifecycle(t *testing.T) {
	catalog, engine := newTestCatalog(t)
	ctx := context.Background()

	added, err := catalog.AddCustom(ctx, domain.Exercise{Name: "Box Jumps", Type: domain.ExerciseStrength, CategoryID: "2"})
	require.NoError(t, err)

	got, ok := catalog.CustomByID(added.ID)
	require.True(t, ok)
	assert.Equal(t, "Box Jumps", got.Name)

	newName := "Weighted Box Jumps"
	require.NoError(t, catalog.UpdateCustom(ctx, added.ID, ExerciseUpdate{Name: &newName}))
	got, ok = catalog.CustomByID(added.ID)
	require.True(t, ok)
	assert.Equal(t, newName, got.Name)

	assert.ErrorIs(t, catalog.UpdateCustom(ctx, "nope", ExerciseUpdate{Name: &newName}), ErrExerciseNotFound)

	require.NoError(t, catalog.DeleteCustom(ctx, added.ID))
	_, ok = catalog.CustomByID(added.ID)
	assert.False(t, ok)

	// A fresh store over the same engine sees the persisted state.
	reloaded, err := NewCatalogStore(ctx, engine)
	require.NoError(t, err)
	assert.Len(t, reloaded.All(), len(builtinExercises))
}

func TestInstantiateDefaults(t *testing.T) {
	planned := Instantiate(domain.Exercise{
		Type: domain.ExerciseCardio,
		DefaultReps: &domain.DefaultReps{
			Duration: domain.Int(30),
			Distance: domain.Float64(5000),
		},
	})

	assert.Equal(t, 3, planned.Sets)
	require.NotNil(t, planned.Reps)
	assert.Equal(t, 0, *planned.Reps)
	assert.Equal(t, 30, planned.Duration)
	assert.Equal(t, float64(5000), planned.Distance)
	require.NotNil(t, planned.Weight)
	assert.Equal(t, float64(0), *planned.Weight)
	assert.Equal(t, "", planned.Notes)
}

func TestInstantiateCopiesByValue(t *testing.T) {
	source := builtinExercises[0]
	first := Instantiate(source)
	second := Instantiate(source)

	first.Sets = 99
	first.Exercise.Name = "changed"

	assert.Equal(t, "Bench Press", second.Exercise.Name)
	assert.Equal(t, 3, second.Sets)
	assert.Equal(t, "Bench Press", builtinExercises[0].Name)
}
