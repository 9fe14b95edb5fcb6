package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachdesk/coach-organizer/internal/domain"
	"coachdesk/coach-organizer/internal/storage"
)

func newTestHistoryStore(t *testing.T) *HistoryStore {
	t.Helper()
	s, err := NewHistoryStore(context.Background(), storage.NewMemoryEngine())
	require.NoError(t, err)
	return s
}

func addHistoryEntry(t *testing.T, s *HistoryStore, clientID string, date time.Time, completed bool, exercises ...domain.PerformedExercise) *domain.WorkoutHistory {
	t.Helper()
	entry, err := s.Add(context.Background(), domain.WorkoutHistory{
		ClientID:  clientID,
		Date:      date,
		Exercises: exercises,
		Completed: completed,
	})
	require.NoError(t, err)
	return entry
}

func TestHistoryAddAssignsID(t *testing.T) {
	s := newTestHistoryStore(t)

	entry := addHistoryEntry(t, s, "c1", time.Now(), true)
	assert.NotEmpty(t, entry.ID)
}

func TestHistoryUpdateAndRemove(t *testing.T) {
	s := newTestHistoryStore(t)
	ctx := context.Background()

	entry := addHistoryEntry(t, s, "c1", time.Now(), false)

	notes := "felt strong"
	done := true
	require.NoError(t, s.Update(ctx, entry.ID, HistoryUpdate{Notes: &notes, Completed: &done}))
	got := s.ByClient("c1")
	require.Len(t, got, 1)
	assert.Equal(t, "felt strong", got[0].Notes)
	assert.True(t, got[0].Completed)

	assert.ErrorIs(t, s.Update(ctx, "missing", HistoryUpdate{}), ErrHistoryNotFound)

	require.NoError(t, s.Remove(ctx, entry.ID))
	assert.Empty(t, s.ByClient("c1"))
	assert.NoError(t, s.Remove(ctx, "missing"))
}

func TestHistoryByClientSortsMostRecentFirst(t *testing.T) {
	s := newTestHistoryStore(t)
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	addHistoryEntry(t, s, "c1", base, true)
	addHistoryEntry(t, s, "c1", base.AddDate(0, 0, 7), true)
	addHistoryEntry(t, s, "c1", base.AddDate(0, 0, 3), true)
	addHistoryEntry(t, s, "c2", base.AddDate(0, 0, 30), true)

	got := s.ByClient("c1")
	require.Len(t, got, 3)
	assert.Equal(t, base.AddDate(0, 0, 7), got[0].Date)
	assert.Equal(t, base.AddDate(0, 0, 3), got[1].Date)
	assert.Equal(t, base, got[2].Date)
}

func performed(name string, sets ...domain.PerformedSet) domain.PerformedExercise {
	return domain.PerformedExercise{Name: name, Sets: sets}
}

func TestExerciseProgressPicksMaxWeightSet(t *testing.T) {
	s := newTestHistoryStore(t)
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	addHistoryEntry(t, s, "c1", base, true,
		performed("Bench Press",
			domain.PerformedSet{Weight: domain.Float64(60), Reps: domain.Int(10)},
			domain.PerformedSet{Weight: domain.Float64(70), Reps: domain.Int(8)},
		))
	addHistoryEntry(t, s, "c1", base.AddDate(0, 0, 7), true,
		performed("Bench Press",
			domain.PerformedSet{Weight: domain.Float64(80), Reps: domain.Int(5)},
			domain.PerformedSet{Weight: domain.Float64(80), Reps: domain.Int(8)},
		))

	progress := s.ExerciseProgress("c1", "Bench Press")
	require.Len(t, progress.Dates, 2)
	assert.Equal(t, []float64{70, 80}, progress.Weights)
	// Ties on weight keep the first set, so the second point reports 5 reps.
	assert.Equal(t, []int{10, 5}, progress.Reps)
	assert.Equal(t, base, progress.Dates[0])
	assert.Equal(t, base.AddDate(0, 0, 7), progress.Dates[1])
}

func TestExerciseProgressSkipsEntriesWithoutTheExercise(t *testing.T) {
	s := newTestHistoryStore(t)
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	addHistoryEntry(t, s, "c1", base, true,
		performed("Squats", domain.PerformedSet{Weight: domain.Float64(100), Reps: domain.Int(5)}))
	// Incomplete sessions and sessions without the exercise contribute no
	// points.
	addHistoryEntry(t, s, "c1", base.AddDate(0, 0, 2), false,
		performed("Bench Press", domain.PerformedSet{Weight: domain.Float64(60), Reps: domain.Int(10)}))
	addHistoryEntry(t, s, "c1", base.AddDate(0, 0, 4), true,
		performed("Bench Press"))
	addHistoryEntry(t, s, "c1", base.AddDate(0, 0, 6), true,
		performed("Bench Press", domain.PerformedSet{Reps: domain.Int(12)}))

	progress := s.ExerciseProgress("c1", "Bench Press")
	require.Len(t, progress.Dates, 1)
	assert.Equal(t, base.AddDate(0, 0, 6), progress.Dates[0])
	// A set with no recorded weight counts as zero, not a skip.
	assert.Equal(t, []float64{0}, progress.Weights)
	assert.Equal(t, []int{12}, progress.Reps)
}

func TestHistoryCompletionRate(t *testing.T) {
	s := newTestHistoryStore(t)

	assert.Zero(t, s.CompletionRate("c1"))

	now := time.Now()
	addHistoryEntry(t, s, "c1", now, true)
	addHistoryEntry(t, s, "c1", now, true)
	addHistoryEntry(t, s, "c1", now, false)
	addHistoryEntry(t, s, "c1", now, false)

	assert.InDelta(t, 50.0, s.CompletionRate("c1"), 1e-9)
}

func TestMostCommonExercises(t *testing.T) {
	s := newTestHistoryStore(t)
	now := time.Now()

	addHistoryEntry(t, s, "c1", now, true,
		performed("Squat"), performed("Bench Press"))
	addHistoryEntry(t, s, "c1", now, true,
		performed("Squat"))

	got := s.MostCommonExercises("c1", 0)
	require.Len(t, got, 2)
	assert.Equal(t, domain.ExerciseCount{Name: "Squat", Count: 2}, got[0])
	assert.Equal(t, domain.ExerciseCount{Name: "Bench Press", Count: 1}, got[1])
}

func TestMostCommonExercisesTruncatesAndBreaksTies(t *testing.T) {
	s := newTestHistoryStore(t)
	now := time.Now()

	addHistoryEntry(t, s, "c1", now, true,
		performed("A"), performed("B"), performed("C"),
		performed("D"), performed("E"), performed("F"))

	got := s.MostCommonExercises("c1", 0)
	require.Len(t, got, 5)
	// All counts tie at one, so first-seen order decides.
	names := make([]string, len(got))
	for i, c := range got {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, names)

	got = s.MostCommonExercises("c1", 2)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
}

func TestSeedSampleData(t *testing.T) {
	s := newTestHistoryStore(t)

	require.NoError(t, s.SeedSampleData(context.Background(), "c1"))

	got := s.ByClient("c1")
	require.Len(t, got, 10)
	for _, entry := range got {
		assert.NotEmpty(t, entry.ID)
		assert.True(t, entry.Completed)
		assert.NotEmpty(t, entry.Exercises)
	}

	// Seeded entries survive a reload.
	reloaded, err := NewHistoryStore(context.Background(), s.engine)
	require.NoError(t, err)
	assert.Len(t, reloaded.ByClient("c1"), 10)
}
