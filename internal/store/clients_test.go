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

// newEmptyClientStore builds a registry with no seeded samples by
// pre-saving an empty slot.
func newEmptyClientStore(t *testing.T) (*ClientStore, *storage.MemoryEngine) {
	t.Helper()
	ctx := context.Background()
	engine := storage.NewMemoryEngine()
	require.NoError(t, engine.Save(ctx, clientSlot, clientSlotVersion, &clientState{Clients: []domain.Client{}}))
	s, err := NewClientStore(ctx, engine)
	require.NoError(t, err)
	return s, engine
}

func addTestClient(t *testing.T, s *ClientStore, name, email string) *domain.Client {
	t.Helper()
	client, err := s.Add(context.Background(), ClientInput{
		Name:  name,
		Email: email,
		Goals: []string{"Get stronger"},
	})
	require.NoError(t, err)
	return client
}

func TestClientAddValidationOrder(t *testing.T) {
	s, _ := newEmptyClientStore(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   ClientInput
		wantErr string
	}{
		{
			name:    "missing name",
			input:   ClientInput{Email: "a@x.com", Goals: []string{"g"}},
			wantErr: "Name is required",
		},
		{
			name:    "missing email",
			input:   ClientInput{Name: "A", Goals: []string{"g"}},
			wantErr: "Email is required",
		},
		{
			name:    "malformed email",
			input:   ClientInput{Name: "A", Email: "not-an-email", Goals: []string{"g"}},
			wantErr: "Invalid email format",
		},
		{
			name:    "bad phone",
			input:   ClientInput{Name: "A", Email: "a@x.com", Phone: "call me", Goals: []string{"g"}},
			wantErr: "Invalid phone number format",
		},
		{
			name:    "only blank goals",
			input:   ClientInput{Name: "A", Email: "a@x.com", Goals: []string{"", "  "}},
			wantErr: "At least one goal is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Add(ctx, tc.input)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantErr, ve.Message)
		})
	}

	// No partial writes happened along the way.
	assert.Empty(t, s.All())
}

func TestClientAddSuccess(t *testing.T) {
	s, _ := newEmptyClientStore(t)

	client, err := s.Add(context.Background(), ClientInput{
		Name:  "A",
		Email: "a@x.com",
		Phone: "+1 (555) 010-2030",
		Goals: []string{"", "Lose weight"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, client.ID)
	assert.False(t, client.JoinDate.IsZero())
	assert.Equal(t, []string{"Lose weight"}, client.Goals)
	assert.Empty(t, client.WorkoutHistory)
	assert.Empty(t, client.Attendance)
	assert.Empty(t, client.Nutrition)
}

func TestClientEmailUniqueness(t *testing.T) {
	s, _ := newEmptyClientStore(t)
	ctx := context.Background()

	addTestClient(t, s, "A", "a@x.com")

	_, err := s.Add(ctx, ClientInput{Name: "B", Email: "A@X.COM", Goals: []string{"g"}})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "A client with this email already exists", ve.Message)
	assert.Len(t, s.All(), 1)
}

func TestClientUpdateMergesWithoutTouchingJoinDate(t *testing.T) {
	s, _ := newEmptyClientStore(t)
	ctx := context.Background()

	client := addTestClient(t, s, "A", "a@x.com")
	joined := client.JoinDate

	newName := "Alice"
	require.NoError(t, s.Update(ctx, client.ID, ClientUpdate{Name: &newName}))

	got, ok := s.ByID(client.ID)
	require.True(t, ok)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "a@x.com", got.Email)
	assert.True(t, got.JoinDate.Equal(joined))

	// Unknown id is a no-op, not an error.
	assert.NoError(t, s.Update(ctx, "nope", ClientUpdate{Name: &newName}))
}

func TestClientRemove(t *testing.T) {
	s, _ := newEmptyClientStore(t)
	ctx := context.Background()

	client := addTestClient(t, s, "A", "a@x.com")
	require.NoError(t, s.Remove(ctx, client.ID))
	_, ok := s.ByID(client.ID)
	assert.False(t, ok)
	assert.NoError(t, s.Remove(ctx, client.ID))
}

func TestRecordProgressAlwaysRefreshesLastUpdated(t *testing.T) {
	s, _ := newEmptyClientStore(t)
	ctx := context.Background()

	client := addTestClient(t, s, "A", "a@x.com")

	stamp := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return stamp }

	require.NoError(t, s.RecordProgress(ctx, client.ID, ProgressUpdate{Weight: domain.Float64(82)}))
	got, _ := s.ByID(client.ID)
	require.NotNil(t, got.Progress.Weight)
	assert.Equal(t, float64(82), *got.Progress.Weight)
	assert.True(t, got.Progress.LastUpdated.Equal(stamp))

	// An empty update still refreshes the stamp.
	later := stamp.Add(time.Hour)
	s.now = func() time.Time { return later }
	require.NoError(t, s.RecordProgress(ctx, client.ID, ProgressUpdate{}))
	got, _ = s.ByID(client.ID)
	assert.True(t, got.Progress.LastUpdated.Equal(later))
	assert.Equal(t, float64(82), *got.Progress.Weight)

	assert.ErrorIs(t, s.RecordProgress(ctx, "nope", ProgressUpdate{}), ErrClientNotFound)
}

func TestClientAnalyticsNotFound(t *testing.T) {
	s, _ := newEmptyClientStore(t)
	_, err := s.Analytics("missing")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestClientAnalyticsEmptyLogsAreAllZero(t *testing.T) {
	s, _ := newEmptyClientStore(t)
	client := addTestClient(t, s, "A", "a@x.com")

	analytics, err := s.Analytics(client.ID)
	require.NoError(t, err)
	assert.Zero(t, analytics.WorkoutCompletionRate)
	assert.Zero(t, analytics.AverageAttendanceRate)
	assert.Empty(t, analytics.ProgressOverTime)
	assert.Empty(t, analytics.MostFrequentExercises)
	assert.Equal(t, domain.NutritionAverages{}, analytics.NutritionAverages)
}

func TestClientAnalyticsRates(t *testing.T) {
	s, _ := newEmptyClientStore(t)
	ctx := context.Background()
	client := addTestClient(t, s, "A", "a@x.com")

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, completed := range []bool{true, true, false, true} {
		require.NoError(t, s.AddWorkoutToHistory(ctx, client.ID, domain.ClientWorkoutRecord{
			WorkoutID: "w",
			Date:      day.AddDate(0, 0, i),
			Completed: completed,
		}))
	}
	for _, status := range []domain.AttendanceStatus{
		domain.AttendancePresent, domain.AttendanceAbsent, domain.AttendancePresent, domain.AttendanceCancelled,
	} {
		require.NoError(t, s.AddAttendance(ctx, client.ID, domain.AttendanceRecord{Date: day, Status: status}))
	}

	analytics, err := s.Analytics(client.ID)
	require.NoError(t, err)
	assert.InDelta(t, 75.0, analytics.WorkoutCompletionRate, 1e-9)
	assert.InDelta(t, 50.0, analytics.AverageAttendanceRate, 1e-9)
	assert.Len(t, analytics.ProgressOverTime, 3)
}

func TestClientAnalyticsProgressUsesCurrentSnapshot(t *testing.T) {
	s, _ := newEmptyClientStore(t)
	ctx := context.Background()
	client := addTestClient(t, s, "A", "a@x.com")

	old := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.AddWorkoutToHistory(ctx, client.ID, domain.ClientWorkoutRecord{
		WorkoutID: "w1", Date: old, Completed: true,
	}))
	require.NoError(t, s.RecordProgress(ctx, client.ID, ProgressUpdate{
		Weight:  domain.Float64(80),
		BodyFat: domain.Float64(20),
	}))

	analytics, err := s.Analytics(client.ID)
	require.NoError(t, err)
	require.Len(t, analytics.ProgressOverTime, 1)

	// Every point carries the current snapshot, even for entries recorded
	// before the progress update.
	point := analytics.ProgressOverTime[0]
	assert.True(t, point.Date.Equal(old))
	require.NotNil(t, point.Weight)
	assert.Equal(t, float64(80), *point.Weight)
	require.NotNil(t, point.BodyFat)
	assert.Equal(t, float64(20), *point.BodyFat)
}

func TestClientAnalyticsMostFrequentExercises(t *testing.T) {
	s, _ := newEmptyClientStore(t)
	ctx := context.Background()
	client := addTestClient(t, s, "A", "a@x.com")

	perf := func(ids ...string) []domain.ExercisePerformance {
		out := make([]domain.ExercisePerformance, len(ids))
		for i, id := range ids {
			out[i] = domain.ExercisePerformance{ExerciseID: id}
		}
		return out
	}

	require.NoError(t, s.AddWorkoutToHistory(ctx, client.ID, domain.ClientWorkoutRecord{
		Performance: perf("squat", "bench", "row", "curl", "press", "dip"),
	}))
	require.NoError(t, s.AddWorkoutToHistory(ctx, client.ID, domain.ClientWorkoutRecord{
		Performance: perf("bench", "row"),
	}))

	analytics, err := s.Analytics(client.ID)
	require.NoError(t, err)
	require.Len(t, analytics.MostFrequentExercises, 5)

	assert.Equal(t, "bench", analytics.MostFrequentExercises[0].ExerciseID)
	assert.Equal(t, 2, analytics.MostFrequentExercises[0].Count)
	assert.Equal(t, "row", analytics.MostFrequentExercises[1].ExerciseID)
	// Singles keep first-encountered order.
	assert.Equal(t, "squat", analytics.MostFrequentExercises[2].ExerciseID)
	assert.Equal(t, "curl", analytics.MostFrequentExercises[3].ExerciseID)
	assert.Equal(t, "press", analytics.MostFrequentExercises[4].ExerciseID)
}

func TestClientAnalyticsNutritionAverages(t *testing.T) {
	s, _ := newEmptyClientStore(t)
	ctx := context.Background()
	client := addTestClient(t, s, "A", "a@x.com")

	entries := []domain.NutritionEntry{
		{Calories: domain.Float64(2000), Protein: domain.Float64(150), Carbs: domain.Float64(201), Fat: domain.Float64(70)},
		{Calories: domain.Float64(2101), Protein: domain.Float64(160), Fat: domain.Float64(71)},
	}
	for _, e := range entries {
		require.NoError(t, s.AddNutrition(ctx, client.ID, e))
	}

	analytics, err := s.Analytics(client.ID)
	require.NoError(t, err)
	// Means rounded to nearest integer; missing macros count as zero.
	assert.Equal(t, domain.NutritionAverages{
		Calories: 2051,
		Protein:  155,
		Carbs:    101,
		Fat:      71,
	}, analytics.NutritionAverages)
}

func TestClientStoreSeedsSamplesWhenSlotAbsent(t *testing.T) {
	engine := storage.NewMemoryEngine()
	s, err := NewClientStore(context.Background(), engine)
	require.NoError(t, err)
	assert.Len(t, s.All(), 2)

	// Reloading sees the persisted seed, not a fresh one.
	reloaded, err := NewClientStore(context.Background(), engine)
	require.NoError(t, err)
	assert.Equal(t, s.All()[0].ID, reloaded.All()[0].ID)
}

func TestClientStoreReadYourWrites(t *testing.T) {
	s, engine := newEmptyClientStore(t)
	client := addTestClient(t, s, "A", "a@x.com")

	// A second store over the same engine observes the mutation.
	reloaded, err := NewClientStore(context.Background(), engine)
	require.NoError(t, err)
	got, ok := reloaded.ByID(client.ID)
	require.True(t, ok)
	assert.Equal(t, "A", got.Name)
}
