package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"coachdesk/coach-organizer/internal/domain"
	"coachdesk/coach-organizer/internal/storage"
)

const (
	workoutSlot        = "workout-storage"
	workoutSlotVersion = 1
)

type workoutState struct {
	Workouts []domain.Workout `json:"workouts"`
}

// WorkoutStore is CRUD over ad hoc or template-derived workout instances.
// There is one constructor policy: Add assigns id, createdAt and updatedAt
// whenever the caller left them empty, so every stored workout is fully
// identified regardless of how it was built.
type WorkoutStore struct {
	mu     sync.Mutex
	engine storage.Engine
	state  workoutState
	now    func() time.Time
}

// NewWorkoutStore loads the workout slot, starting empty when absent.
func NewWorkoutStore(ctx context.Context, engine storage.Engine) (*WorkoutStore, error) {
	s := &WorkoutStore{engine: engine, now: func() time.Time { return time.Now().UTC() }}
	if _, err := engine.Load(ctx, workoutSlot, workoutSlotVersion, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *WorkoutStore) persist(ctx context.Context) error {
	if err := s.engine.Save(ctx, workoutSlot, workoutSlotVersion, &s.state); err != nil {
		log.WithError(err).Error("persisting workouts failed")
		return err
	}
	return nil
}

// Add stores a workout, filling in id, date and timestamps when absent.
func (s *WorkoutStore) Add(ctx context.Context, w domain.Workout) (*domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.Date.IsZero() {
		w.Date = now
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	w.UpdatedAt = now
	if w.Exercises == nil {
		w.Exercises = []domain.PlannedExercise{}
	}

	s.state.Workouts = append(s.state.Workouts, w)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &w, nil
}

// WorkoutUpdate is a partial workout update; nil fields stay unchanged.
type WorkoutUpdate struct {
	Name      *string                  `json:"name,omitempty"`
	Date      *time.Time               `json:"date,omitempty"`
	DayOfWeek *domain.DayOfWeek        `json:"dayOfWeek,omitempty"`
	ClientID  *string                  `json:"clientId,omitempty"`
	Exercises []domain.PlannedExercise `json:"exercises,omitempty"`
	Completed *bool                    `json:"completed,omitempty"`
	Notes     *string                  `json:"notes,omitempty"`
}

// Update merges the partial into an existing workout and refreshes
// UpdatedAt.
func (s *WorkoutStore) Update(ctx context.Context, id string, upd WorkoutUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Workouts {
		if s.state.Workouts[i].ID != id {
			continue
		}
		w := &s.state.Workouts[i]
		if upd.Name != nil {
			w.Name = *upd.Name
		}
		if upd.Date != nil {
			w.Date = *upd.Date
		}
		if upd.DayOfWeek != nil {
			w.DayOfWeek = *upd.DayOfWeek
		}
		if upd.ClientID != nil {
			w.ClientID = *upd.ClientID
		}
		if upd.Exercises != nil {
			w.Exercises = upd.Exercises
		}
		if upd.Completed != nil {
			w.Completed = *upd.Completed
		}
		if upd.Notes != nil {
			w.Notes = *upd.Notes
		}
		w.UpdatedAt = s.now()
		return s.persist(ctx)
	}
	return ErrWorkoutNotFound
}

// Remove deletes a workout by id; unknown ids are a no-op.
func (s *WorkoutStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Workouts[:0]
	for _, w := range s.state.Workouts {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	s.state.Workouts = kept
	return s.persist(ctx)
}

// ByID returns the workout with the given id, if any.
func (s *WorkoutStore) ByID(id string) (*domain.Workout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(id)
}

func (s *WorkoutStore) findLocked(id string) (*domain.Workout, bool) {
	for i := range s.state.Workouts {
		if s.state.Workouts[i].ID == id {
			found := s.state.Workouts[i]
			return &found, true
		}
	}
	return nil, false
}

// All returns every workout in insertion order.
func (s *WorkoutStore) All() []domain.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Workout, len(s.state.Workouts))
	copy(out, s.state.Workouts)
	return out
}

// ByClient returns the client's workouts in insertion order.
func (s *WorkoutStore) ByClient(clientID string) []domain.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byClientLocked(clientID)
}

func (s *WorkoutStore) byClientLocked(clientID string) []domain.Workout {
	var out []domain.Workout
	for _, w := range s.state.Workouts {
		if w.ClientID == clientID {
			out = append(out, w)
		}
	}
	return out
}

// ByClientAndDay filters the client's workouts by weekday tag.
func (s *WorkoutStore) ByClientAndDay(clientID string, day domain.DayOfWeek) []domain.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Workout
	for _, w := range s.state.Workouts {
		if w.ClientID == clientID && w.DayOfWeek == day {
			out = append(out, w)
		}
	}
	return out
}

// Continue starts a fresh session from a past workout: a clone with a new
// id, today's date, completion cleared, and every exercise's recorded
// weight and reps wiped while sets and structure are kept. The clone is
// stored and returned. Returns ErrWorkoutNotFound if the source is gone.
func (s *WorkoutStore) Continue(ctx context.Context, workoutID string) (*domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	source, ok := s.findLocked(workoutID)
	if !ok {
		return nil, ErrWorkoutNotFound
	}

	now := s.now()
	clone := *source
	clone.ID = uuid.NewString()
	clone.Date = now
	clone.Completed = false
	clone.CreatedAt = now
	clone.UpdatedAt = now
	clone.Exercises = make([]domain.PlannedExercise, len(source.Exercises))
	for i, ex := range source.Exercises {
		ex.Completed = false
		ex.Weight = nil
		ex.Reps = nil
		clone.Exercises[i] = ex
	}

	s.state.Workouts = append(s.state.Workouts, clone)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &clone, nil
}

// Complete marks the workout done. Idempotent; unknown ids are a no-op.
func (s *WorkoutStore) Complete(ctx context.Context, workoutID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Workouts {
		if s.state.Workouts[i].ID == workoutID {
			s.state.Workouts[i].Completed = true
			s.state.Workouts[i].UpdatedAt = s.now()
			return s.persist(ctx)
		}
	}
	return nil
}

// Stats summarizes the client's workouts. Zero workouts yields all zeros,
// never a division by zero.
func (s *WorkoutStore) Stats(clientID string) domain.WorkoutStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	workouts := s.byClientLocked(clientID)
	stats := domain.WorkoutStats{TotalWorkouts: len(workouts)}
	for _, w := range workouts {
		if w.Completed {
			stats.CompletedWorkouts++
		}
		stats.TotalExercises += len(w.Exercises)
	}
	if stats.TotalWorkouts > 0 {
		stats.AverageExercisesPerWorkout = float64(stats.TotalExercises) / float64(stats.TotalWorkouts)
	}
	return stats
}
