package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"coachdesk/coach-organizer/internal/domain"
	"coachdesk/coach-organizer/internal/storage"
)

const (
	historySlot        = "workout-history-storage"
	historySlotVersion = 1
)

// defaultExerciseRankingLimit caps frequency rankings when the caller
// passes no explicit limit.
const defaultExerciseRankingLimit = 5

type historyState struct {
	History []domain.WorkoutHistory `json:"history"`
}

// HistoryStore is the append-only log of performed sessions per client,
// plus the derived progress series and frequency rankings. Entries are not
// deduplicated by workout id and are never derived automatically from
// workout completion; this log and the workout store are maintained
// independently.
type HistoryStore struct {
	mu     sync.Mutex
	engine storage.Engine
	state  historyState
	now    func() time.Time
}

// NewHistoryStore loads the history slot, starting empty when absent.
func NewHistoryStore(ctx context.Context, engine storage.Engine) (*HistoryStore, error) {
	s := &HistoryStore{engine: engine, now: func() time.Time { return time.Now().UTC() }}
	if _, err := engine.Load(ctx, historySlot, historySlotVersion, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HistoryStore) persist(ctx context.Context) error {
	if err := s.engine.Save(ctx, historySlot, historySlotVersion, &s.state); err != nil {
		log.WithError(err).Error("persisting workout history failed")
		return err
	}
	return nil
}

// Add appends an entry with a generated id.
func (s *HistoryStore) Add(ctx context.Context, entry domain.WorkoutHistory) (*domain.WorkoutHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uuid.NewString()
	s.state.History = append(s.state.History, entry)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// HistoryUpdate is a partial history-entry update; nil fields stay
// unchanged.
type HistoryUpdate struct {
	Date      *time.Time                 `json:"date,omitempty"`
	Exercises []domain.PerformedExercise `json:"exercises,omitempty"`
	Notes     *string                    `json:"notes,omitempty"`
	Rating    *int                       `json:"rating,omitempty"`
	Completed *bool                      `json:"completed,omitempty"`
}

// Update merges the partial into an existing entry.
func (s *HistoryStore) Update(ctx context.Context, id string, upd HistoryUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.History {
		if s.state.History[i].ID != id {
			continue
		}
		h := &s.state.History[i]
		if upd.Date != nil {
			h.Date = *upd.Date
		}
		if upd.Exercises != nil {
			h.Exercises = upd.Exercises
		}
		if upd.Notes != nil {
			h.Notes = *upd.Notes
		}
		if upd.Rating != nil {
			h.Rating = upd.Rating
		}
		if upd.Completed != nil {
			h.Completed = *upd.Completed
		}
		return s.persist(ctx)
	}
	return ErrHistoryNotFound
}

// Remove deletes an entry by id; unknown ids are a no-op.
func (s *HistoryStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.History[:0]
	for _, h := range s.state.History {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	s.state.History = kept
	return s.persist(ctx)
}

// ByClient returns the client's entries sorted most recent first. The UI
// depends on this ordering.
func (s *HistoryStore) ByClient(clientID string) []domain.WorkoutHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byClientLocked(clientID)
}

func (s *HistoryStore) byClientLocked(clientID string) []domain.WorkoutHistory {
	var out []domain.WorkoutHistory
	for _, h := range s.state.History {
		if h.ClientID == clientID {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// ExerciseProgress extracts a date-aligned series for one exercise across
// the client's completed entries, oldest first. Each point is the set with
// the maximum weight in that entry; on ties the first set found wins.
// Entries where the exercise is absent or has no sets are skipped, not
// zero-filled.
func (s *HistoryStore) ExerciseProgress(clientID, exerciseName string) domain.ExerciseProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	var completed []domain.WorkoutHistory
	for _, h := range s.state.History {
		if h.ClientID == clientID && h.Completed {
			completed = append(completed, h)
		}
	}
	sort.SliceStable(completed, func(i, j int) bool { return completed[i].Date.Before(completed[j].Date) })

	progress := domain.ExerciseProgress{
		Dates:   []time.Time{},
		Weights: []float64{},
		Reps:    []int{},
	}
	for _, h := range completed {
		var exercise *domain.PerformedExercise
		for i := range h.Exercises {
			if h.Exercises[i].Name == exerciseName {
				exercise = &h.Exercises[i]
				break
			}
		}
		if exercise == nil || len(exercise.Sets) == 0 {
			continue
		}

		maxSet := exercise.Sets[0]
		for _, set := range exercise.Sets[1:] {
			if setWeight(set) > setWeight(maxSet) {
				maxSet = set
			}
		}

		progress.Dates = append(progress.Dates, h.Date)
		progress.Weights = append(progress.Weights, setWeight(maxSet))
		reps := 0
		if maxSet.Reps != nil {
			reps = *maxSet.Reps
		}
		progress.Reps = append(progress.Reps, reps)
	}
	return progress
}

func setWeight(set domain.PerformedSet) float64 {
	if set.Weight == nil {
		return 0
	}
	return *set.Weight
}

// CompletionRate is the percentage of the client's entries marked
// completed; 0 when there are none.
func (s *HistoryStore) CompletionRate(clientID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.byClientLocked(clientID)
	if len(entries) == 0 {
		return 0
	}
	completed := 0
	for _, h := range entries {
		if h.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(entries)) * 100
}

// MostCommonExercises tallies exercise names across the client's entries
// (every occurrence counts, no per-workout dedup), sorted by count
// descending with ties kept in first-seen order, truncated to limit.
// A non-positive limit means the default of 5.
func (s *HistoryStore) MostCommonExercises(clientID string, limit int) []domain.ExerciseCount {
	if limit <= 0 {
		limit = defaultExerciseRankingLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	var order []string
	for _, h := range s.byClientLocked(clientID) {
		for _, ex := range h.Exercises {
			if _, seen := counts[ex.Name]; !seen {
				order = append(order, ex.Name)
			}
			counts[ex.Name]++
		}
	}

	out := make([]domain.ExerciseCount, 0, len(order))
	for _, name := range order {
		out = append(out, domain.ExerciseCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SeedSampleData appends ten plausible completed sessions spread over the
// past month for the client, so charts have something to draw on a fresh
// install.
func (s *HistoryStore) SeedSampleData(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for i := 0; i < 10; i++ {
		entry := sampleHistory(clientID, now, i*3)
		entry.ID = uuid.NewString()
		s.state.History = append(s.state.History, entry)
	}
	log.WithField("clientId", clientID).Info("seeded sample workout history")
	return s.persist(ctx)
}
