package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"coachdesk/coach-organizer/internal/domain"
	"coachdesk/coach-organizer/internal/storage"
)

const (
	catalogSlot        = "custom-exercises-storage"
	catalogSlotVersion = 1
)

// catalogState is the persisted state tree of the catalog: custom exercises
// only. Built-ins ship with the binary and are never written.
type catalogState struct {
	CustomExercises []domain.Exercise `json:"customExercises"`
}

// CatalogStore unions the built-in exercise library with the coach's custom
// exercises. Built-ins are read-only; custom exercises are appended after
// them in every listing.
type CatalogStore struct {
	mu     sync.Mutex
	engine storage.Engine
	state  catalogState
}

// NewCatalogStore loads the custom-exercise slot, starting empty when the
// slot is absent.
func NewCatalogStore(ctx context.Context, engine storage.Engine) (*CatalogStore, error) {
	s := &CatalogStore{engine: engine}
	found, err := engine.Load(ctx, catalogSlot, catalogSlotVersion, &s.state)
	if err != nil {
		return nil, err
	}
	if !found {
		s.state = catalogState{}
	}
	log.WithField("custom", len(s.state.CustomExercises)).Debug("exercise catalog ready")
	return s, nil
}

func (s *CatalogStore) persist(ctx context.Context) error {
	if err := s.engine.Save(ctx, catalogSlot, catalogSlotVersion, &s.state); err != nil {
		log.WithError(err).Error("persisting exercise catalog failed")
		return err
	}
	return nil
}

// Categories returns the static exercise categories.
func (s *CatalogStore) Categories() []domain.ExerciseCategory {
	out := make([]domain.ExerciseCategory, len(builtinCategories))
	copy(out, builtinCategories)
	return out
}

// All returns built-in exercises followed by custom ones, order preserved.
func (s *CatalogStore) All() []domain.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Exercise, 0, len(builtinExercises)+len(s.state.CustomExercises))
	out = append(out, builtinExercises...)
	out = append(out, s.state.CustomExercises...)
	return out
}

// ByCategory filters the unioned list by category ids. An empty filter
// returns everything.
func (s *CatalogStore) ByCategory(categoryIDs ...string) []domain.Exercise {
	all := s.All()
	if len(categoryIDs) == 0 {
		return all
	}

	wanted := make(map[string]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = struct{}{}
	}

	var out []domain.Exercise
	for _, ex := range all {
		if _, ok := wanted[ex.CategoryID]; ok {
			out = append(out, ex)
		}
	}
	return out
}

// AddCustom stores a coach-defined exercise. The id is generated; name
// uniqueness is not enforced.
func (s *CatalogStore) AddCustom(ctx context.Context, in domain.Exercise) (*domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = uuid.NewString()
	s.state.CustomExercises = append(s.state.CustomExercises, in)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &in, nil
}

// UpdateCustom merges changed fields into a custom exercise. Built-ins
// cannot be updated.
func (s *CatalogStore) UpdateCustom(ctx context.Context, id string, upd ExerciseUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.CustomExercises {
		if s.state.CustomExercises[i].ID != id {
			continue
		}
		ex := &s.state.CustomExercises[i]
		if upd.Name != nil {
			ex.Name = *upd.Name
		}
		if upd.Description != nil {
			ex.Description = *upd.Description
		}
		if upd.Type != nil {
			ex.Type = *upd.Type
		}
		if upd.CategoryID != nil {
			ex.CategoryID = *upd.CategoryID
		}
		if upd.DefaultReps != nil {
			ex.DefaultReps = upd.DefaultReps
		}
		return s.persist(ctx)
	}
	return ErrExerciseNotFound
}

// DeleteCustom removes a custom exercise by id. Removing a built-in is not
// possible; an unknown id is a no-op.
func (s *CatalogStore) DeleteCustom(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.CustomExercises[:0]
	for _, ex := range s.state.CustomExercises {
		if ex.ID != id {
			kept = append(kept, ex)
		}
	}
	s.state.CustomExercises = kept
	return s.persist(ctx)
}

// CustomByID returns the custom exercise with the given id, if any.
func (s *CatalogStore) CustomByID(id string) (*domain.Exercise, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ex := range s.state.CustomExercises {
		if ex.ID == id {
			found := ex
			return &found, true
		}
	}
	return nil, false
}

// ExerciseUpdate is a partial update of a custom exercise; nil fields are
// left unchanged.
type ExerciseUpdate struct {
	Name        *string              `json:"name,omitempty"`
	Description *string              `json:"description,omitempty"`
	Type        *domain.ExerciseType `json:"type,omitempty"`
	CategoryID  *string              `json:"categoryId,omitempty"`
	DefaultReps *domain.DefaultReps  `json:"defaultReps,omitempty"`
}

// Instantiate copies an exercise into a planned-exercise record with sane
// numeric defaults. Every "add exercise to plan" action depends on this
// producing fully-populated fields: sets falls back to 3, the rest to zero.
func Instantiate(ex domain.Exercise) domain.PlannedExercise {
	planned := domain.PlannedExercise{
		Exercise: ex,
		Sets:     3,
		Reps:     domain.Int(0),
		Duration: 0,
		Distance: 0,
		Weight:   domain.Float64(0),
		Notes:    "",
	}
	if dr := ex.DefaultReps; dr != nil {
		if dr.Sets != nil {
			planned.Sets = *dr.Sets
		}
		if dr.Reps != nil {
			planned.Reps = domain.Int(*dr.Reps)
		}
		if dr.Duration != nil {
			planned.Duration = *dr.Duration
		}
		if dr.Distance != nil {
			planned.Distance = *dr.Distance
		}
	}
	return planned
}
