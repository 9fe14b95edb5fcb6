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
	templateSlot        = "workout-templates"
	templateSlotVersion = 1
)

type templateState struct {
	Templates []domain.WorkoutTemplate `json:"templates"`
}

// ScheduleDirectory is the schedule API the template store delegates to.
// Recurring schedules have exactly one owner (the calendar store) so that
// deleting a schedule cascades to its materialized instances atomically;
// the template store re-exposes the operations for callers that think in
// terms of templates.
type ScheduleDirectory interface {
	AddRecurringSchedule(ctx context.Context, in ScheduleInput) (*domain.RecurringSchedule, error)
	UpdateRecurringSchedule(ctx context.Context, id string, upd ScheduleUpdate) error
	DeleteRecurringSchedule(ctx context.Context, id string) error
	SchedulesByClient(clientID string) []domain.RecurringSchedule
	SchedulesByTemplate(templateID string) []domain.RecurringSchedule
}

// TemplateStore is CRUD over reusable workout templates plus the
// template-centric view of recurring schedules.
type TemplateStore struct {
	mu        sync.Mutex
	engine    storage.Engine
	schedules ScheduleDirectory
	state     templateState
	now       func() time.Time
}

// NewTemplateStore loads the template slot, starting empty when absent.
func NewTemplateStore(ctx context.Context, engine storage.Engine, schedules ScheduleDirectory) (*TemplateStore, error) {
	s := &TemplateStore{
		engine:    engine,
		schedules: schedules,
		now:       func() time.Time { return time.Now().UTC() },
	}
	if _, err := engine.Load(ctx, templateSlot, templateSlotVersion, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *TemplateStore) persist(ctx context.Context) error {
	if err := s.engine.Save(ctx, templateSlot, templateSlotVersion, &s.state); err != nil {
		log.WithError(err).Error("persisting templates failed")
		return err
	}
	return nil
}

// TemplateInput is the payload for creating a template.
type TemplateInput struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Exercises   []domain.PlannedExercise `json:"exercises"`
	DayOfWeek   domain.DayOfWeek         `json:"dayOfWeek,omitempty"`
	IsPublic    bool                     `json:"isPublic"`
}

// TemplateUpdate is a partial template update; nil fields stay unchanged.
type TemplateUpdate struct {
	Name        *string                  `json:"name,omitempty"`
	Description *string                  `json:"description,omitempty"`
	Exercises   []domain.PlannedExercise `json:"exercises,omitempty"`
	DayOfWeek   *domain.DayOfWeek        `json:"dayOfWeek,omitempty"`
	IsPublic    *bool                    `json:"isPublic,omitempty"`
}

// Add stores a new template with a generated id and fresh timestamps.
func (s *TemplateStore) Add(ctx context.Context, in TemplateInput) (*domain.WorkoutTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	tpl := domain.WorkoutTemplate{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Exercises:   in.Exercises,
		DayOfWeek:   in.DayOfWeek,
		IsPublic:    in.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if tpl.Exercises == nil {
		tpl.Exercises = []domain.PlannedExercise{}
	}
	s.state.Templates = append(s.state.Templates, tpl)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// Update merges the partial into an existing template and refreshes
// UpdatedAt.
func (s *TemplateStore) Update(ctx context.Context, id string, upd TemplateUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Templates {
		if s.state.Templates[i].ID != id {
			continue
		}
		tpl := &s.state.Templates[i]
		if upd.Name != nil {
			tpl.Name = *upd.Name
		}
		if upd.Description != nil {
			tpl.Description = *upd.Description
		}
		if upd.Exercises != nil {
			tpl.Exercises = upd.Exercises
		}
		if upd.DayOfWeek != nil {
			tpl.DayOfWeek = *upd.DayOfWeek
		}
		if upd.IsPublic != nil {
			tpl.IsPublic = *upd.IsPublic
		}
		tpl.UpdatedAt = s.now()
		return s.persist(ctx)
	}
	return ErrTemplateNotFound
}

// Remove deletes the template and cascades: every recurring schedule
// referencing it goes through the authoritative schedule deletion, which
// also drops the schedules' materialized workouts.
func (s *TemplateStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.state.Templates[:0]
	for _, tpl := range s.state.Templates {
		if tpl.ID != id {
			kept = append(kept, tpl)
		}
	}
	s.state.Templates = kept
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	for _, sched := range s.schedules.SchedulesByTemplate(id) {
		if err := s.schedules.DeleteRecurringSchedule(ctx, sched.ID); err != nil {
			return err
		}
	}
	return nil
}

// ByID returns the template with the given id, if any.
func (s *TemplateStore) ByID(id string) (*domain.WorkoutTemplate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tpl := range s.state.Templates {
		if tpl.ID == id {
			found := tpl
			return &found, true
		}
	}
	return nil, false
}

// All returns every template in insertion order.
func (s *TemplateStore) All() []domain.WorkoutTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.WorkoutTemplate, len(s.state.Templates))
	copy(out, s.state.Templates)
	return out
}

// Public returns the templates marked shareable.
func (s *TemplateStore) Public() []domain.WorkoutTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.WorkoutTemplate
	for _, tpl := range s.state.Templates {
		if tpl.IsPublic {
			out = append(out, tpl)
		}
	}
	return out
}

// ByDay returns the templates tagged to the given weekday.
func (s *TemplateStore) ByDay(day domain.DayOfWeek) []domain.WorkoutTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.WorkoutTemplate
	for _, tpl := range s.state.Templates {
		if tpl.DayOfWeek == day {
			out = append(out, tpl)
		}
	}
	return out
}

// AddRecurringSchedule delegates to the schedule directory.
func (s *TemplateStore) AddRecurringSchedule(ctx context.Context, in ScheduleInput) (*domain.RecurringSchedule, error) {
	return s.schedules.AddRecurringSchedule(ctx, in)
}

// UpdateRecurringSchedule delegates to the schedule directory.
func (s *TemplateStore) UpdateRecurringSchedule(ctx context.Context, id string, upd ScheduleUpdate) error {
	return s.schedules.UpdateRecurringSchedule(ctx, id, upd)
}

// RemoveRecurringSchedule delegates to the schedule directory; the cascade
// to materialized workouts rides along.
func (s *TemplateStore) RemoveRecurringSchedule(ctx context.Context, id string) error {
	return s.schedules.DeleteRecurringSchedule(ctx, id)
}

// SchedulesByClient returns the schedules bound to a client.
func (s *TemplateStore) SchedulesByClient(clientID string) []domain.RecurringSchedule {
	return s.schedules.SchedulesByClient(clientID)
}

// SchedulesByTemplate returns the schedules referencing a template.
func (s *TemplateStore) SchedulesByTemplate(templateID string) []domain.RecurringSchedule {
	return s.schedules.SchedulesByTemplate(templateID)
}
