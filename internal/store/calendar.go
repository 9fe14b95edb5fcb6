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
	calendarSlot        = "calendar-storage"
	calendarSlotVersion = 1
)

type calendarState struct {
	RecurringSchedules []domain.RecurringSchedule `json:"recurringSchedules"`
	ScheduledWorkouts  []domain.ScheduledWorkout  `json:"scheduledWorkouts"`
}

// CalendarStore owns recurring schedules and their materialized workout
// instances. It is the single authoritative home for schedule deletion:
// removing a schedule cascades to every ScheduledWorkout carrying its id,
// in one operation, so callers never have to coordinate two stores.
//
// A ScheduledWorkout exists only once per (schedule, calendar day); absence
// for a day the rule covers means "not yet materialized", not "skipped".
type CalendarStore struct {
	mu     sync.Mutex
	engine storage.Engine
	state  calendarState
}

// NewCalendarStore loads the calendar slot, starting empty when absent.
func NewCalendarStore(ctx context.Context, engine storage.Engine) (*CalendarStore, error) {
	s := &CalendarStore{engine: engine}
	if _, err := engine.Load(ctx, calendarSlot, calendarSlotVersion, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CalendarStore) persist(ctx context.Context) error {
	if err := s.engine.Save(ctx, calendarSlot, calendarSlotVersion, &s.state); err != nil {
		log.WithError(err).Error("persisting calendar failed")
		return err
	}
	return nil
}

// ScheduleInput is the payload for creating a recurring schedule. The
// client and template ids are weak references; their existence is not
// checked here.
type ScheduleInput struct {
	ClientID   string             `json:"clientId"`
	TemplateID string             `json:"templateId"`
	DaysOfWeek []domain.DayOfWeek `json:"daysOfWeek"`
	StartDate  time.Time          `json:"startDate"`
	EndDate    *time.Time         `json:"endDate,omitempty"`
	Active     bool               `json:"active"`
}

// ScheduleUpdate is a partial schedule update; nil fields stay unchanged.
type ScheduleUpdate struct {
	ClientID   *string            `json:"clientId,omitempty"`
	TemplateID *string            `json:"templateId,omitempty"`
	DaysOfWeek []domain.DayOfWeek `json:"daysOfWeek,omitempty"`
	StartDate  *time.Time         `json:"startDate,omitempty"`
	EndDate    *time.Time         `json:"endDate,omitempty"`
	Active     *bool              `json:"active,omitempty"`
}

// AddRecurringSchedule stores a new schedule rule with a generated id.
func (s *CalendarStore) AddRecurringSchedule(ctx context.Context, in ScheduleInput) (*domain.RecurringSchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sched := domain.RecurringSchedule{
		ID:         uuid.NewString(),
		ClientID:   in.ClientID,
		TemplateID: in.TemplateID,
		DaysOfWeek: in.DaysOfWeek,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Active:     in.Active,
	}
	s.state.RecurringSchedules = append(s.state.RecurringSchedules, sched)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &sched, nil
}

// UpdateRecurringSchedule merges the partial into an existing rule.
func (s *CalendarStore) UpdateRecurringSchedule(ctx context.Context, id string, upd ScheduleUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.RecurringSchedules {
		if s.state.RecurringSchedules[i].ID != id {
			continue
		}
		sched := &s.state.RecurringSchedules[i]
		if upd.ClientID != nil {
			sched.ClientID = *upd.ClientID
		}
		if upd.TemplateID != nil {
			sched.TemplateID = *upd.TemplateID
		}
		if upd.DaysOfWeek != nil {
			sched.DaysOfWeek = upd.DaysOfWeek
		}
		if upd.StartDate != nil {
			sched.StartDate = *upd.StartDate
		}
		if upd.EndDate != nil {
			sched.EndDate = upd.EndDate
		}
		if upd.Active != nil {
			sched.Active = *upd.Active
		}
		return s.persist(ctx)
	}
	return ErrScheduleNotFound
}

// DeleteRecurringSchedule removes the rule AND every materialized workout
// carrying its schedule id. This is the one cascade path for schedules.
func (s *CalendarStore) DeleteRecurringSchedule(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedules := s.state.RecurringSchedules[:0]
	for _, sched := range s.state.RecurringSchedules {
		if sched.ID != id {
			schedules = append(schedules, sched)
		}
	}
	s.state.RecurringSchedules = schedules

	workouts := s.state.ScheduledWorkouts[:0]
	for _, w := range s.state.ScheduledWorkouts {
		if w.ScheduleID != id {
			workouts = append(workouts, w)
		}
	}
	s.state.ScheduledWorkouts = workouts

	return s.persist(ctx)
}

// ScheduleByID returns the schedule with the given id, if any.
func (s *CalendarStore) ScheduleByID(id string) (*domain.RecurringSchedule, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sched := range s.state.RecurringSchedules {
		if sched.ID == id {
			found := sched
			return &found, true
		}
	}
	return nil, false
}

// SchedulesByClient returns every schedule bound to the client.
func (s *CalendarStore) SchedulesByClient(clientID string) []domain.RecurringSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.RecurringSchedule
	for _, sched := range s.state.RecurringSchedules {
		if sched.ClientID == clientID {
			out = append(out, sched)
		}
	}
	return out
}

// SchedulesByTemplate returns every schedule referencing the template.
func (s *CalendarStore) SchedulesByTemplate(templateID string) []domain.RecurringSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.RecurringSchedule
	for _, sched := range s.state.RecurringSchedules {
		if sched.TemplateID == templateID {
			out = append(out, sched)
		}
	}
	return out
}

// Schedules returns all schedule rules.
func (s *CalendarStore) Schedules() []domain.RecurringSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RecurringSchedule, len(s.state.RecurringSchedules))
	copy(out, s.state.RecurringSchedules)
	return out
}

// ScheduledWorkout returns the materialized instance for (schedule, day),
// matching on the calendar date only, whatever time of day either side
// carries.
func (s *CalendarStore) ScheduledWorkout(scheduleID string, date time.Time) (*domain.ScheduledWorkout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.state.ScheduledWorkouts {
		if w.ScheduleID == scheduleID && sameDay(w.Date, date) {
			found := w
			return &found, true
		}
	}
	return nil, false
}

// ScheduledWorkouts returns every materialized instance.
func (s *CalendarStore) ScheduledWorkouts() []domain.ScheduledWorkout {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ScheduledWorkout, len(s.state.ScheduledWorkouts))
	copy(out, s.state.ScheduledWorkouts)
	return out
}

// UpsertScheduledWorkout materializes (or overwrites) the instance for
// (schedule, calendar day of date). An existing match is replaced in place,
// keeping its position in the backing list; otherwise the record is
// appended.
func (s *CalendarStore) UpsertScheduledWorkout(ctx context.Context, scheduleID string, date time.Time, workout domain.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scheduled := domain.ScheduledWorkout{Workout: workout, ScheduleID: scheduleID}

	for i := range s.state.ScheduledWorkouts {
		w := &s.state.ScheduledWorkouts[i]
		if w.ScheduleID == scheduleID && sameDay(w.Date, date) {
			*w = scheduled
			return s.persist(ctx)
		}
	}
	s.state.ScheduledWorkouts = append(s.state.ScheduledWorkouts, scheduled)
	return s.persist(ctx)
}

// DeleteScheduledWorkout removes the instance for (schedule, calendar day),
// if one exists. Absent is a no-op.
func (s *CalendarStore) DeleteScheduledWorkout(ctx context.Context, scheduleID string, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.ScheduledWorkouts[:0]
	for _, w := range s.state.ScheduledWorkouts {
		if w.ScheduleID == scheduleID && sameDay(w.Date, date) {
			continue
		}
		kept = append(kept, w)
	}
	s.state.ScheduledWorkouts = kept
	return s.persist(ctx)
}

// sameDay compares calendar dates only (year, month, day), never the time
// of day: workouts are date-stamped at varying times.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
