package store

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"coachdesk/coach-organizer/internal/domain"
	"coachdesk/coach-organizer/internal/storage"
)

const (
	clientSlot        = "client-storage"
	clientSlotVersion = 1
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
)

type clientState struct {
	Clients []domain.Client `json:"clients"`
}

// ClientStore is the client registry: validated CRUD over client profiles
// plus the nested progress, workout, attendance and nutrition logs it owns
// exclusively, and the per-client analytics derived from them.
type ClientStore struct {
	mu     sync.Mutex
	engine storage.Engine
	state  clientState
	now    func() time.Time
}

// NewClientStore loads the client slot. When the slot is absent the
// registry starts with two seeded sample clients so a first run has
// something to show.
func NewClientStore(ctx context.Context, engine storage.Engine) (*ClientStore, error) {
	s := &ClientStore{engine: engine, now: func() time.Time { return time.Now().UTC() }}
	found, err := engine.Load(ctx, clientSlot, clientSlotVersion, &s.state)
	if err != nil {
		return nil, err
	}
	if !found {
		s.state.Clients = sampleClients(s.now())
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		log.WithField("seeded", len(s.state.Clients)).Info("client registry initialized with sample data")
	}
	return s, nil
}

func (s *ClientStore) persist(ctx context.Context) error {
	if err := s.engine.Save(ctx, clientSlot, clientSlotVersion, &s.state); err != nil {
		log.WithError(err).Error("persisting client registry failed")
		return err
	}
	return nil
}

// ClientInput is the payload for creating a client. Everything else on the
// record (id, join date, logs) is assigned by the registry.
type ClientInput struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Phone string   `json:"phone"`
	Goals []string `json:"goals"`
	Notes string   `json:"notes"`
}

// ClientUpdate is a partial profile update; nil fields stay unchanged.
// JoinDate is immutable and the owned logs have dedicated operations, so
// neither is updatable here. Validation is NOT re-run: callers pre-validate.
type ClientUpdate struct {
	Name  *string  `json:"name,omitempty"`
	Email *string  `json:"email,omitempty"`
	Phone *string  `json:"phone,omitempty"`
	Goals []string `json:"goals,omitempty"`
	Notes *string  `json:"notes,omitempty"`
}

// ProgressUpdate merges into the client's progress snapshot.
type ProgressUpdate struct {
	Weight       *float64             `json:"weight,omitempty"`
	BodyFat      *float64             `json:"bodyFat,omitempty"`
	Measurements *domain.Measurements `json:"measurements,omitempty"`
}

// Add validates and stores a new client. Rules run in order and the first
// failure short-circuits with its message as a *ValidationError; no partial
// writes happen on failure. On success the record gets a generated id, the
// current join date, the surviving trimmed goals, and empty logs.
func (s *ClientStore) Add(ctx context.Context, in ClientInput) (*domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(in.Name) == "" {
		return nil, validationErr("Name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, validationErr("Email is required")
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, validationErr("Invalid email format")
	}
	for _, c := range s.state.Clients {
		if strings.EqualFold(c.Email, in.Email) {
			return nil, validationErr("A client with this email already exists")
		}
	}
	if in.Phone != "" && !phonePattern.MatchString(in.Phone) {
		return nil, validationErr("Invalid phone number format")
	}
	var goals []string
	for _, g := range in.Goals {
		if strings.TrimSpace(g) != "" {
			goals = append(goals, g)
		}
	}
	if len(goals) == 0 {
		return nil, validationErr("At least one goal is required")
	}

	now := s.now()
	client := domain.Client{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Goals:          goals,
		Notes:          in.Notes,
		JoinDate:       now,
		Progress:       domain.ClientProgress{LastUpdated: now},
		WorkoutHistory: []domain.ClientWorkoutRecord{},
		Attendance:     []domain.AttendanceRecord{},
		Nutrition:      []domain.NutritionEntry{},
	}
	s.state.Clients = append(s.state.Clients, client)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &client, nil
}

// Update shallow-merges the partial into an existing record. Unknown ids
// are a no-op.
func (s *ClientStore) Update(ctx context.Context, id string, upd ClientUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Clients {
		if s.state.Clients[i].ID != id {
			continue
		}
		c := &s.state.Clients[i]
		if upd.Name != nil {
			c.Name = *upd.Name
		}
		if upd.Email != nil {
			c.Email = *upd.Email
		}
		if upd.Phone != nil {
			c.Phone = *upd.Phone
		}
		if upd.Goals != nil {
			c.Goals = upd.Goals
		}
		if upd.Notes != nil {
			c.Notes = *upd.Notes
		}
		return s.persist(ctx)
	}
	return nil
}

// Remove deletes the client record by id. There is no cascade to the
// workout store; workouts referencing the client simply dangle.
func (s *ClientStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Clients[:0]
	for _, c := range s.state.Clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.state.Clients = kept
	return s.persist(ctx)
}

// ByID returns the client with the given id, if any.
func (s *ClientStore) ByID(id string) (*domain.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(id)
}

func (s *ClientStore) findLocked(id string) (*domain.Client, bool) {
	for i := range s.state.Clients {
		if s.state.Clients[i].ID == id {
			found := s.state.Clients[i]
			return &found, true
		}
	}
	return nil, false
}

// All returns every client in insertion order.
func (s *ClientStore) All() []domain.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Client, len(s.state.Clients))
	copy(out, s.state.Clients)
	return out
}

// AddWorkoutToHistory appends to the client-owned workout log.
func (s *ClientStore) AddWorkoutToHistory(ctx context.Context, clientID string, rec domain.ClientWorkoutRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Clients {
		if s.state.Clients[i].ID == clientID {
			s.state.Clients[i].WorkoutHistory = append(s.state.Clients[i].WorkoutHistory, rec)
			return s.persist(ctx)
		}
	}
	return ErrClientNotFound
}

// RecordProgress merges the update into the client's progress snapshot.
// LastUpdated is always refreshed, whichever fields changed.
func (s *ClientStore) RecordProgress(ctx context.Context, clientID string, upd ProgressUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Clients {
		if s.state.Clients[i].ID != clientID {
			continue
		}
		p := &s.state.Clients[i].Progress
		if upd.Weight != nil {
			p.Weight = upd.Weight
		}
		if upd.BodyFat != nil {
			p.BodyFat = upd.BodyFat
		}
		if upd.Measurements != nil {
			p.Measurements = upd.Measurements
		}
		p.LastUpdated = s.now()
		return s.persist(ctx)
	}
	return ErrClientNotFound
}

// AddAttendance appends to the client's attendance log.
func (s *ClientStore) AddAttendance(ctx context.Context, clientID string, rec domain.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Clients {
		if s.state.Clients[i].ID == clientID {
			s.state.Clients[i].Attendance = append(s.state.Clients[i].Attendance, rec)
			return s.persist(ctx)
		}
	}
	return ErrClientNotFound
}

// AddNutrition appends to the client's nutrition log.
func (s *ClientStore) AddNutrition(ctx context.Context, clientID string, entry domain.NutritionEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Clients {
		if s.state.Clients[i].ID == clientID {
			s.state.Clients[i].Nutrition = append(s.state.Clients[i].Nutrition, entry)
			return s.persist(ctx)
		}
	}
	return ErrClientNotFound
}

// Analytics derives the analytics view over the client's owned logs.
// Returns ErrClientNotFound for an unknown id.
//
// The progress-over-time series carries the client's CURRENT weight and
// body-fat snapshot on every point rather than historical per-entry values.
// That is the shipped product behavior, reproduced here on purpose.
func (s *ClientStore) Analytics(clientID string) (*domain.ClientAnalytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.findLocked(clientID)
	if !ok {
		return nil, ErrClientNotFound
	}

	out := &domain.ClientAnalytics{
		ProgressOverTime:      []domain.ProgressPoint{},
		MostFrequentExercises: []domain.ExerciseFrequency{},
	}

	completed := 0
	for _, w := range client.WorkoutHistory {
		if w.Completed {
			completed++
			out.ProgressOverTime = append(out.ProgressOverTime, domain.ProgressPoint{
				Date:    w.Date,
				Weight:  client.Progress.Weight,
				BodyFat: client.Progress.BodyFat,
			})
		}
	}
	if n := len(client.WorkoutHistory); n > 0 {
		out.WorkoutCompletionRate = float64(completed) / float64(n) * 100
	}

	present := 0
	for _, a := range client.Attendance {
		if a.Status == domain.AttendancePresent {
			present++
		}
	}
	if n := len(client.Attendance); n > 0 {
		out.AverageAttendanceRate = float64(present) / float64(n) * 100
	}

	// Tally exercise ids across all performance entries, preserving
	// first-encountered order so equal counts rank stably.
	counts := make(map[string]int)
	var order []string
	for _, w := range client.WorkoutHistory {
		for _, p := range w.Performance {
			if _, seen := counts[p.ExerciseID]; !seen {
				order = append(order, p.ExerciseID)
			}
			counts[p.ExerciseID]++
		}
	}
	for _, id := range order {
		out.MostFrequentExercises = append(out.MostFrequentExercises, domain.ExerciseFrequency{
			ExerciseID: id,
			Count:      counts[id],
		})
	}
	sort.SliceStable(out.MostFrequentExercises, func(i, j int) bool {
		return out.MostFrequentExercises[i].Count > out.MostFrequentExercises[j].Count
	})
	if len(out.MostFrequentExercises) > 5 {
		out.MostFrequentExercises = out.MostFrequentExercises[:5]
	}

	if n := len(client.Nutrition); n > 0 {
		var calories, protein, carbs, fat float64
		for _, e := range client.Nutrition {
			calories += deref(e.Calories)
			protein += deref(e.Protein)
			carbs += deref(e.Carbs)
			fat += deref(e.Fat)
		}
		out.NutritionAverages = domain.NutritionAverages{
			Calories: int(math.Round(calories / float64(n))),
			Protein:  int(math.Round(protein / float64(n))),
			Carbs:    int(math.Round(carbs / float64(n))),
			Fat:      int(math.Round(fat / float64(n))),
		}
	}

	return out, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
