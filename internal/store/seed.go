package store

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"coachdesk/coach-organizer/internal/domain"
)

// sampleClients builds the two starter profiles seeded into an empty
// registry so a fresh install isn't a blank page. Names and contact data
// are generated; goals and progress are fixed so the dashboards render
// something meaningful.
func sampleClients(now time.Time) []domain.Client {
	first := domain.Client{
		ID:    uuid.NewString(),
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
		Phone: "555-0123",
		Goals: []string{"Lose 10kg", "Improve cardiovascular fitness", "Build muscle mass"},
		Notes: "Prefers morning workouts. Has a history of knee injury.",
		Progress: domain.ClientProgress{
			Weight:  domain.Float64(85),
			BodyFat: domain.Float64(22),
			Measurements: &domain.Measurements{
				Chest:  domain.Float64(100),
				Waist:  domain.Float64(90),
				Hips:   domain.Float64(95),
				Arms:   domain.Float64(35),
				Thighs: domain.Float64(55),
			},
		},
	}
	second := domain.Client{
		ID:    uuid.NewString(),
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
		Phone: "555-0124",
		Goals: []string{"Improve flexibility", "Increase strength", "Maintain current weight"},
		Notes: "Enjoys yoga and pilates. Available for evening sessions.",
		Progress: domain.ClientProgress{
			Weight:  domain.Float64(65),
			BodyFat: domain.Float64(18),
			Measurements: &domain.Measurements{
				Chest:  domain.Float64(90),
				Waist:  domain.Float64(70),
				Hips:   domain.Float64(90),
				Arms:   domain.Float64(30),
				Thighs: domain.Float64(50),
			},
		},
	}

	clients := []domain.Client{first, second}
	for i := range clients {
		clients[i].JoinDate = now
		clients[i].Progress.LastUpdated = now
		clients[i].WorkoutHistory = []domain.ClientWorkoutRecord{}
		clients[i].Attendance = []domain.AttendanceRecord{}
		clients[i].Nutrition = []domain.NutritionEntry{}
	}
	return clients
}

// sampleHistory builds one plausible completed session dated daysAgo days
// back, with weights trending up toward the present.
func sampleHistory(clientID string, now time.Time, daysAgo int) domain.WorkoutHistory {
	bump := float64(daysAgo / 2)
	set := func(weight float64, reps int) domain.PerformedSet {
		return domain.PerformedSet{
			Weight:    domain.Float64(weight + bump),
			Reps:      domain.Int(reps),
			Completed: true,
		}
	}

	exercises := []domain.PerformedExercise{
		{ID: "bench-press", Name: "Bench Press", Sets: []domain.PerformedSet{set(60, 12), set(65, 10), set(70, 8)}},
		{ID: "squats", Name: "Squats", Sets: []domain.PerformedSet{set(80, 12), set(85, 10), set(90, 8)}},
		{ID: "deadlifts", Name: "Deadlifts", Sets: []domain.PerformedSet{set(100, 10), set(110, 8), set(120, 6)}},
	}

	return domain.WorkoutHistory{
		WorkoutID: uuid.NewString(),
		ClientID:  clientID,
		Date:      now.AddDate(0, 0, -daysAgo),
		Exercises: exercises,
		Notes:     fmt.Sprintf("Great session! Felt strong on %s.", exercises[0].Name),
		Rating:    domain.Int(4),
		Completed: true,
	}
}
