package domain

import "time"

// Workout is a single planned or logged session: an ordered list of planned
// exercises for a client on a date, created by copying a template's
// exercises or built ad hoc. This is the one canonical workout shape; the
// calendar's ScheduledWorkout extends it rather than redefining it.
type Workout struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Date       time.Time         `json:"date"`
	DayOfWeek  DayOfWeek         `json:"dayOfWeek,omitempty"`
	ClientID   string            `json:"clientId"`
	TemplateID string            `json:"templateId"`
	Exercises  []PlannedExercise `json:"exercises"`
	Completed  bool              `json:"completed"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// ScheduledWorkout is a Workout materialized for one (schedule, calendar
// day) pair. At most one instance exists per schedule per day.
type ScheduledWorkout struct {
	Workout
	ScheduleID string `json:"scheduleId"`
}

// WorkoutStats summarizes a client's workouts.
type WorkoutStats struct {
	TotalWorkouts              int     `json:"totalWorkouts"`
	CompletedWorkouts          int     `json:"completedWorkouts"`
	TotalExercises             int     `json:"totalExercises"`
	AverageExercisesPerWorkout float64 `json:"averageExercisesPerWorkout"`
}
