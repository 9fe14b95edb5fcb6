package domain

import "time"

// PerformedSet is one actually-performed set inside a history entry. All
// measured values are optional; missing ones default to zero in analytics.
type PerformedSet struct {
	Weight    *float64 `json:"weight,omitempty"`
	Reps      *int     `json:"reps,omitempty"`
	Duration  *int     `json:"duration,omitempty"`
	Distance  *float64 `json:"distance,omitempty"`
	Completed bool     `json:"completed"`
}

// PerformedExercise is one exercise's performed sets inside a history entry.
type PerformedExercise struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Sets []PerformedSet `json:"sets"`
}

// WorkoutHistory is an append-only record of what was actually performed in
// a session, distinct from the editable Workout plan. It is not derived
// automatically from workout completion; the two logs are maintained
// independently.
type WorkoutHistory struct {
	ID        string              `json:"id"`
	WorkoutID string              `json:"workoutId"`
	ClientID  string              `json:"clientId"`
	Date      time.Time           `json:"date"`
	Exercises []PerformedExercise `json:"exercises"`
	Notes     string              `json:"notes,omitempty"`
	Rating    *int                `json:"rating,omitempty"`
	Completed bool                `json:"completed"`
}

// ExerciseProgress is a date-aligned series of max-weight sets for one
// exercise, oldest first.
type ExerciseProgress struct {
	Dates   []time.Time `json:"dates"`
	Weights []float64   `json:"weights"`
	Reps    []int       `json:"reps"`
}

// ExerciseCount is a tallied exercise name for frequency rankings.
type ExerciseCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
