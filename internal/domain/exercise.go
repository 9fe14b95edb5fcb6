package domain

// ExerciseType classifies an exercise in the catalog.
type ExerciseType string

const (
	ExerciseStrength    ExerciseType = "strength"
	ExerciseCardio      ExerciseType = "cardio"
	ExerciseFlexibility ExerciseType = "flexibility"
)

// DefaultReps carries the suggested starting parameters of an exercise.
// Every field is optional; absent fields fall back to catalog defaults when
// the exercise is instantiated into a plan.
type DefaultReps struct {
	Sets     *int     `json:"sets,omitempty"`
	Reps     *int     `json:"reps,omitempty"`
	Duration *int     `json:"duration,omitempty"` // seconds
	Distance *float64 `json:"distance,omitempty"` // meters
}

// Exercise is a single definition in the exercise catalog. Built-in
// exercises are seeded read-only; custom ones are created by the coach and
// stored separately, unioned with built-ins at read time.
type Exercise struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        ExerciseType `json:"type"`
	CategoryID  string       `json:"categoryId"`
	DefaultReps *DefaultReps `json:"defaultReps,omitempty"`
}

// ExerciseCategory groups catalog exercises for the UI palette.
type ExerciseCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlannedExercise is one exercise's planned parameters within a template or
// workout. The embedded Exercise is a snapshot copied by value, never a live
// reference: mutating a PlannedExercise affects neither the catalog entry
// nor other instances created from it.
//
// Reps and Weight are pointers because a continued session clears the
// actual-performance fields while keeping the planned structure.
type PlannedExercise struct {
	Exercise  Exercise `json:"exercise"`
	Sets      int      `json:"sets"`
	Reps      *int     `json:"reps,omitempty"`
	Duration  int      `json:"duration"`
	Distance  float64  `json:"distance"`
	Weight    *float64 `json:"weight,omitempty"`
	Notes     string   `json:"notes"`
	Completed bool     `json:"completed"`
}
