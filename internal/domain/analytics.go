package domain

import "time"

// ProgressPoint is one entry of the progress-over-time series. The weight
// and body-fat values are the client's current snapshot at computation
// time, not historical per-entry values; this mirrors the product's
// behavior and is a known fidelity limitation, not a bug.
type ProgressPoint struct {
	Date    time.Time `json:"date"`
	Weight  *float64  `json:"weight,omitempty"`
	BodyFat *float64  `json:"bodyFat,omitempty"`
}

// ExerciseFrequency is a tallied exercise id for frequency rankings.
type ExerciseFrequency struct {
	ExerciseID string `json:"exerciseId"`
	Count      int    `json:"count"`
}

// NutritionAverages are per-macro arithmetic means across all nutrition
// entries, rounded to the nearest integer. All zero when no entries exist.
type NutritionAverages struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// ClientAnalytics is the derived view over a client's owned logs.
type ClientAnalytics struct {
	WorkoutCompletionRate float64             `json:"workoutCompletionRate"`
	AverageAttendanceRate float64             `json:"averageAttendanceRate"`
	ProgressOverTime      []ProgressPoint     `json:"progressOverTime"`
	MostFrequentExercises []ExerciseFrequency `json:"mostFrequentExercises"`
	NutritionAverages     NutritionAverages   `json:"nutritionAverages"`
}
