package domain

import "time"

// AttendanceStatus is the outcome of a booked session.
type AttendanceStatus string

const (
	AttendancePresent   AttendanceStatus = "present"
	AttendanceAbsent    AttendanceStatus = "absent"
	AttendanceCancelled AttendanceStatus = "cancelled"
)

// Measurements are optional body measurements in centimeters.
type Measurements struct {
	Chest  *float64 `json:"chest,omitempty"`
	Waist  *float64 `json:"waist,omitempty"`
	Hips   *float64 `json:"hips,omitempty"`
	Arms   *float64 `json:"arms,omitempty"`
	Thighs *float64 `json:"thighs,omitempty"`
}

// ClientProgress is the client's current snapshot of body metrics.
// LastUpdated is refreshed on every progress write, whichever fields change.
type ClientProgress struct {
	Weight       *float64      `json:"weight,omitempty"`
	BodyFat      *float64      `json:"bodyFat,omitempty"`
	Measurements *Measurements `json:"measurements,omitempty"`
	LastUpdated  time.Time     `json:"lastUpdated"`
}

// ExercisePerformance is one exercise's recorded result inside a
// client-owned workout history record.
type ExercisePerformance struct {
	ExerciseID string  `json:"exerciseId"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	Notes      string  `json:"notes,omitempty"`
}

// ClientWorkoutRecord is an entry in the client-owned workout log. It is
// maintained independently of the history store's WorkoutHistory entries;
// the two logs are deliberately separate.
type ClientWorkoutRecord struct {
	WorkoutID   string                `json:"workoutId"`
	Date        time.Time             `json:"date"`
	Completed   bool                  `json:"completed"`
	Notes       string                `json:"notes,omitempty"`
	Performance []ExercisePerformance `json:"performance,omitempty"`
}

// AttendanceRecord is one attendance log entry.
type AttendanceRecord struct {
	Date   time.Time        `json:"date"`
	Status AttendanceStatus `json:"status"`
	Notes  string           `json:"notes,omitempty"`
}

// NutritionEntry is one nutrition log entry. Macro fields are optional so a
// partial log (say, calories only) averages correctly.
type NutritionEntry struct {
	Date     time.Time `json:"date"`
	Calories *float64  `json:"calories,omitempty"`
	Protein  *float64  `json:"protein,omitempty"`
	Carbs    *float64  `json:"carbs,omitempty"`
	Fat      *float64  `json:"fat,omitempty"`
	Notes    string    `json:"notes,omitempty"`
}

// Client is a coached client's full profile, including the nested progress,
// workout, attendance and nutrition logs the registry owns exclusively.
//
// Invariants: Email is unique across all clients (case-insensitive), Goals
// holds at least one non-empty entry, and JoinDate never changes after
// creation.
type Client struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Email          string                `json:"email"`
	Phone          string                `json:"phone,omitempty"`
	Goals          []string              `json:"goals"`
	Notes          string                `json:"notes"`
	JoinDate       time.Time             `json:"joinDate"`
	Progress       ClientProgress        `json:"progress"`
	WorkoutHistory []ClientWorkoutRecord `json:"workoutHistory"`
	Attendance     []AttendanceRecord    `json:"attendance"`
	Nutrition      []NutritionEntry      `json:"nutrition"`
}
