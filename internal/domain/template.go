package domain

import "time"

// WorkoutTemplate is a reusable ordered list of planned exercises,
// optionally tagged to a weekday. UpdatedAt is refreshed on every mutation.
type WorkoutTemplate struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Exercises   []PlannedExercise `json:"exercises"`
	DayOfWeek   DayOfWeek         `json:"dayOfWeek,omitempty"`
	IsPublic    bool              `json:"isPublic"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// RecurringSchedule binds a client and a template to a set of weekdays
// within a date range. It is a rule, not materialized instances; concrete
// ScheduledWorkouts are created only by explicit materialization.
//
// ClientID and TemplateID are weak back-references: they are looked up by
// id and must tolerate dangling targets.
type RecurringSchedule struct {
	ID         string      `json:"id"`
	ClientID   string      `json:"clientId"`
	TemplateID string      `json:"templateId"`
	DaysOfWeek []DayOfWeek `json:"daysOfWeek"`
	StartDate  time.Time   `json:"startDate"`
	EndDate    *time.Time  `json:"endDate,omitempty"`
	Active     bool        `json:"active"`
}
