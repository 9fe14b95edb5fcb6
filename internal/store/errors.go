package store

import "errors"

// Not-found sentinels. One policy across all stores: a missing target is
// reported as an error value, never a panic. Dangling cross-store
// references (a schedule pointing at a deleted client or template) are NOT
// errors; lookups simply come back empty and the caller shows a fallback.
var (
	ErrClientNotFound   = errors.New("client not found")
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrHistoryNotFound  = errors.New("history entry not found")
)

// ValidationError carries the user-facing message of a rejected input. The
// UI displays Message verbatim; no partial writes happen on a validation
// failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(msg string) error { return &ValidationError{Message: msg} }
