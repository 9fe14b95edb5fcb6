package store

import "coachdesk/coach-organizer/internal/domain"

// builtinCategories are the static exercise categories the UI palette
// groups by.
var builtinCategories = []domain.ExerciseCategory{
	{ID: "1", Name: "Upper Body"},
	{ID: "2", Name: "Lower Body"},
	{ID: "3", Name: "Core"},
	{ID: "4", Name: "Cardio"},
	{ID: "5", Name: "Flexibility"},
}

// builtinExercises ship with the binary and are never mutated or persisted.
var builtinExercises = []domain.Exercise{
	{
		ID:          "1",
		Name:        "Bench Press",
		Description: "A compound exercise that primarily targets the chest muscles",
		Type:        domain.ExerciseStrength,
		CategoryID:  "1",
		DefaultReps: &domain.DefaultReps{Sets: domain.Int(3), Reps: domain.Int(10)},
	},
	{
		ID:          "2",
		Name:        "Squats",
		Description: "A compound exercise that targets the lower body",
		Type:        domain.ExerciseStrength,
		CategoryID:  "2",
		DefaultReps: &domain.DefaultReps{Sets: domain.Int(3), Reps: domain.Int(12)},
	},
	{
		ID:          "3",
		Name:        "Running",
		Description: "A cardiovascular exercise that improves endurance",
		Type:        domain.ExerciseCardio,
		CategoryID:  "4",
		DefaultReps: &domain.DefaultReps{Duration: domain.Int(30), Distance: domain.Float64(5000)},
	},
	{
		ID:          "4",
		Name:        "Plank",
		Description: "An isometric core exercise that strengthens the abdominal muscles.",
		Type:        domain.ExerciseStrength,
		CategoryID:  "3",
		DefaultReps: &domain.DefaultReps{Sets: domain.Int(3), Duration: domain.Int(60)},
	},
	{
		ID:          "5",
		Name:        "Bicep Curls",
		Description: "An isolation exercise that targets the biceps.",
		Type:        domain.ExerciseStrength,
		CategoryID:  "1",
		DefaultReps: &domain.DefaultReps{Sets: domain.Int(3), Reps: domain.Int(12)},
	},
	{
		ID:          "6",
		Name:        "Calf Raises",
		Description: "An exercise that targets the calf muscles.",
		Type:        domain.ExerciseStrength,
		CategoryID:  "2",
		DefaultReps: &domain.DefaultReps{Sets: domain.Int(3), Reps: domain.Int(15)},
	},
	{
		ID:          "7",
		Name:        "Shoulder Press",
		Description: "An exercise that targets the deltoid muscles.",
		Type:        domain.ExerciseStrength,
		CategoryID:  "1",
		DefaultReps: &domain.DefaultReps{Sets: domain.Int(3), Reps: domain.Int(10)},
	},
	{
		ID:          "8",
		Name:        "Dynamic Stretching",
		Description: "A series of movements that prepare your muscles for exercise.",
		Type:        domain.ExerciseFlexibility,
		CategoryID:  "5",
		DefaultReps: &domain.DefaultReps{Sets: domain.Int(1), Duration: domain.Int(600)},
	},
}
