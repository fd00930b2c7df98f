package models

import "fmt"

// WorkoutTemplate is a reusable, prescriptive plan. Templates carry
// prescriptions, not performance data.
type WorkoutTemplate struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Validate checks field constraints before the record is persisted.
func (t WorkoutTemplate) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("template name must not be empty")
	}
	return nil
}

// TemplateExercise mirrors WorkoutExercise but carries no notes; its set
// prescriptions live in TemplateSet rows.
type TemplateExercise struct {
	ID         int64 `json:"id"`
	TemplateID int64 `json:"template_id"`
	ExerciseID int64 `json:"exercise_id"`
	Position   int   `json:"position"`
}

// Validate checks field constraints before the record is persisted.
func (te TemplateExercise) Validate() error {
	if te.Position < 1 {
		return fmt.Errorf("position must be at least 1")
	}
	return nil
}

// TemplateSet is a set prescription. A nil Weight means "decide at workout
// time" and materializes as 0 when the template is instantiated.
type TemplateSet struct {
	ID                 int64    `json:"id"`
	TemplateExerciseID int64    `json:"template_exercise_id"`
	Weight             *float64 `json:"weight,omitempty"`
	Reps               int      `json:"reps"`
	RestTime           *int     `json:"rest_time,omitempty"` // seconds
}

// Validate checks field constraints before the record is persisted.
func (ts TemplateSet) Validate() error {
	if ts.Weight != nil && *ts.Weight < 0 {
		return fmt.Errorf("weight must not be negative")
	}
	if ts.Reps < 0 {
		return fmt.Errorf("reps must not be negative")
	}
	if ts.RestTime != nil && *ts.RestTime < 0 {
		return fmt.Errorf("rest time must not be negative")
	}
	return nil
}
