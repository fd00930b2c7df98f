package models

import (
	"fmt"
	"time"
)

// Workout is a logged training session. Duration stays 0 until the session is
// completed.
type Workout struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"` // minutes
	Notes    *string   `json:"notes,omitempty"`
}

// Validate checks field constraints before the record is persisted.
func (w Workout) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("workout name must not be empty")
	}
	if w.Duration < 0 {
		return fmt.Errorf("workout duration must not be negative")
	}
	return nil
}

// WorkoutExercise is one exercise performed within a workout. Position is the
// 1-based sort key, unique among the workout's exercises.
type WorkoutExercise struct {
	ID         int64   `json:"id"`
	WorkoutID  int64   `json:"workout_id"`
	ExerciseID int64   `json:"exercise_id"`
	Position   int     `json:"position"`
	Notes      *string `json:"notes,omitempty"`
}

// Validate checks field constraints before the record is persisted.
func (we WorkoutExercise) Validate() error {
	if we.Position < 1 {
		return fmt.Errorf("position must be at least 1")
	}
	return nil
}

// WorkoutSet is one recorded performance (weight x reps) within a workout
// exercise. RPE is conventionally 1-10 but unconstrained in storage.
type WorkoutSet struct {
	ID                int64   `json:"id"`
	WorkoutExerciseID int64   `json:"workout_exercise_id"`
	Weight            float64 `json:"weight"`
	Reps              int     `json:"reps"`
	RPE               *int    `json:"rpe,omitempty"`
	RestTime          *int    `json:"rest_time,omitempty"` // seconds
	Notes             *string `json:"notes,omitempty"`
}

// Validate checks field constraints before the record is persisted.
func (ws WorkoutSet) Validate() error {
	if ws.Weight < 0 {
		return fmt.Errorf("weight must not be negative")
	}
	if ws.Reps < 0 {
		return fmt.Errorf("reps must not be negative")
	}
	if ws.RestTime != nil && *ws.RestTime < 0 {
		return fmt.Errorf("rest time must not be negative")
	}
	return nil
}
