package models

import "fmt"

// Difficulty grades an exercise for catalog filtering.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Exercise is a catalog entry. MuscleGroups and Equipment are comma-separated
// tag lists; catalog filters match them by substring. Seeded entries have
// IsCustom=false, user-authored ones true.
type Exercise struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	MuscleGroups string     `json:"muscle_groups"`
	Equipment    string     `json:"equipment"`
	Instructions string     `json:"instructions"`
	Difficulty   Difficulty `json:"difficulty"`
	IsCustom     bool       `json:"is_custom"`
}

// Validate checks field constraints before the record is persisted.
func (e Exercise) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("exercise name must not be empty")
	}
	switch e.Difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
	default:
		return fmt.Errorf("unknown difficulty %q", e.Difficulty)
	}
	return nil
}
