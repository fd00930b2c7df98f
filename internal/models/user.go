package models

import (
	"fmt"
	"time"
)

// WeightUnit is the user's preferred display unit for loads.
type WeightUnit string

const (
	WeightUnitPounds    WeightUnit = "lbs"
	WeightUnitKilograms WeightUnit = "kg"
)

// User is a local profile. Exactly one default user is guaranteed to exist
// after bootstrap; the first user by creation order is the canonical one.
type User struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	WeightUnit      WeightUnit `json:"weight_unit"`
	DefaultRestTime int        `json:"default_rest_time"` // seconds
	CreatedAt       time.Time  `json:"created_at"`
}

// Validate checks field constraints before the record is persisted.
func (u User) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("user name must not be empty")
	}
	if u.WeightUnit != WeightUnitPounds && u.WeightUnit != WeightUnitKilograms {
		return fmt.Errorf("weight unit must be %q or %q", WeightUnitPounds, WeightUnitKilograms)
	}
	if u.DefaultRestTime < 0 {
		return fmt.Errorf("default rest time must not be negative")
	}
	return nil
}
