package models

import "testing"

func ptr[T any](v T) *T { return &v }

func TestExerciseValidate(t *testing.T) {
	tests := []struct {
		name    string
		e       Exercise
		wantErr bool
	}{
		{"valid", Exercise{Name: "Deadlift", Difficulty: DifficultyAdvanced}, false},
		{"empty name", Exercise{Difficulty: DifficultyBeginner}, true},
		{"unknown difficulty", Exercise{Name: "Deadlift", Difficulty: "Expert"}, true},
		{"empty difficulty", Exercise{Name: "Deadlift"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.e.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		u       User
		wantErr bool
	}{
		{"valid lbs", User{Name: "A", WeightUnit: WeightUnitPounds}, false},
		{"valid kg", User{Name: "A", WeightUnit: WeightUnitKilograms, DefaultRestTime: 90}, false},
		{"empty name", User{WeightUnit: WeightUnitPounds}, true},
		{"bad unit", User{Name: "A", WeightUnit: "stone"}, true},
		{"negative rest", User{Name: "A", WeightUnit: WeightUnitPounds, DefaultRestTime: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.u.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWorkoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		w       Workout
		wantErr bool
	}{
		{"valid", Workout{Name: "Leg Day"}, false},
		{"empty name", Workout{}, true},
		{"negative duration", Workout{Name: "Leg Day", Duration: -5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.w.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWorkoutExerciseValidate(t *testing.T) {
	if err := (WorkoutExercise{Position: 1}).Validate(); err != nil {
		t.Errorf("position 1: %v", err)
	}
	if err := (WorkoutExercise{Position: 0}).Validate(); err == nil {
		t.Error("position 0 accepted")
	}
}

func TestWorkoutSetValidate(t *testing.T) {
	tests := []struct {
		name    string
		ws      WorkoutSet
		wantErr bool
	}{
		{"valid", WorkoutSet{Weight: 135, Reps: 5}, false},
		{"zero weight", WorkoutSet{Reps: 10}, false},
		{"negative weight", WorkoutSet{Weight: -1, Reps: 5}, true},
		{"negative reps", WorkoutSet{Weight: 135, Reps: -1}, true},
		{"negative rest", WorkoutSet{Weight: 135, Reps: 5, RestTime: ptr(-1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.ws.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTemplateSetValidate(t *testing.T) {
	tests := []struct {
		name    string
		ts      TemplateSet
		wantErr bool
	}{
		{"nil weight", TemplateSet{Reps: 8}, false},
		{"explicit weight", TemplateSet{Weight: ptr(135.0), Reps: 5}, false},
		{"negative weight", TemplateSet{Weight: ptr(-1.0), Reps: 5}, true},
		{"negative reps", TemplateSet{Reps: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.ts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
