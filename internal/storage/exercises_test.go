package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/meltforce/liftstrong/internal/models"
)

func TestPopulateDefaultExercisesIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.PopulateDefaultExercises(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := db.PopulateDefaultExercises(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	exercises, err := db.FetchAllExercises(ctx)
	if err != nil {
		t.Fatalf("listing exercises: %v", err)
	}
	if len(exercises) != 14 {
		t.Errorf("catalog size = %d, want 14", len(exercises))
	}
	for i := 1; i < len(exercises); i++ {
		if exercises[i-1].Name > exercises[i].Name {
			t.Errorf("catalog not sorted by name: %q before %q", exercises[i-1].Name, exercises[i].Name)
		}
	}
}

func TestPopulateDefaultExercisesSkipsNonEmptyCatalog(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	seedExercise(t, db, "My Custom Lift")
	if err := db.PopulateDefaultExercises(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	exercises, err := db.FetchAllExercises(ctx)
	if err != nil {
		t.Fatalf("listing exercises: %v", err)
	}
	if len(exercises) != 1 {
		t.Errorf("catalog size = %d, want 1 (seed must not run over existing rows)", len(exercises))
	}
}

func TestSearchExercises(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	if err := db.PopulateDefaultExercises(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"press", []string{"Barbell Bench Press", "Dumbbell Bench Press", "Leg Press", "Overhead Press"}},
		{"BENCH", []string{"Barbell Bench Press", "Dumbbell Bench Press"}},
		{"no such exercise", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := db.SearchExercises(ctx, tt.query)
			if err != nil {
				t.Fatalf("search %q: %v", tt.query, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("search %q returned %d results, want %d", tt.query, len(got), len(tt.want))
			}
			for i, e := range got {
				if e.Name != tt.want[i] {
					t.Errorf("result[%d] = %q, want %q", i, e.Name, tt.want[i])
				}
			}
		})
	}
}

func TestFetchExercisesByMuscleGroupAndEquipment(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	if err := db.PopulateDefaultExercises(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	chest, err := db.FetchExercisesByMuscleGroup(ctx, "Chest")
	if err != nil {
		t.Fatalf("by muscle group: %v", err)
	}
	if len(chest) == 0 {
		t.Fatal("no chest exercises in default catalog")
	}
	for _, e := range chest {
		if !containsFold(e.MuscleGroups, "Chest") {
			t.Errorf("%q muscle groups %q do not mention Chest", e.Name, e.MuscleGroups)
		}
	}

	barbell, err := db.FetchExercisesByEquipment(ctx, "Barbell")
	if err != nil {
		t.Fatalf("by equipment: %v", err)
	}
	if len(barbell) == 0 {
		t.Fatal("no barbell exercises in default catalog")
	}
	for _, e := range barbell {
		if !containsFold(e.Equipment, "Barbell") {
			t.Errorf("%q equipment %q does not mention Barbell", e.Name, e.Equipment)
		}
	}
}

func TestInsertExerciseValidation(t *testing.T) {
	db := openTestDB(t)

	_, err := db.InsertExercise(context.Background(), models.Exercise{
		Name: "", MuscleGroups: "Chest", Equipment: "Barbell", Difficulty: models.DifficultyBeginner,
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestDeleteExerciseCascades(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	userID := seedUser(t, db)
	exerciseID := seedExercise(t, db, "Barbell Row")

	workoutID, err := db.CreateWorkout(ctx, userID, "Pull Day", date(2026, time.August, 20), nil)
	if err != nil {
		t.Fatalf("creating workout: %v", err)
	}
	weID, err := db.AddExerciseToWorkout(ctx, workoutID, exerciseID, 1, nil)
	if err != nil {
		t.Fatalf("adding workout exercise: %v", err)
	}
	if _, err := db.AddSetToWorkoutExercise(ctx, weID, 135, 8, nil, nil, nil); err != nil {
		t.Fatalf("adding set: %v", err)
	}

	templateID, err := db.CreateWorkoutTemplate(ctx, userID, "Pull Template", nil)
	if err != nil {
		t.Fatalf("creating template: %v", err)
	}
	if _, err := db.AddExerciseToTemplate(ctx, templateID, exerciseID, 1); err != nil {
		t.Fatalf("adding template exercise: %v", err)
	}

	if err := db.DeleteExerciseByID(ctx, exerciseID); err != nil {
		t.Fatalf("deleting exercise: %v", err)
	}

	wes, err := db.GetWorkoutExercisesForWorkout(ctx, workoutID)
	if err != nil {
		t.Fatalf("listing workout exercises: %v", err)
	}
	if len(wes) != 0 {
		t.Errorf("workout exercises remaining = %d, want 0", len(wes))
	}
	sets, err := db.GetWorkoutSetsForWorkoutExercise(ctx, weID)
	if err != nil {
		t.Fatalf("listing sets: %v", err)
	}
	if len(sets) != 0 {
		t.Errorf("sets remaining = %d, want 0", len(sets))
	}
	tes, err := db.GetTemplateExercisesForTemplate(ctx, templateID)
	if err != nil {
		t.Fatalf("listing template exercises: %v", err)
	}
	if len(tes) != 0 {
		t.Errorf("template exercises remaining = %d, want 0", len(tes))
	}

	// Parents survive the cascade.
	if w, err := db.GetWorkoutByID(ctx, workoutID); err != nil || w == nil {
		t.Errorf("workout gone after exercise delete: %v %v", w, err)
	}
	if tpl, err := db.GetWorkoutTemplateByID(ctx, templateID); err != nil || tpl == nil {
		t.Errorf("template gone after exercise delete: %v %v", tpl, err)
	}
}
