package storage

import (
	"context"
	"errors"
	"testing"
)

func TestFetchTemplatesForUserOrder(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	userID := seedUser(t, db)
	otherID := seedUser(t, db)

	for _, name := range []string{"Push Day", "Leg Day", "Arms"} {
		if _, err := db.CreateWorkoutTemplate(ctx, userID, name, nil); err != nil {
			t.Fatalf("creating %q: %v", name, err)
		}
	}
	if _, err := db.CreateWorkoutTemplate(ctx, otherID, "Not Yours", nil); err != nil {
		t.Fatalf("creating other-user template: %v", err)
	}

	templates, err := db.FetchTemplatesForUser(ctx, userID)
	if err != nil {
		t.Fatalf("fetching templates: %v", err)
	}
	want := []string{"Arms", "Leg Day", "Push Day"}
	if len(templates) != len(want) {
		t.Fatalf("got %d templates, want %d", len(templates), len(want))
	}
	for i, tpl := range templates {
		if tpl.Name != want[i] {
			t.Errorf("templates[%d] = %q, want %q", i, tpl.Name, want[i])
		}
	}
}

func TestCreateWorkoutTemplateValidation(t *testing.T) {
	db := openTestDB(t)
	userID := seedUser(t, db)

	if _, err := db.CreateWorkoutTemplate(context.Background(), userID, "", nil); !errors.Is(err, ErrValidation) {
		t.Errorf("empty name: err = %v, want ErrValidation", err)
	}
	if _, err := db.CreateWorkoutTemplate(context.Background(), 9999, "Orphan", nil); !errors.Is(err, ErrIntegrity) {
		t.Errorf("unknown user: err = %v, want ErrIntegrity", err)
	}
}

func TestAddExerciseToTemplateDuplicatePosition(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	userID := seedUser(t, db)
	exerciseID := seedExercise(t, db, "Lat Pulldown")

	templateID, err := db.CreateWorkoutTemplate(ctx, userID, "Back Day", nil)
	if err != nil {
		t.Fatalf("creating template: %v", err)
	}
	if _, err := db.AddExerciseToTemplate(ctx, templateID, exerciseID, 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := db.AddExerciseToTemplate(ctx, templateID, exerciseID, 1); !errors.Is(err, ErrValidation) {
		t.Errorf("duplicate position: err = %v, want ErrValidation", err)
	}
}

func TestGetExerciseCountForTemplate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	userID := seedUser(t, db)

	templateID, err := db.CreateWorkoutTemplate(ctx, userID, "Full Body", nil)
	if err != nil {
		t.Fatalf("creating template: %v", err)
	}

	count, err := db.GetExerciseCountForTemplate(ctx, templateID)
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}

	for i, name := range []string{"Barbell Squat", "Barbell Row", "Overhead Press"} {
		exID := seedExercise(t, db, name)
		if _, err := db.AddExerciseToTemplate(ctx, templateID, exID, i+1); err != nil {
			t.Fatalf("adding %q: %v", name, err)
		}
	}

	count, err = db.GetExerciseCountForTemplate(ctx, templateID)
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestDeleteWorkoutTemplateCascades(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	userID := seedUser(t, db)
	exerciseID := seedExercise(t, db, "Barbell Curl")

	templateID, err := db.CreateWorkoutTemplate(ctx, userID, "Arms", nil)
	if err != nil {
		t.Fatalf("creating template: %v", err)
	}
	teID, err := db.AddExerciseToTemplate(ctx, templateID, exerciseID, 1)
	if err != nil {
		t.Fatalf("adding template exercise: %v", err)
	}
	if _, err := db.AddSetToTemplateExercise(ctx, teID, ptr(65.0), 10, nil); err != nil {
		t.Fatalf("adding prescription: %v", err)
	}

	if err := db.DeleteWorkoutTemplateByID(ctx, templateID); err != nil {
		t.Fatalf("deleting template: %v", err)
	}

	if tpl, err := db.GetWorkoutTemplateByID(ctx, templateID); err != nil || tpl != nil {
		t.Errorf("template after delete = %v, %v; want nil, nil", tpl, err)
	}
	tes, err := db.GetTemplateExercisesForTemplate(ctx, templateID)
	if err != nil {
		t.Fatalf("listing template exercises: %v", err)
	}
	if len(tes) != 0 {
		t.Errorf("template exercises remaining = %d, want 0", len(tes))
	}
	sets, err := db.GetTemplateSetsForTemplateExercise(ctx, teID)
	if err != nil {
		t.Fatalf("listing prescriptions: %v", err)
	}
	if len(sets) != 0 {
		t.Errorf("prescriptions remaining = %d, want 0", len(sets))
	}
}
