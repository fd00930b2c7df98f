package storage

import (
	"context"
	"fmt"

	"github.com/meltforce/liftstrong/internal/models"
)

const (
	templateColumns         = `id, user_id, name, description`
	templateExerciseColumns = `id, template_id, exercise_id, position`
	templateSetColumns      = `id, template_exercise_id, weight, reps, rest_time`
)

// GetWorkoutTemplateByID retrieves a template, or nil if the id does not
// resolve.
func (db *DB) GetWorkoutTemplateByID(ctx context.Context, id int64) (*models.WorkoutTemplate, error) {
	row := db.sqldb.QueryRowContext(ctx,
		`SELECT `+templateColumns+` FROM workout_templates WHERE id = ?`, id)
	var t models.WorkoutTemplate
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Description)
	if err != nil {
		if mapStoreErr(err) == ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("querying template: %w", err)
	}
	return &t, nil
}

// FetchTemplatesForUser retrieves a user's templates ordered by name.
func (db *DB) FetchTemplatesForUser(ctx context.Context, userID int64) ([]models.WorkoutTemplate, error) {
	rows, err := db.sqldb.QueryContext(ctx,
		`SELECT `+templateColumns+` FROM workout_templates WHERE user_id = ? ORDER BY name ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutTemplate
	for rows.Next() {
		var t models.WorkoutTemplate
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// WatchTemplatesForUser is the live-query variant of FetchTemplatesForUser.
func (db *DB) WatchTemplatesForUser(userID int64) *Subscription[models.WorkoutTemplate] {
	return watch(db, []string{tableWorkoutTemplates}, func(ctx context.Context) ([]models.WorkoutTemplate, error) {
		return db.FetchTemplatesForUser(ctx, userID)
	})
}

// CreateWorkoutTemplate creates a template and returns the assigned id.
func (db *DB) CreateWorkoutTemplate(ctx context.Context, userID int64, name string, description *string) (int64, error) {
	t := models.WorkoutTemplate{UserID: userID, Name: name, Description: description}
	if err := t.Validate(); err != nil {
		return 0, invalid(err)
	}
	res, err := db.sqldb.ExecContext(ctx,
		`INSERT INTO workout_templates (user_id, name, description) VALUES (?, ?, ?)`,
		t.UserID, t.Name, t.Description)
	if err != nil {
		return 0, fmt.Errorf("inserting template: %w", mapStoreErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("inserting template: %w", err)
	}
	db.notifier.broadcast(tableWorkoutTemplates)
	return id, nil
}

// AddExerciseToTemplate appends an exercise prescription at the given
// position. Position conventions match AddExerciseToWorkout.
func (db *DB) AddExerciseToTemplate(ctx context.Context, templateID, exerciseID int64, position int) (int64, error) {
	te := models.TemplateExercise{TemplateID: templateID, ExerciseID: exerciseID, Position: position}
	if err := te.Validate(); err != nil {
		return 0, invalid(err)
	}
	res, err := db.sqldb.ExecContext(ctx,
		`INSERT INTO template_exercises (template_id, exercise_id, position) VALUES (?, ?, ?)`,
		te.TemplateID, te.ExerciseID, te.Position)
	if err != nil {
		return 0, fmt.Errorf("inserting template exercise: %w", mapStoreErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("inserting template exercise: %w", err)
	}
	db.notifier.broadcast(tableTemplateExercises)
	return id, nil
}

// AddSetToTemplateExercise adds a set prescription. A nil weight means the
// load is decided at workout time.
func (db *DB) AddSetToTemplateExercise(ctx context.Context, templateExerciseID int64, weight *float64, reps int, restTime *int) (int64, error) {
	ts := models.TemplateSet{TemplateExerciseID: templateExerciseID, Weight: weight, Reps: reps, RestTime: restTime}
	if err := ts.Validate(); err != nil {
		return 0, invalid(err)
	}
	res, err := db.sqldb.ExecContext(ctx,
		`INSERT INTO template_sets (template_exercise_id, weight, reps, rest_time) VALUES (?, ?, ?, ?)`,
		ts.TemplateExerciseID, ts.Weight, ts.Reps, ts.RestTime)
	if err != nil {
		return 0, fmt.Errorf("inserting template set: %w", mapStoreErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("inserting template set: %w", err)
	}
	db.notifier.broadcast(tableTemplateSets)
	return id, nil
}

// GetTemplateExercisesForTemplate retrieves a template's exercises ordered by
// position.
func (db *DB) GetTemplateExercisesForTemplate(ctx context.Context, templateID int64) ([]models.TemplateExercise, error) {
	rows, err := db.sqldb.QueryContext(ctx,
		`SELECT `+templateExerciseColumns+` FROM template_exercises WHERE template_id = ? ORDER BY position ASC`,
		templateID)
	if err != nil {
		return nil, fmt.Errorf("querying template exercises: %w", err)
	}
	defer rows.Close()

	var result []models.TemplateExercise
	for rows.Next() {
		var te models.TemplateExercise
		if err := rows.Scan(&te.ID, &te.TemplateID, &te.ExerciseID, &te.Position); err != nil {
			return nil, fmt.Errorf("scanning template exercise: %w", err)
		}
		result = append(result, te)
	}
	return result, rows.Err()
}

// GetTemplateSetsForTemplateExercise retrieves set prescriptions in insertion
// order.
func (db *DB) GetTemplateSetsForTemplateExercise(ctx context.Context, templateExerciseID int64) ([]models.TemplateSet, error) {
	rows, err := db.sqldb.QueryContext(ctx,
		`SELECT `+templateSetColumns+` FROM template_sets WHERE template_exercise_id = ? ORDER BY id ASC`,
		templateExerciseID)
	if err != nil {
		return nil, fmt.Errorf("querying template sets: %w", err)
	}
	defer rows.Close()

	var result []models.TemplateSet
	for rows.Next() {
		var ts models.TemplateSet
		if err := rows.Scan(&ts.ID, &ts.TemplateExerciseID, &ts.Weight, &ts.Reps, &ts.RestTime); err != nil {
			return nil, fmt.Errorf("scanning template set: %w", err)
		}
		result = append(result, ts)
	}
	return result, rows.Err()
}

// GetExerciseCountForTemplate counts the template's exercise prescriptions.
func (db *DB) GetExerciseCountForTemplate(ctx context.Context, templateID int64) (int, error) {
	var count int
	err := db.sqldb.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM template_exercises WHERE template_id = ?`, templateID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting template exercises: %w", err)
	}
	return count, nil
}

// UpdateWorkoutTemplate replaces the full template record.
func (db *DB) UpdateWorkoutTemplate(ctx context.Context, t models.WorkoutTemplate) error {
	if err := t.Validate(); err != nil {
		return invalid(err)
	}
	res, err := db.sqldb.ExecContext(ctx,
		`UPDATE workout_templates SET user_id = ?, name = ?, description = ? WHERE id = ?`,
		t.UserID, t.Name, t.Description, t.ID)
	if err != nil {
		return fmt.Errorf("updating template: %w", mapStoreErr(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	db.notifier.broadcast(tableWorkoutTemplates)
	return nil
}

// DeleteWorkoutTemplateByID deletes a template; the store cascades to its
// exercises and their set prescriptions.
func (db *DB) DeleteWorkoutTemplateByID(ctx context.Context, id int64) error {
	_, err := db.sqldb.ExecContext(ctx, `DELETE FROM workout_templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting template: %w", mapStoreErr(err))
	}
	db.notifier.broadcast(tableWorkoutTemplates, tableTemplateExercises, tableTemplateSets)
	return nil
}

// DeleteTemplateExerciseByID deletes a template exercise; the store cascades
// to its set prescriptions.
func (db *DB) DeleteTemplateExerciseByID(ctx context.Context, id int64) error {
	_, err := db.sqldb.ExecContext(ctx, `DELETE FROM template_exercises WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting template exercise: %w", mapStoreErr(err))
	}
	db.notifier.broadcast(tableTemplateExercises, tableTemplateSets)
	return nil
}

// DeleteTemplateSetByID deletes a single set prescription.
func (db *DB) DeleteTemplateSetByID(ctx context.Context, id int64) error {
	_, err := db.sqldb.ExecContext(ctx, `DELETE FROM template_sets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting template set: %w", mapStoreErr(err))
	}
	db.notifier.broadcast(tableTemplateSets)
	return nil
}
