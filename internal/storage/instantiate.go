package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CreateWorkoutFromTemplate materializes a template into a new live workout
// for the user: a workout named after the template, timestamped now, with one
// workout exercise per template exercise (same position, same exercise) and
// one workout set per set prescription. A missing prescribed weight
// materializes as 0; RPE and notes are not carried, as templates hold none.
//
// The whole structure is written in one transaction: if any step fails the
// caller observes no partial workout. Returns the new workout's id.
func (db *DB) CreateWorkoutFromTemplate(ctx context.Context, templateID, userID int64) (int64, error) {
	tx, err := db.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var name string
	err = tx.QueryRowContext(ctx,
		`SELECT name FROM workout_templates WHERE id = ?`, templateID).Scan(&name)
	if err != nil {
		if mapStoreErr(err) == ErrNotFound {
			return 0, fmt.Errorf("template %d: %w", templateID, ErrNotFound)
		}
		return 0, fmt.Errorf("querying template: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO workouts (user_id, name, date, duration) VALUES (?, ?, ?, 0)`,
		userID, name, time.Now())
	if err != nil {
		return 0, fmt.Errorf("inserting workout: %w", mapStoreErr(err))
	}
	workoutID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("inserting workout: %w", err)
	}

	prescriptions, err := readTemplateExercises(ctx, tx, templateID)
	if err != nil {
		return 0, err
	}

	for _, p := range prescriptions {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO workout_exercises (workout_id, exercise_id, position) VALUES (?, ?, ?)`,
			workoutID, p.exerciseID, p.position)
		if err != nil {
			return 0, fmt.Errorf("inserting workout exercise: %w", mapStoreErr(err))
		}
		workoutExerciseID, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("inserting workout exercise: %w", err)
		}

		if err := copyTemplateSets(ctx, tx, p.id, workoutExerciseID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing workout from template: %w", err)
	}
	db.notifier.broadcast(tableWorkouts, tableWorkoutExercises, tableWorkoutSets)
	return workoutID, nil
}

type templatePrescription struct {
	id         int64
	exerciseID int64
	position   int
}

func readTemplateExercises(ctx context.Context, tx *sql.Tx, templateID int64) ([]templatePrescription, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, exercise_id, position FROM template_exercises WHERE template_id = ? ORDER BY position ASC`,
		templateID)
	if err != nil {
		return nil, fmt.Errorf("querying template exercises: %w", err)
	}
	defer rows.Close()

	var result []templatePrescription
	for rows.Next() {
		var p templatePrescription
		if err := rows.Scan(&p.id, &p.exerciseID, &p.position); err != nil {
			return nil, fmt.Errorf("scanning template exercise: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// copyTemplateSets expands one template exercise's prescriptions into workout
// sets, coalescing a missing weight to 0.
func copyTemplateSets(ctx context.Context, tx *sql.Tx, templateExerciseID, workoutExerciseID int64) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT weight, reps, rest_time FROM template_sets WHERE template_exercise_id = ? ORDER BY id ASC`,
		templateExerciseID)
	if err != nil {
		return fmt.Errorf("querying template sets: %w", err)
	}
	type setSpec struct {
		weight   *float64
		reps     int
		restTime *int
	}
	var specs []setSpec
	for rows.Next() {
		var s setSpec
		if err := rows.Scan(&s.weight, &s.reps, &s.restTime); err != nil {
			rows.Close()
			return fmt.Errorf("scanning template set: %w", err)
		}
		specs = append(specs, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading template sets: %w", err)
	}

	for _, s := range specs {
		weight := 0.0
		if s.weight != nil {
			weight = *s.weight
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO workout_sets (workout_exercise_id, weight, reps, rest_time) VALUES (?, ?, ?, ?)`,
			workoutExerciseID, weight, s.reps, s.restTime)
		if err != nil {
			return fmt.Errorf("inserting workout set: %w", mapStoreErr(err))
		}
	}
	return nil
}
