package storage

import (
	"context"
	"fmt"

	"github.com/meltforce/liftstrong/internal/models"
)

const exerciseColumns = `id, name, muscle_groups, equipment, instructions, difficulty, is_custom`

// GetExerciseByID retrieves an exercise, or nil if the id does not resolve.
func (db *DB) GetExerciseByID(ctx context.Context, id int64) (*models.Exercise, error) {
	row := db.sqldb.QueryRowContext(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE id = ?`, id)
	var e models.Exercise
	err := row.Scan(&e.ID, &e.Name, &e.MuscleGroups, &e.Equipment, &e.Instructions, &e.Difficulty, &e.IsCustom)
	if err != nil {
		if mapStoreErr(err) == ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("querying exercise: %w", err)
	}
	return &e, nil
}

// FetchAllExercises retrieves the whole catalog ordered by name.
func (db *DB) FetchAllExercises(ctx context.Context) ([]models.Exercise, error) {
	return db.queryExercises(ctx, `SELECT `+exerciseColumns+` FROM exercises ORDER BY name ASC`)
}

// FetchExercisesByMuscleGroup filters the catalog by substring match against
// the muscle-group tags.
func (db *DB) FetchExercisesByMuscleGroup(ctx context.Context, muscleGroup string) ([]models.Exercise, error) {
	return db.queryExercises(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE muscle_groups LIKE '%' || ? || '%' ORDER BY name ASC`,
		muscleGroup)
}

// FetchExercisesByEquipment filters the catalog by substring match against
// the equipment tags.
func (db *DB) FetchExercisesByEquipment(ctx context.Context, equipment string) ([]models.Exercise, error) {
	return db.queryExercises(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE equipment LIKE '%' || ? || '%' ORDER BY name ASC`,
		equipment)
}

// SearchExercises matches exercise names by case-insensitive substring.
func (db *DB) SearchExercises(ctx context.Context, query string) ([]models.Exercise, error) {
	return db.queryExercises(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE name LIKE '%' || ? || '%' ORDER BY name ASC`,
		query)
}

// WatchAllExercises is the live-query variant of FetchAllExercises.
func (db *DB) WatchAllExercises() *Subscription[models.Exercise] {
	return watch(db, []string{tableExercises}, db.FetchAllExercises)
}

// WatchExercisesByMuscleGroup is the live-query variant of FetchExercisesByMuscleGroup.
func (db *DB) WatchExercisesByMuscleGroup(muscleGroup string) *Subscription[models.Exercise] {
	return watch(db, []string{tableExercises}, func(ctx context.Context) ([]models.Exercise, error) {
		return db.FetchExercisesByMuscleGroup(ctx, muscleGroup)
	})
}

// WatchExercisesByEquipment is the live-query variant of FetchExercisesByEquipment.
func (db *DB) WatchExercisesByEquipment(equipment string) *Subscription[models.Exercise] {
	return watch(db, []string{tableExercises}, func(ctx context.Context) ([]models.Exercise, error) {
		return db.FetchExercisesByEquipment(ctx, equipment)
	})
}

// WatchSearchExercises is the live-query variant of SearchExercises.
func (db *DB) WatchSearchExercises(query string) *Subscription[models.Exercise] {
	return watch(db, []string{tableExercises}, func(ctx context.Context) ([]models.Exercise, error) {
		return db.SearchExercises(ctx, query)
	})
}

// InsertExercise inserts a catalog entry and returns the assigned id.
func (db *DB) InsertExercise(ctx context.Context, e models.Exercise) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, invalid(err)
	}
	res, err := db.sqldb.ExecContext(ctx,
		`INSERT INTO exercises (name, muscle_groups, equipment, instructions, difficulty, is_custom)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Name, e.MuscleGroups, e.Equipment, e.Instructions, e.Difficulty, e.IsCustom)
	if err != nil {
		return 0, fmt.Errorf("inserting exercise: %w", mapStoreErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("inserting exercise: %w", err)
	}
	db.notifier.broadcast(tableExercises)
	return id, nil
}

// InsertExercises batch-inserts catalog entries in one transaction and
// returns the assigned ids in input order.
func (db *DB) InsertExercises(ctx context.Context, exercises []models.Exercise) ([]int64, error) {
	for _, e := range exercises {
		if err := e.Validate(); err != nil {
			return nil, invalid(err)
		}
	}

	tx, err := db.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	ids := make([]int64, 0, len(exercises))
	for _, e := range exercises {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO exercises (name, muscle_groups, equipment, instructions, difficulty, is_custom)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			e.Name, e.MuscleGroups, e.Equipment, e.Instructions, e.Difficulty, e.IsCustom)
		if err != nil {
			return nil, fmt.Errorf("inserting exercise %q: %w", e.Name, mapStoreErr(err))
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("inserting exercise %q: %w", e.Name, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing exercises: %w", err)
	}
	db.notifier.broadcast(tableExercises)
	return ids, nil
}

// UpdateExercise replaces the full exercise record.
func (db *DB) UpdateExercise(ctx context.Context, e models.Exercise) error {
	if err := e.Validate(); err != nil {
		return invalid(err)
	}
	res, err := db.sqldb.ExecContext(ctx,
		`UPDATE exercises SET name = ?, muscle_groups = ?, equipment = ?, instructions = ?, difficulty = ?, is_custom = ?
		 WHERE id = ?`,
		e.Name, e.MuscleGroups, e.Equipment, e.Instructions, e.Difficulty, e.IsCustom, e.ID)
	if err != nil {
		return fmt.Errorf("updating exercise: %w", mapStoreErr(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	db.notifier.broadcast(tableExercises)
	return nil
}

// DeleteExerciseByID deletes a catalog entry; the store cascades to workout
// and template rows referencing it so nothing is left dangling.
func (db *DB) DeleteExerciseByID(ctx context.Context, id int64) error {
	_, err := db.sqldb.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting exercise: %w", mapStoreErr(err))
	}
	db.notifier.broadcast(tableExercises, tableWorkoutExercises, tableWorkoutSets,
		tableTemplateExercises, tableTemplateSets)
	return nil
}

// PopulateDefaultExercises seeds the catalog with the built-in exercise set.
// The seed runs only against an empty catalog; if any exercise exists the
// call is a no-op, so repeated bootstrap invocations are safe.
func (db *DB) PopulateDefaultExercises(ctx context.Context) error {
	var count int
	if err := db.sqldb.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&count); err != nil {
		return fmt.Errorf("counting exercises: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := db.InsertExercises(ctx, defaultExercises); err != nil {
		return fmt.Errorf("seeding default exercises: %w", err)
	}
	return nil
}

func (db *DB) queryExercises(ctx context.Context, query string, args ...any) ([]models.Exercise, error) {
	rows, err := db.sqldb.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroups, &e.Equipment, &e.Instructions, &e.Difficulty, &e.IsCustom); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
