package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/meltforce/liftstrong/internal/models"
)

const (
	workoutColumns         = `id, user_id, name, date, duration, notes`
	workoutExerciseColumns = `id, workout_id, exercise_id, position, notes`
	workoutSetColumns      = `id, workout_exercise_id, weight, reps, rpe, rest_time, notes`
)

// GetWorkoutByID retrieves a workout, or nil if the id does not resolve.
func (db *DB) GetWorkoutByID(ctx context.Context, id int64) (*models.Workout, error) {
	row := db.sqldb.QueryRowContext(ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE id = ?`, id)
	var w models.Workout
	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Date, &w.Duration, &w.Notes)
	if err != nil {
		if mapStoreErr(err) == ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("querying workout: %w", err)
	}
	return &w, nil
}

// CreateWorkout creates a workout with zero duration; the duration is filled
// in by CompleteWorkout. Returns the assigned id.
func (db *DB) CreateWorkout(ctx context.Context, userID int64, name string, date time.Time, notes *string) (int64, error) {
	w := models.Workout{UserID: userID, Name: name, Date: date, Notes: notes}
	if err := w.Validate(); err != nil {
		return 0, invalid(err)
	}
	res, err := db.sqldb.ExecContext(ctx,
		`INSERT INTO workouts (user_id, name, date, duration, notes) VALUES (?, ?, ?, 0, ?)`,
		w.UserID, w.Name, w.Date, w.Notes)
	if err != nil {
		return 0, fmt.Errorf("inserting workout: %w", mapStoreErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("inserting workout: %w", err)
	}
	db.notifier.broadcast(tableWorkouts)
	return id, nil
}

// AddExerciseToWorkout appends an exercise at the given position. The caller
// supplies the position; by convention callers use current count + 1, but the
// store does not renumber existing rows.
func (db *DB) AddExerciseToWorkout(ctx context.Context, workoutID, exerciseID int64, position int, notes *string) (int64, error) {
	we := models.WorkoutExercise{WorkoutID: workoutID, ExerciseID: exerciseID, Position: position, Notes: notes}
	if err := we.Validate(); err != nil {
		return 0, invalid(err)
	}
	res, err := db.sqldb.ExecContext(ctx,
		`INSERT INTO workout_exercises (workout_id, exercise_id, position, notes) VALUES (?, ?, ?, ?)`,
		we.WorkoutID, we.ExerciseID, we.Position, we.Notes)
	if err != nil {
		return 0, fmt.Errorf("inserting workout exercise: %w", mapStoreErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("inserting workout exercise: %w", err)
	}
	db.notifier.broadcast(tableWorkoutExercises)
	return id, nil
}

// AddSetToWorkoutExercise records one performed set.
func (db *DB) AddSetToWorkoutExercise(ctx context.Context, workoutExerciseID int64, weight float64, reps int, rpe, restTime *int, notes *string) (int64, error) {
	ws := models.WorkoutSet{WorkoutExerciseID: workoutExerciseID, Weight: weight, Reps: reps, RPE: rpe, RestTime: restTime, Notes: notes}
	if err := ws.Validate(); err != nil {
		return 0, invalid(err)
	}
	res, err := db.sqldb.ExecContext(ctx,
		`INSERT INTO workout_sets (workout_exercise_id, weight, reps, rpe, rest_time, notes) VALUES (?, ?, ?, ?, ?, ?)`,
		ws.WorkoutExerciseID, ws.Weight, ws.Reps, ws.RPE, ws.RestTime, ws.Notes)
	if err != nil {
		return 0, fmt.Errorf("inserting workout set: %w", mapStoreErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("inserting workout set: %w", err)
	}
	db.notifier.broadcast(tableWorkoutSets)
	return id, nil
}

// GetWorkoutExercisesForWorkout retrieves a workout's exercises ordered by
// position.
func (db *DB) GetWorkoutExercisesForWorkout(ctx context.Context, workoutID int64) ([]models.WorkoutExercise, error) {
	rows, err := db.sqldb.QueryContext(ctx,
		`SELECT `+workoutExerciseColumns+` FROM workout_exercises WHERE workout_id = ? ORDER BY position ASC`,
		workoutID)
	if err != nil {
		return nil, fmt.Errorf("querying workout exercises: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutExercise
	for rows.Next() {
		var we models.WorkoutExercise
		if err := rows.Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.Position, &we.Notes); err != nil {
			return nil, fmt.Errorf("scanning workout exercise: %w", err)
		}
		result = append(result, we)
	}
	return result, rows.Err()
}

// GetWorkoutSetsForWorkoutExercise retrieves sets in insertion order.
func (db *DB) GetWorkoutSetsForWorkoutExercise(ctx context.Context, workoutExerciseID int64) ([]models.WorkoutSet, error) {
	rows, err := db.sqldb.QueryContext(ctx,
		`SELECT `+workoutSetColumns+` FROM workout_sets WHERE workout_exercise_id = ? ORDER BY id ASC`,
		workoutExerciseID)
	if err != nil {
		return nil, fmt.Errorf("querying workout sets: %w", err)
	}
	defer rows.Close()
	return scanWorkoutSets(rows)
}

// FetchWorkoutsForUser retrieves a user's workouts, most recent first.
func (db *DB) FetchWorkoutsForUser(ctx context.Context, userID int64) ([]models.Workout, error) {
	return db.queryWorkouts(ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE user_id = ? ORDER BY date DESC`, userID)
}

// WatchWorkoutsForUser is the live-query variant of FetchWorkoutsForUser.
func (db *DB) WatchWorkoutsForUser(userID int64) *Subscription[models.Workout] {
	return watch(db, []string{tableWorkouts}, func(ctx context.Context) ([]models.Workout, error) {
		return db.FetchWorkoutsForUser(ctx, userID)
	})
}

// FetchWorkoutsBetweenDates retrieves workouts in the inclusive range, most
// recent first.
func (db *DB) FetchWorkoutsBetweenDates(ctx context.Context, start, end time.Time) ([]models.Workout, error) {
	return db.queryWorkouts(ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE date BETWEEN ? AND ? ORDER BY date DESC`, start, end)
}

// WatchWorkoutsBetweenDates is the live-query variant of FetchWorkoutsBetweenDates.
func (db *DB) WatchWorkoutsBetweenDates(start, end time.Time) *Subscription[models.Workout] {
	return watch(db, []string{tableWorkouts}, func(ctx context.Context) ([]models.Workout, error) {
		return db.FetchWorkoutsBetweenDates(ctx, start, end)
	})
}

// GetLatestWorkoutForExercise retrieves the most recent workout containing
// the exercise, or nil if it was never performed.
func (db *DB) GetLatestWorkoutForExercise(ctx context.Context, exerciseID int64) (*models.Workout, error) {
	row := db.sqldb.QueryRowContext(ctx,
		`SELECT w.id, w.user_id, w.name, w.date, w.duration, w.notes
		 FROM workouts w
		 INNER JOIN workout_exercises we ON w.id = we.workout_id
		 WHERE we.exercise_id = ?
		 ORDER BY w.date DESC
		 LIMIT 1`,
		exerciseID)
	var w models.Workout
	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Date, &w.Duration, &w.Notes)
	if err != nil {
		if mapStoreErr(err) == ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("querying latest workout: %w", err)
	}
	return &w, nil
}

// GetLatestWorkoutSetsForExercise retrieves up to 10 of the most recent sets
// recorded for the exercise, newest workout first then position ascending.
// Used for "last time" progressive-overload comparison.
func (db *DB) GetLatestWorkoutSetsForExercise(ctx context.Context, exerciseID int64) ([]models.WorkoutSet, error) {
	rows, err := db.sqldb.QueryContext(ctx,
		`SELECT ws.id, ws.workout_exercise_id, ws.weight, ws.reps, ws.rpe, ws.rest_time, ws.notes
		 FROM workout_sets ws
		 INNER JOIN workout_exercises we ON ws.workout_exercise_id = we.id
		 INNER JOIN workouts w ON we.workout_id = w.id
		 WHERE we.exercise_id = ?
		 ORDER BY w.date DESC, we.position ASC
		 LIMIT 10`,
		exerciseID)
	if err != nil {
		return nil, fmt.Errorf("querying latest sets: %w", err)
	}
	defer rows.Close()
	return scanWorkoutSets(rows)
}

// CompleteWorkout records the session duration in minutes. A missing workout
// id is a no-op, not an error; repeating the call is idempotent.
func (db *DB) CompleteWorkout(ctx context.Context, workoutID int64, durationMinutes int) error {
	if durationMinutes < 0 {
		return invalid(fmt.Errorf("duration must not be negative"))
	}
	res, err := db.sqldb.ExecContext(ctx,
		`UPDATE workouts SET duration = ? WHERE id = ?`, durationMinutes, workoutID)
	if err != nil {
		return fmt.Errorf("completing workout: %w", mapStoreErr(err))
	}
	if n, _ := res.RowsAffected(); n > 0 {
		db.notifier.broadcast(tableWorkouts)
	}
	return nil
}

// UpdateWorkout replaces the full workout record.
func (db *DB) UpdateWorkout(ctx context.Context, w models.Workout) error {
	if err := w.Validate(); err != nil {
		return invalid(err)
	}
	res, err := db.sqldb.ExecContext(ctx,
		`UPDATE workouts SET user_id = ?, name = ?, date = ?, duration = ?, notes = ? WHERE id = ?`,
		w.UserID, w.Name, w.Date, w.Duration, w.Notes, w.ID)
	if err != nil {
		return fmt.Errorf("updating workout: %w", mapStoreErr(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	db.notifier.broadcast(tableWorkouts)
	return nil
}

// DeleteWorkoutByID deletes a workout; the store cascades to its exercises
// and their sets.
func (db *DB) DeleteWorkoutByID(ctx context.Context, id int64) error {
	_, err := db.sqldb.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting workout: %w", mapStoreErr(err))
	}
	db.notifier.broadcast(tableWorkouts, tableWorkoutExercises, tableWorkoutSets)
	return nil
}

// DeleteWorkoutExerciseByID deletes a workout exercise; the store cascades to
// its sets.
func (db *DB) DeleteWorkoutExerciseByID(ctx context.Context, id int64) error {
	_, err := db.sqldb.ExecContext(ctx, `DELETE FROM workout_exercises WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting workout exercise: %w", mapStoreErr(err))
	}
	db.notifier.broadcast(tableWorkoutExercises, tableWorkoutSets)
	return nil
}

// DeleteWorkoutSetByID deletes a single set.
func (db *DB) DeleteWorkoutSetByID(ctx context.Context, id int64) error {
	_, err := db.sqldb.ExecContext(ctx, `DELETE FROM workout_sets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting workout set: %w", mapStoreErr(err))
	}
	db.notifier.broadcast(tableWorkoutSets)
	return nil
}

// WorkoutDetail is a workout with its exercises and their sets, ready for
// display.
type WorkoutDetail struct {
	models.Workout
	Exercises []WorkoutExerciseDetail `json:"exercises"`
}

// WorkoutExerciseDetail is a workout exercise with its sets.
type WorkoutExerciseDetail struct {
	models.WorkoutExercise
	Sets []models.WorkoutSet `json:"sets"`
}

// GetWorkoutDetail retrieves a workout with all associated data, or
// ErrNotFound if the id does not resolve.
func (db *DB) GetWorkoutDetail(ctx context.Context, id int64) (*WorkoutDetail, error) {
	w, err := db.GetWorkoutByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}

	detail := &WorkoutDetail{Workout: *w}
	exercises, err := db.GetWorkoutExercisesForWorkout(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, we := range exercises {
		sets, err := db.GetWorkoutSetsForWorkoutExercise(ctx, we.ID)
		if err != nil {
			return nil, err
		}
		detail.Exercises = append(detail.Exercises, WorkoutExerciseDetail{WorkoutExercise: we, Sets: sets})
	}
	return detail, nil
}

func (db *DB) queryWorkouts(ctx context.Context, query string, args ...any) ([]models.Workout, error) {
	rows, err := db.sqldb.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var result []models.Workout
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Date, &w.Duration, &w.Notes); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

func scanWorkoutSets(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]models.WorkoutSet, error) {
	var result []models.WorkoutSet
	for rows.Next() {
		var ws models.WorkoutSet
		if err := rows.Scan(&ws.ID, &ws.WorkoutExerciseID, &ws.Weight, &ws.Reps, &ws.RPE, &ws.RestTime, &ws.Notes); err != nil {
			return nil, fmt.Errorf("scanning workout set: %w", err)
		}
		result = append(result, ws)
	}
	return result, rows.Err()
}
