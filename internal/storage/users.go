package storage

import (
	"context"
	"fmt"

	"github.com/meltforce/liftstrong/internal/models"
)

// defaultUser is created lazily the first time the profile is needed.
var defaultUser = models.User{
	Name:            "User",
	WeightUnit:      models.WeightUnitPounds,
	DefaultRestTime: 60,
}

const userColumns = `id, name, weight_unit, default_rest_time, created_at`

// GetUserByID retrieves a user, or nil if the id does not resolve.
func (db *DB) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	row := db.sqldb.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		if mapStoreErr(err) == ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return u, nil
}

// FetchAllUsers retrieves all users ordered by creation (id ascending).
func (db *DB) FetchAllUsers(ctx context.Context) ([]models.User, error) {
	rows, err := db.sqldb.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.WeightUnit, &u.DefaultRestTime, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

// WatchAllUsers is the live-query variant of FetchAllUsers.
func (db *DB) WatchAllUsers() *Subscription[models.User] {
	return watch(db, []string{tableUsers}, db.FetchAllUsers)
}

// InsertUser inserts a user row and returns the assigned id.
func (db *DB) InsertUser(ctx context.Context, u models.User) (int64, error) {
	if err := u.Validate(); err != nil {
		return 0, invalid(err)
	}
	res, err := db.sqldb.ExecContext(ctx,
		`INSERT INTO users (name, weight_unit, default_rest_time) VALUES (?, ?, ?)`,
		u.Name, u.WeightUnit, u.DefaultRestTime)
	if err != nil {
		return 0, fmt.Errorf("inserting user: %w", mapStoreErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("inserting user: %w", err)
	}
	db.notifier.broadcast(tableUsers)
	return id, nil
}

// UpdateUser replaces the full user record.
func (db *DB) UpdateUser(ctx context.Context, u models.User) error {
	if err := u.Validate(); err != nil {
		return invalid(err)
	}
	res, err := db.sqldb.ExecContext(ctx,
		`UPDATE users SET name = ?, weight_unit = ?, default_rest_time = ? WHERE id = ?`,
		u.Name, u.WeightUnit, u.DefaultRestTime, u.ID)
	if err != nil {
		return fmt.Errorf("updating user: %w", mapStoreErr(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	db.notifier.broadcast(tableUsers)
	return nil
}

// DeleteUserByID deletes a user; the store cascades to the user's workouts
// and templates.
func (db *DB) DeleteUserByID(ctx context.Context, id int64) error {
	_, err := db.sqldb.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", mapStoreErr(err))
	}
	db.notifier.broadcast(tableUsers, tableWorkouts, tableWorkoutExercises,
		tableWorkoutSets, tableWorkoutTemplates, tableTemplateExercises, tableTemplateSets)
	return nil
}

// GetOrCreateDefaultUser returns the first user by creation order, creating
// the default profile if none exists. Calling it repeatedly returns the same
// user.
func (db *DB) GetOrCreateDefaultUser(ctx context.Context) (*models.User, error) {
	row := db.sqldb.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id ASC LIMIT 1`)
	u, err := scanUser(row)
	if err == nil {
		return u, nil
	}
	if mapStoreErr(err) != ErrNotFound {
		return nil, fmt.Errorf("querying default user: %w", err)
	}

	id, err := db.InsertUser(ctx, defaultUser)
	if err != nil {
		return nil, fmt.Errorf("creating default user: %w", err)
	}
	return db.GetUserByID(ctx, id)
}

// UpdateUserSettings updates the default user's preferences, creating the
// profile first if needed.
func (db *DB) UpdateUserSettings(ctx context.Context, unit models.WeightUnit, restTime int) error {
	u, err := db.GetOrCreateDefaultUser(ctx)
	if err != nil {
		return err
	}
	u.WeightUnit = unit
	u.DefaultRestTime = restTime
	return db.UpdateUser(ctx, *u)
}

func scanUser(row interface{ Scan(dest ...any) error }) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.WeightUnit, &u.DefaultRestTime, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
