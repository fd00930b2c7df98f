package storage

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	liftstrong "github.com/meltforce/liftstrong"
)

// DB wraps the SQLite handle and provides repository methods.
type DB struct {
	sqldb    *sql.DB
	notifier *notifier
}

// Open opens (or creates) the database at path, enables foreign-key
// enforcement, and applies any pending schema migrations.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := sqldb.Ping(); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := runMigrations(sqldb); err != nil {
		sqldb.Close()
		return nil, err
	}

	return &DB{sqldb: sqldb, notifier: newNotifier()}, nil
}

// Close closes the database. Open subscriptions stop receiving snapshots but
// must still be closed by their owners.
func (db *DB) Close() error {
	return db.sqldb.Close()
}

func runMigrations(sqldb *sql.DB) error {
	src, err := iofs.New(liftstrong.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}
	driver, err := sqlitemigrate.WithInstance(sqldb, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
