package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"article-api/internal/config"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// SQLite returns a migrator bound to an already opened SQLite database.
// Closing the migrator closes db as well.
func SQLite(db *sql.DB) (*migrate.Migrate, error) {
	const op = "storage.migrations.SQLite"

	src, err := iofs.New(files, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

// Postgres returns a migrator for the database behind dsn.
func Postgres(dsn string) (*migrate.Migrate, error) {
	const op = "storage.migrations.Postgres"

	src, err := iofs.New(files, "postgres")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, PgxURL(dsn))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

// Open returns a migrator for the configured storage.
func Open(st config.Storage) (*migrate.Migrate, error) {
	const op = "storage.migrations.Open"

	switch st.Driver {
	case config.DriverSQLite:
		db, err := sql.Open("sqlite3", st.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		m, err := SQLite(db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return m, nil
	case config.DriverPostgres:
		return Postgres(st.DSN)
	default:
		return nil, fmt.Errorf("%s: %w: %q", op, config.ErrUnknownDriver, st.Driver)
	}
}

// PgxURL rewrites a postgres:// DSN to the scheme registered by the pgx/v5 driver.
func PgxURL(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, scheme) {
			return "pgx5://" + strings.TrimPrefix(dsn, scheme)
		}
	}
	return dsn
}

// Up applies all pending migrations. An up-to-date schema is not an error.
func Up(m *migrate.Migrate) error {
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("storage.migrations.Up: %w", err)
	}
	return nil
}
