package repo

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"prlens/internal/lib"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

//go:embed migrations
var migrationsFS embed.FS

// NewMigrator builds a migrate instance over the embedded migrations for driver.
// It owns its own database connection; callers must Close it.
func NewMigrator(driver, dsn string) (*migrate.Migrate, error) {
	const op = "repo.NewMigrator"

	dbURL, err := migrationURL(driver, dsn)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	src, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return m, nil
}

// Migrate applies every pending up migration.
func Migrate(driver, dsn string) error {
	const op = "repo.Migrate"

	m, err := NewMigrator(driver, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return lib.Err(op, err)
	}

	return nil
}

func migrationURL(driver, dsn string) (string, error) {
	switch driver {
	case DriverPostgres:
		if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
			return "", errors.New("postgres dsn must be a postgres:// url")
		}
		return dsn, nil
	case DriverSQLite:
		return "sqlite3://" + dsn, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
