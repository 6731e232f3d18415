package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // file:// source
)

// MigrateUp applies any pending archive schema migrations. sourceURL points
// at the migration files, e.g. "file://./migrations". A database already at
// the latest version is not an error.
func MigrateUp(dsn, sourceURL string) error {
	return runMigration(dsn, sourceURL, (*migrate.Migrate).Up)
}

// MigrateDown rolls the archive schema all the way back. Local and test use
// only; the archive is an audit trail.
func MigrateDown(dsn, sourceURL string) error {
	return runMigration(dsn, sourceURL, (*migrate.Migrate).Down)
}

func runMigration(dsn, sourceURL string, step func(*migrate.Migrate) error) error {
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}

	stepErr := step(m)
	srcErr, dbErr := m.Close()

	switch {
	case stepErr != nil && !errors.Is(stepErr, migrate.ErrNoChange):
		return fmt.Errorf("apply archive migrations: %w", stepErr)
	case srcErr != nil:
		return fmt.Errorf("close migration source: %w", srcErr)
	case dbErr != nil:
		return fmt.Errorf("close migration database: %w", dbErr)
	}
	return nil
}
