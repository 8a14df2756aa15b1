// Package migrate runs database migrations from embedded SQL files using golang-migrate.
package migrate

import (
	"errors"
	"fmt"
	"strings"

	"lg/macro-plan-api/db"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ErrNoChange is returned by the underlying driver when there is nothing to apply.
var ErrNoChange = migrate.ErrNoChange

// ErrNoDSN is returned when no database URL is configured.
var ErrNoDSN = errors.New("DB_URL is not set; create a .env or export DB_URL")

// Run applies migrations in the given direction ("up" or "down") against dsn.
// Already being at the target version is not an error.
func Run(dsn string, direction string) error {
	if strings.TrimSpace(dsn) == "" {
		return ErrNoDSN
	}
	if direction != "up" && direction != "down" {
		return fmt.Errorf("direction must be up or down, got %q", direction)
	}

	sourceDriver, err := iofs.New(db.MigrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
