package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// InitSchema runs the embedded schema migrations and verifies that the
// persons table exists afterwards. The verification only warns on failure;
// the migration step is the authoritative one.
func InitSchema(db *sql.DB, logger *logrus.Logger) error {
	if logger == nil {
		logger = logrus.New()
	}

	logger.Info("Running schema migrations")

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}

	driver, err := migratemysql.WithInstance(db, &migratemysql.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	verifyPersonsTable(db, logger)

	logger.Info("Schema migrations completed")
	return nil
}

// verifyPersonsTable checks that the persons table is visible after migration
func verifyPersonsTable(db *sql.DB, logger *logrus.Logger) {
	var table string
	err := db.QueryRow("SHOW TABLES LIKE 'persons'").Scan(&table)
	if err != nil {
		logger.WithError(err).Warn("Could not verify persons table after migration")
		return
	}

	logger.WithField("table", table).Info("Persons table verified")
}
