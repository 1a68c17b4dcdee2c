package database

import (
	"errors"
	"fmt"
	"time"

	"weatherbot/internal/config"
	"weatherbot/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitedb "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Options controls connection retries
type Options struct {
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultOptions waits up to a minute for the database to come up
var DefaultOptions = Options{MaxRetries: 30, RetryDelay: 2 * time.Second}

// Connect opens the database for the given driver with retries
func Connect(driver, dsn string, opts Options, logger *zap.Logger) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error

	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 1
	}

	for i := 0; i < opts.MaxRetries; i++ {
		db, err = sqlx.Open(driver, dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.String("driver", driver),
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(opts.RetryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.String("driver", driver),
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(opts.RetryDelay)
			continue
		}

		configurePool(db, driver)
		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", opts.MaxRetries, err)
}

func configurePool(db *sqlx.DB, driver string) {
	if driver == config.DriverSQLite {
		// SQLite serialises writers; a single connection also keeps
		// in-memory databases alive and shared
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		return
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
}

// Migrate applies the embedded migrations for the connection's driver
func Migrate(db *sqlx.DB, logger *zap.Logger) error {
	driverName := db.DriverName()

	source, err := iofs.New(migrations.FS, migrations.Dir(driverName))
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}

	var driver migratedb.Driver
	switch driverName {
	case config.DriverSQLite:
		driver, err = sqlitedb.WithInstance(db.DB, &sqlitedb.Config{})
	default:
		driver, err = postgresdb.WithInstance(db.DB, &postgresdb.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driverName, driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply", zap.String("driver", driverName))
	} else {
		version, _, _ := m.Version()
		logger.Info("Migrations applied successfully",
			zap.String("driver", driverName),
			zap.Uint("version", version),
		)
	}

	return nil
}
