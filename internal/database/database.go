// internal/database/database.go
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/resadmin/internal/config"
	"github.com/dangerclosesec/resadmin/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every persisted model in dependency order.
func Models() []any {
	return []any{
		&model.Organization{},
		&model.OrganizationContactPoint{},
		&model.Subject{},
		&model.Identification{},
		&model.Address{},
		&model.ContactPoint{},
		&model.Item{},
		&model.Specification{},
		&model.Project{},
		&model.Consumable{},
		&model.SubjectRole{},
		&model.Vote{},
		&model.Initiation{},
		&model.InitiationRole{},
		&model.AuditLog{},
	}
}

func gormConfig(logSQL bool) *gorm.Config {
	level := logger.Warn
	if logSQL {
		level = logger.Info
	}
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Open connects to PostgreSQL and verifies the connection.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig(cfg.Database.LogSQL))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	slog.Info("connected to database", "host", cfg.Database.Host, "name", cfg.Database.Name)
	return db, nil
}

// OpenSQLite opens a SQLite database with foreign keys enforced. It serves
// local development and tests; a single connection keeps in-memory databases
// alive and serializes writers.
func OpenSQLite(dsn string, logSQL bool) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(logSQL))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	return db, nil
}

// AutoMigrate creates or updates every table from the model definitions.
// PostgreSQL deployments use the versioned migrations instead.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrating: %w", err)
	}
	return nil
}
