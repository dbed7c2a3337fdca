package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

type AuditDB struct {
	DB  *sql.DB
	Log *zerolog.Logger
}

// NewAuditDB opens and pings the audit database.
func NewAuditDB(driver, source string, log *zerolog.Logger) (*AuditDB, error) {
	if source == "" {
		log.Error().Msg("database source is not set")
		return nil, errors.New("database source is not set")
	}

	// Open the database connection
	db, err := sql.Open(driver, source)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database connection")
		return nil, err
	}

	// Check we are actually connected
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("Database connection failed during ping")
		db.Close()
		return nil, err
	}

	return &AuditDB{DB: db, Log: log}, nil
}

func (a *AuditDB) Close() error {
	if err := a.DB.Close(); err != nil {
		return err
	}
	a.Log.Info().Msg("database connection closed")
	return nil
}

// Migrate applies the embedded goose migrations.
func (a *AuditDB) Migrate() error {
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(a.DB, "migrations"); err != nil {
		a.Log.Error().Err(err).Msg("Migration failed")
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	a.Log.Info().Msg("Migrations applied successfully")
	return nil
}
