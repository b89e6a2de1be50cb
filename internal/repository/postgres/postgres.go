package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/oshokin/panic-button/internal/config"
	"github.com/oshokin/panic-button/internal/logger"
)

// DriverName is the database/sql driver registered by pgx.
const DriverName = "pgx"

// defaultConnMaxLifetime recycles pooled connections when not configured.
const defaultConnMaxLifetime = time.Hour

//go:embed schema.sql
var schema string

// errDSNRequired is returned when Open is called without a DSN.
var errDSNRequired = errors.New("database dsn must be provided")

// Open connects to Postgres, configures the pool and verifies the connection.
// The returned pool is safe for concurrent use by all repositories.
func Open(ctx context.Context, cfg config.DatabaseConfig, pingTimeout time.Duration) (*sqlx.DB, error) {
	if cfg.DSN == "" {
		return nil, errDSNRequired
	}

	db, err := sqlx.Open(DriverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)

	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	lifetime := cfg.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = defaultConnMaxLifetime
	}

	db.SetConnMaxLifetime(lifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// EnsureSchema creates the users and contacts tables when they are missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, statement := range Statements() {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	logger.Debug(ctx, "Database schema is up to date")

	return nil
}

// Statements splits the embedded schema into executable statements.
func Statements() []string {
	parts := strings.Split(schema, ";")
	statements := make([]string, 0, len(parts))

	for _, part := range parts {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}

	return statements
}
