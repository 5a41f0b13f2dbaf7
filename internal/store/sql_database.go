// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is the connection pool shared by all repositories together with the
// dialect-specific query builder.
type DB struct {
	*sql.DB
	driver  string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// newDB wraps an opened pool. The squirrel placeholder format follows the
// driver: $1, $2... for PostgreSQL and ? for SQLite.
func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:      conn,
		driver:  driver,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  log,
	}
}

// NewConnect opens the database configured in cfg using the driver it names.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate brings the schema up to date for the driver in use.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// WithSession takes a dedicated connection from the pool, runs fn on it and
// hands the connection back to the pool when fn returns, whatever the outcome.
func (db *DB) WithSession(ctx context.Context, fn func(ctx context.Context, conn *sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAcquiringSession, err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			db.logger.Err(closeErr).Str("func", "*DB.WithSession").Msg("error releasing session")
		}
	}()

	return fn(ctx, conn)
}
