// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the versioned SQL schema of the movie catalog,
// one goose migration set per supported database dialect.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB              = errors.New("db is nil")
	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
)

// dialectDirs maps a database/sql driver name to the goose dialect
// and the directory with its migrations.
var dialectDirs = map[string]struct {
	dialect goose.Dialect
	dir     string
}{
	"pgx":     {dialect: goose.DialectPostgres, dir: "postgres"},
	"sqlite3": {dialect: goose.DialectSQLite3, dir: "sqlite"},
}

// Migrate applies every pending migration of the given driver's dialect.
// driver is the database/sql driver name the connection was opened with.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	target, ok := dialectDirs[driver]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDialect, driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(target.dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
