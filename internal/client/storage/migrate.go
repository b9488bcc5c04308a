package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/iptdemo/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// Dialect selects the migration set and the goose dialect.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "pgx"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations for dialect to db.
// It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB, dialect Dialect) error {
	var dir string
	switch dialect {
	case DialectSQLite:
		dir = migrations.SQLiteDir
	case DialectPostgres:
		dir = migrations.PostgresDir
	default:
		return fmt.Errorf("unsupported migration dialect %q", dialect)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, dir)
}
