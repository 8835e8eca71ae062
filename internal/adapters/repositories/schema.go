package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Dialect selects SQL syntax for the two supported backends.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

var schemas = map[Dialect][]string{
	DialectSQLite: {
		`
	CREATE TABLE IF NOT EXISTS place_catalog (
		place_id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		description TEXT NOT NULL,
		primary_label TEXT NOT NULL,
		secondary_label TEXT NOT NULL DEFAULT '',
		type_tags TEXT NOT NULL DEFAULT ''
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS suggestion_cache (
        cache_key TEXT PRIMARY KEY,
        payload BLOB NOT NULL,
        created_at_unix INTEGER NOT NULL
    );
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_place_catalog_position
    ON place_catalog(position);
	`,
	},
	DialectPostgres: {
		`
	CREATE TABLE IF NOT EXISTS place_catalog (
		place_id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		description TEXT NOT NULL,
		primary_label TEXT NOT NULL,
		secondary_label TEXT NOT NULL DEFAULT '',
		type_tags TEXT NOT NULL DEFAULT ''
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS suggestion_cache (
        cache_key TEXT PRIMARY KEY,
        payload BYTEA NOT NULL,
        created_at TIMESTAMPTZ NOT NULL
    );
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_place_catalog_position
    ON place_catalog(position);
	`,
	},
}

// Initialize the catalog and suggestion cache tables.
func InitSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	statements, ok := schemas[dialect]
	if !ok {
		return fmt.Errorf("init schema: unsupported dialect %q", dialect)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
