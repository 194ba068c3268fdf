package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:blueprint.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/blueprint?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS results (
  id TEXT PRIMARY KEY,
  test_id TEXT NOT NULL,
  user_session TEXT NOT NULL,
  answers_json TEXT NOT NULL,
  label TEXT NOT NULL,
  scores_json TEXT NOT NULL,
  analysis_json TEXT NOT NULL,
  confidence REAL NOT NULL DEFAULT 0,
  completed_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_results_session ON results (user_session, completed_at);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS results (
  id TEXT PRIMARY KEY,
  test_id TEXT NOT NULL,
  user_session TEXT NOT NULL,
  answers_json TEXT NOT NULL,
  label TEXT NOT NULL,
  scores_json TEXT NOT NULL,
  analysis_json TEXT NOT NULL,
  confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
  completed_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_results_session ON results (user_session, completed_at);
`
