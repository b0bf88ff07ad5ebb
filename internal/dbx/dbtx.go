// Package dbx provides the small DB abstraction shared by repositories:
// the DBTX interface implemented by both *sqlx.DB and *sqlx.Tx, and Open,
// which connects to PostgreSQL through the pgx stdlib driver.
package dbx

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// DriverName is the database/sql driver registered by pgx.
const DriverName = "pgx"

// DBTX is the subset of sqlx used by repositories.
type DBTX interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// Open connects to dsn, applies pool settings and pings the server.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return db, nil
}
