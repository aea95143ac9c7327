// File: internal/database/postgres.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxpoolNew is overridable in tests.
var pgxpoolNew = pgxpool.New

// NewPgxPool opens a postgres connection pool for the given URL.
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
