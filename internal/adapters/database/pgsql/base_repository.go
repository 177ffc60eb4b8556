package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository carries the shared connection pool for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
