package storage

import (
	"github.com/jackc/pgx/v4/pgxpool"
)

// Store implements the per-entity persistence interfaces declared in the
// services package on top of a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
