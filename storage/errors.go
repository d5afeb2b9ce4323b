package storage

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

var (
	ErrNotFound   = errors.New("storage: record not found")
	ErrDuplicate  = errors.New("storage: duplicate key")
	ErrForeignKey = errors.New("storage: foreign key violation")
)

// mapError converts driver failures into package sentinels so callers
// never inspect PostgreSQL error codes themselves.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicate
		case "23503":
			return ErrForeignKey
		}
	}
	return err
}

// parseID validates ids arriving from paths and query strings. A malformed
// uuid can never match a row and is reported as ErrNotFound before reaching
// the driver.
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", ErrNotFound
	}
	return parsed.String(), nil
}
