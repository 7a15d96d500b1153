package storage

import (
	"context"
	"errors"

	"github.com/loganlanou/academy/storage/db"
)

// errRollback aborts a transaction started by Rollback.
var errRollback = errors.New("rollback")

// NewTestDB creates an in-memory SQLite database holding the migrated
// schema and seed content.
func NewTestDB() (*Storage, func(), error) {
	// every connection to :memory: is a separate database
	s, err := open(context.Background(), ":memory:", 1)
	if err != nil {
		return nil, nil, err
	}
	return s, func() { s.Close() }, nil
}

// Rollback runs fn inside a transaction that is always discarded, so tests
// can exercise writes without side effects.
func (s *Storage) Rollback(ctx context.Context, fn func(q *db.Queries) error) error {
	err := s.InTx(ctx, func(q *db.Queries) error {
		if err := fn(q); err != nil {
			return err
		}
		return errRollback
	})
	if errors.Is(err, errRollback) {
		return nil
	}
	return err
}
