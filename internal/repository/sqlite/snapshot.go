package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/staffly/ems-backend-go/internal/pkg/database"
)

// Storage record keys. One named record per collection, overwritten wholesale
// on every mutation. Each store owns its keys; there are no cross-store
// collisions.
const (
	keyEmployees = "employees"
	keyUsers     = "users"
	keySession   = "session"
)

// SnapshotStore reads and writes the named JSON snapshot records backing both
// stores. A missing key is "absent", not an error; each Put is a single
// upsert, so writes are atomic per call.
type SnapshotStore struct {
	db *database.DB
}

func NewSnapshotStore(db *database.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

func (s *SnapshotStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM snapshots WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *SnapshotStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, key)
	return err
}
