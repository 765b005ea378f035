package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/staffly/ems-backend-go/internal/domain/auth"
)

type SessionRepository struct {
	store *SnapshotStore
}

func NewSessionRepository(store *SnapshotStore) auth.SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Load(ctx context.Context) (auth.Session, bool, error) {
	raw, present, err := r.store.Get(ctx, keySession)
	if err != nil {
		return auth.Session{}, false, fmt.Errorf("load session record: %w", err)
	}
	if !present {
		return auth.Session{}, false, nil
	}

	var session auth.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return auth.Session{}, false, fmt.Errorf("decode session record: %w", err)
	}
	return session, true, nil
}

func (r *SessionRepository) Save(ctx context.Context, session auth.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := r.store.Put(ctx, keySession, raw); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, keySession); err != nil {
		return fmt.Errorf("clear session record: %w", err)
	}
	return nil
}
