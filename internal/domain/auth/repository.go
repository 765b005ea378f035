package auth

import "context"

// SessionRepository persists the current session identity. Clear is
// idempotent: clearing an absent session is not an error.
type SessionRepository interface {
	Load(ctx context.Context) (session Session, present bool, err error)
	Save(ctx context.Context, session Session) error
	Clear(ctx context.Context) error
}
