package auth

import "context"

// Service is the session store: it owns the registered-user list and the
// current session identity.
type Service interface {
	// Init loads users and any persisted session, seeding the demo accounts
	// on first run.
	Init(ctx context.Context) error
	// Ready reports whether the initial load from durable storage completed.
	// Until then the current identity is unknown, neither authenticated nor
	// unauthenticated.
	Ready() bool

	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// Signup appends a new account and behaves as an implicit login for it.
	Signup(ctx context.Context, req SignupRequest) (LoginResponse, error)
	// Logout clears the session and revokes the presented token. Idempotent.
	Logout(ctx context.Context, token string) error

	// CurrentSession returns the active identity, or nil when logged out.
	CurrentSession(ctx context.Context) (*Session, error)
}
