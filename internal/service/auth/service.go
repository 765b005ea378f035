package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffly/ems-backend-go/internal/domain/auth"
	"github.com/staffly/ems-backend-go/internal/domain/user"
	"github.com/staffly/ems-backend-go/internal/fixtures"
	"github.com/staffly/ems-backend-go/internal/pkg/jwt"
)

// AuthServiceImpl holds the registered-user list and the current session
// identity, both mirrored to durable storage. Wrong credentials and duplicate
// signup emails are the only recognized failures; both come back as sentinel
// errors, never as faults.
type AuthServiceImpl struct {
	mu       sync.RWMutex
	users    user.Repository
	sessions auth.SessionRepository
	jwt      jwt.Service
	list     []user.User
	current  *auth.Session
	ready    bool
}

func NewAuthService(users user.Repository, sessions auth.SessionRepository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		users:    users,
		sessions: sessions,
		jwt:      jwtService,
	}
}

// Init implements auth.Service. Seeds the three demo accounts on first run
// and restores a persisted session if one exists.
func (a *AuthServiceImpl) Init(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	users, present, err := a.users.Load(ctx)
	if err != nil {
		return err
	}
	if !present {
		users = fixtures.DemoUsers()
		if err := a.users.Save(ctx, users); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}
	a.list = users

	session, present, err := a.sessions.Load(ctx)
	if err != nil {
		return err
	}
	if present {
		a.current = &session
	}

	a.ready = true
	return nil
}

func (a *AuthServiceImpl) Ready() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ready
}

// Login implements auth.Service. Email lookup is case-sensitive; the stored
// hash is compared with bcrypt. No lockout, no throttling.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.ready {
		return auth.LoginResponse{}, auth.ErrStoreNotReady
	}

	for _, u := range a.list {
		if u.Email != req.Email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return a.establishSession(ctx, u)
	}
	return auth.LoginResponse{}, auth.ErrInvalidCredentials
}

// Signup implements auth.Service. A duplicate email fails without touching the
// user list; otherwise the new account is appended, persisted, and logged in.
func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.LoginResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.ready {
		return auth.LoginResponse{}, auth.ErrStoreNotReady
	}

	for _, u := range a.list {
		if u.Email == req.Email {
			return auth.LoginResponse{}, auth.ErrEmailExists
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate user id: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("hash password: %w", err)
	}

	newUser := user.User{
		ID:           id.String(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         req.UserRole(),
		CreatedAt:    time.Now().UTC(),
	}

	a.list = append(a.list, newUser)
	if err := a.users.Save(ctx, a.list); err != nil {
		return auth.LoginResponse{}, err
	}

	return a.establishSession(ctx, newUser)
}

// establishSession sets and persists the session for u and issues an access
// token. Callers must hold the write lock.
func (a *AuthServiceImpl) establishSession(ctx context.Context, u user.User) (auth.LoginResponse, error) {
	session := auth.Session{
		UserID:     u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		LoggedInAt: time.Now().UTC(),
	}

	if err := a.sessions.Save(ctx, session); err != nil {
		return auth.LoginResponse{}, err
	}
	a.current = &session

	token, expiresAt, err := a.jwt.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	return auth.LoginResponse{
		User:  session,
		Token: auth.TokenResponse{AccessToken: token, ExpiresAt: expiresAt},
	}, nil
}

// Logout implements auth.Service. Clearing an already-cleared session is fine;
// calling it twice yields the same no-session state.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.ready {
		return auth.ErrStoreNotReady
	}

	if token != "" {
		a.jwt.RevokeToken(token)
	}
	a.current = nil
	return a.sessions.Clear(ctx)
}

func (a *AuthServiceImpl) CurrentSession(ctx context.Context) (*auth.Session, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if !a.ready {
		return nil, auth.ErrStoreNotReady
	}

	if a.current == nil {
		return nil, nil
	}
	session := *a.current
	return &session, nil
}
