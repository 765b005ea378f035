package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly/ems-backend-go/internal/domain/auth"
	"github.com/staffly/ems-backend-go/internal/domain/user"
	"github.com/staffly/ems-backend-go/internal/fixtures"
	"github.com/staffly/ems-backend-go/internal/pkg/database"
	"github.com/staffly/ems-backend-go/internal/pkg/jwt"
	"github.com/staffly/ems-backend-go/internal/repository/sqlite"
)

const (
	testSecret    = "test-secret-key-for-jwt"
	testAccessExp = "1h"
)

type testStore struct {
	users    user.Repository
	sessions auth.SessionRepository
}

func newTestStore(t *testing.T, path string) testStore {
	db, err := database.NewSQLiteDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	snapshots := sqlite.NewSnapshotStore(db)
	return testStore{
		users:    sqlite.NewUserRepository(snapshots),
		sessions: sqlite.NewSessionRepository(snapshots),
	}
}

func newTestService(t *testing.T, store testStore) auth.Service {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	svc := NewAuthService(store.users, store.sessions, jwtService)
	require.NoError(t, svc.Init(context.Background()))
	return svc
}

func TestAuthService_SeedsDemoUsers(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, filepath.Join(t.TempDir(), "ems.db"))
	newTestService(t, store)

	users, present, err := store.users.Load(ctx)
	require.NoError(t, err)
	assert.True(t, present)
	require.Len(t, users, 3)

	roles := []user.Role{users[0].Role, users[1].Role, users[2].Role}
	assert.Contains(t, roles, user.RoleAdmin)
	assert.Contains(t, roles, user.RoleManager)
	assert.Contains(t, roles, user.RoleEmployee)

	// Never plaintext on disk.
	for _, u := range users {
		assert.NotEqual(t, fixtures.DemoPassword, u.PasswordHash)
		assert.NotEmpty(t, u.PasswordHash)
	}
}

func TestAuthService_NotReadyBeforeInit(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "ems.db"))
	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	svc := NewAuthService(store.users, store.sessions, jwtService)

	assert.False(t, svc.Ready())
	_, err := svc.CurrentSession(context.Background())
	assert.ErrorIs(t, err, auth.ErrStoreNotReady)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, filepath.Join(t.TempDir(), "ems.db"))
	svc := newTestService(t, store)

	result, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@company.com",
		Password: fixtures.DemoPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, result.User.Role)
	assert.Equal(t, "admin@company.com", result.User.Email)
	assert.NotEmpty(t, result.Token.AccessToken)
	assert.Greater(t, result.Token.ExpiresAt, int64(0))

	session, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, user.RoleAdmin, session.Role)

	// The session record is mirrored to storage.
	persisted, present, err := store.sessions.Load(ctx)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, session.UserID, persisted.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, filepath.Join(t.TempDir(), "ems.db"))
	svc := newTestService(t, store)

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@company.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	session, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, filepath.Join(t.TempDir(), "ems.db"))
	svc := newTestService(t, store)

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "nobody@company.com",
		Password: fixtures.DemoPassword,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Signup_Success(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, filepath.Join(t.TempDir(), "ems.db"))
	svc := newTestService(t, store)

	result, err := svc.Signup(ctx, auth.SignupRequest{
		Name:     "New Hire",
		Email:    "new.hire@company.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	// Role defaults to employee, and signup behaves as an implicit login.
	assert.Equal(t, user.RoleEmployee, result.User.Role)
	assert.NotEmpty(t, result.Token.AccessToken)

	session, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "new.hire@company.com", session.Email)

	users, _, err := store.users.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	// The new credentials work for a subsequent login.
	_, err = svc.Login(ctx, auth.LoginRequest{
		Email:    "new.hire@company.com",
		Password: "s3cret",
	})
	assert.NoError(t, err)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, filepath.Join(t.TempDir(), "ems.db"))
	svc := newTestService(t, store)

	_, err := svc.Signup(ctx, auth.SignupRequest{
		Name:     "Imposter",
		Email:    "admin@company.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, auth.ErrEmailExists)

	users, _, err := store.users.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, filepath.Join(t.TempDir(), "ems.db"))
	svc := newTestService(t, store)

	result, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "manager@company.com",
		Password: fixtures.DemoPassword,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.Token.AccessToken))
	session, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	// Second logout lands in the same no-session state.
	require.NoError(t, svc.Logout(ctx, ""))
	session, err = svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	_, present, err := store.sessions.Load(ctx)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestAuthService_SessionRestoredAcrossRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ems.db")

	store := newTestStore(t, path)
	svc := newTestService(t, store)

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "employee@company.com",
		Password: fixtures.DemoPassword,
	})
	require.NoError(t, err)

	reopened := newTestService(t, newTestStore(t, path))
	session, err := reopened.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "employee@company.com", session.Email)
	assert.Equal(t, user.RoleEmployee, session.Role)
}
