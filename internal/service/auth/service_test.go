package auth

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/auth"
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/user"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/database"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/jwt"
	"github.com/staffsync-hq/staffsync-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAuthDB *database.DB

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

func authTestInit(t *testing.T) {
	t.Helper()
	if testAuthDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testAuthDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
}

func truncateAuthTables(t *testing.T, ctx context.Context) {
	t.Helper()
	for _, table := range []string{"refresh_tokens", "users"} {
		_, err := testAuthDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func newTestAuthService(t *testing.T) auth.AuthService {
	authTestInit(t)
	userRepo := postgresql.NewUserRepository(testAuthDB)
	jwtRepo := postgresql.NewJWTRepository(testAuthDB)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(testAuthDB, userRepo, jwtRepo, jwtService)
}

func registerTestUser(t *testing.T, ctx context.Context, svc auth.AuthService, email string) auth.RegisterResponse {
	t.Helper()
	created, err := svc.Register(ctx, auth.RegisterRequest{
		Name:            "Test Employee",
		Email:           email,
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.NoError(t, err)
	return created
}

func TestRegister(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx)

	t.Run("success with default role", func(t *testing.T) {
		created, err := svc.Register(ctx, auth.RegisterRequest{
			Name:            "Jane Staff",
			Email:           "jane@staffsync.test",
			Password:        "password123",
			ConfirmPassword: "password123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "jane@staffsync.test", created.Email)
		assert.Equal(t, string(user.RoleEmployee), created.Role)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, auth.RegisterRequest{
			Name:            "Jane Again",
			Email:           "jane@staffsync.test",
			Password:        "password123",
			ConfirmPassword: "password123",
		})
		assert.ErrorIs(t, err, user.ErrUserEmailExists)
	})

	t.Run("password mismatch rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, auth.RegisterRequest{
			Name:            "Bad Confirm",
			Email:           "bad@staffsync.test",
			Password:        "password123",
			ConfirmPassword: "different",
		})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx)
	registerTestUser(t, ctx, svc, "login@staffsync.test")

	t.Run("success returns token pair", func(t *testing.T) {
		tokens, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "login@staffsync.test",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Greater(t, tokens.AccessTokenExpiresIn, int64(0))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "login@staffsync.test",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "nobody@staffsync.test",
			Password: "password123",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		created := registerTestUser(t, ctx, svc, "gone@staffsync.test")
		userRepo := postgresql.NewUserRepository(testAuthDB)
		require.NoError(t, userRepo.Deactivate(ctx, created.ID))

		_, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "gone@staffsync.test",
			Password: "password123",
		})
		assert.ErrorIs(t, err, user.ErrUserInactive)
	})
}

func TestRefreshToken(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx)
	registerTestUser(t, ctx, svc, "refresh@staffsync.test")

	tokens, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "refresh@staffsync.test",
		Password: "password123",
	})
	require.NoError(t, err)

	t.Run("valid refresh token yields new access token", func(t *testing.T) {
		refreshed, err := svc.RefreshToken(ctx, tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
	})

	t.Run("access token is not accepted as refresh token", func(t *testing.T) {
		_, err := svc.RefreshToken(ctx, tokens.AccessToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := svc.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("revoked after logout", func(t *testing.T) {
		require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))

		_, err := svc.RefreshToken(ctx, tokens.RefreshToken)
		assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
	})
}

func TestMe(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx)
	created := registerTestUser(t, ctx, svc, "me@staffsync.test")

	me, err := svc.Me(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, me.ID)
	assert.Equal(t, "me@staffsync.test", me.Email)
	assert.Equal(t, string(user.RoleEmployee), me.Role)

	_, err = svc.Me(ctx, "00000000-0000-0000-0000-000000000000")
	assert.Error(t, err)
}
