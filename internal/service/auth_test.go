package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungku/warung-service/internal/config"
	"github.com/warungku/warung-service/internal/db"
	"github.com/warungku/warung-service/internal/db/repository"
	"github.com/warungku/warung-service/internal/models"
)

func newTestAuthService(t *testing.T, jwtConfig JWTConfig) *AuthService {
	t.Helper()
	store := db.New(config.Storage{DataDir: t.TempDir()})
	require.NoError(t, store.Init())
	repos := repository.NewRepositories(store)
	return NewAuthService(repos, jwtConfig, validator.New())
}

func testJWTConfig() JWTConfig {
	return JWTConfig{Secret: "test-secret", ExpiresIn: 24}
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newTestAuthService(t, testJWTConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, models.RegisterRequest{
		Username: "budi",
		Password: "rahasia123",
		Email:    "budi@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	// Stored password is a hash, not the plaintext
	assert.NotEqual(t, "rahasia123", user.Password)

	token, loggedIn, err := svc.Login(ctx, "budi", "rahasia123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	// The token's claims decode back to the same identity
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "budi", claims.Username)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestAuthService(t, testJWTConfig())
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"short username", models.RegisterRequest{Username: "ab", Password: "rahasia123", Email: "a@b.com"}},
		{"short password", models.RegisterRequest{Username: "budi", Password: "12345", Email: "a@b.com"}},
		{"bad email", models.RegisterRequest{Username: "budi", Password: "rahasia123", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			var validationErrs validator.ValidationErrors
			assert.ErrorAs(t, err, &validationErrs)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestAuthService(t, testJWTConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "budi", Password: "rahasia123", Email: "a@b.com"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, models.RegisterRequest{Username: "budi", Password: "rahasia123", Email: "c@d.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t, testJWTConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "budi", Password: "rahasia123", Email: "a@b.com"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "budi", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "rahasia123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSuperuserPlaintextBypass(t *testing.T) {
	svc := newTestAuthService(t, testJWTConfig())
	ctx := context.Background()

	token, user, err := svc.Login(ctx, models.SuperuserName, "superuser")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	// Any other password still fails for the superuser
	_, _, err = svc.Login(ctx, models.SuperuserName, "somethingelse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenFailures(t *testing.T) {
	svc := newTestAuthService(t, testJWTConfig())
	ctx := context.Background()

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)

	// Token signed with a different secret
	other := newTestAuthService(t, JWTConfig{Secret: "other-secret", ExpiresIn: 24})
	token, _, err := other.Login(ctx, models.SuperuserName, "superuser")
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	// A negative validity window produces an already-expired token
	svc := newTestAuthService(t, JWTConfig{Secret: "test-secret", ExpiresIn: -1})

	token, _, err := svc.Login(context.Background(), models.SuperuserName, "superuser")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
