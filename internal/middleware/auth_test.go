package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungku/warung-service/internal/config"
	"github.com/warungku/warung-service/internal/db"
	"github.com/warungku/warung-service/internal/db/repository"
	"github.com/warungku/warung-service/internal/models"
	"github.com/warungku/warung-service/internal/service"
)

func newTestAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	store := db.New(config.Storage{DataDir: t.TempDir()})
	require.NoError(t, store.Init())
	repos := repository.NewRepositories(store)
	return service.NewAuthService(repos, service.JWTConfig{Secret: "test-secret", ExpiresIn: 24}, validator.New())
}

func superuserToken(t *testing.T, svc *service.AuthService) string {
	t.Helper()
	token, _, err := svc.Login(context.Background(), models.SuperuserName, "superuser")
	require.NoError(t, err)
	return token
}

func TestAuthMissingHeader(t *testing.T) {
	svc := newTestAuthService(t)

	handler := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestAuthMalformedHeader(t *testing.T) {
	svc := newTestAuthService(t)

	handler := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	for _, header := range []string{"Bearer", "Basic abc", "Bearer bad token parts"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.Header.Set("Authorization", header)
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	svc := newTestAuthService(t)

	handler := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer garbage.token.here")
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthPopulatesContext(t *testing.T) {
	svc := newTestAuthService(t)
	token := superuserToken(t, svc)

	var gotID int
	var gotName string
	var gotRole models.UserRole
	handler := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetUserID(r.Context())
		gotName, _ = GetUsername(r.Context())
		gotRole, _ = GetUserRole(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, gotID)
	assert.Equal(t, models.SuperuserName, gotName)
	assert.Equal(t, models.RoleAdmin, gotRole)
}

func TestRequireRoleForbidsNonAdmin(t *testing.T) {
	handler := RequireRole(models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	ctx := context.WithValue(req.Context(), UserRoleKey, models.RoleUser)
	handler.ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleWithoutAuthContext(t *testing.T) {
	handler := RequireRole(models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	called := false
	handler := RequireRole(models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	ctx := context.WithValue(req.Context(), UserRoleKey, models.RoleAdmin)
	handler.ServeHTTP(rec, req.WithContext(ctx))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
