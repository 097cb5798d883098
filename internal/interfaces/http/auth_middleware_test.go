package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjfoods/storefront-api/internal/domain/entity"
	apphttp "github.com/rjfoods/storefront-api/internal/interfaces/http"
	pkgjwt "github.com/rjfoods/storefront-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "storefront-test"
	testExpMin    = 60
)

// stubProfileRepo serves stored roles to the admin guard.
type stubProfileRepo struct {
	mu    sync.Mutex
	roles map[string]string
}

func newStubProfileRepo(roles map[string]string) *stubProfileRepo {
	return &stubProfileRepo{roles: roles}
}

func (s *stubProfileRepo) setRole(id, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[id] = role
}

func (s *stubProfileRepo) Create(*entity.Profile) error { return nil }
func (s *stubProfileRepo) GetByID(id string) (*entity.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	role, ok := s.roles[id]
	if !ok {
		return nil, nil
	}
	return &entity.Profile{ID: id, Role: role}, nil
}
func (s *stubProfileRepo) GetByEmail(string) (*entity.Profile, error) { return nil, nil }
func (s *stubProfileRepo) Update(*entity.Profile) error               { return nil }
func (s *stubProfileRepo) UpdateRole(id, role string) error           { s.setRole(id, role); return nil }
func (s *stubProfileRepo) List(_, _ int) ([]*entity.Profile, error)   { return nil, nil }

// buildGuardApp wires a customer route and an admin route the way the router
// does, with a dummy handler behind the middlewares.
func buildGuardApp(profiles *stubProfileRepo) *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c)})
	}
	app.Get("/user-area",
		apphttp.AuthMiddleware(testJWTSecret, apphttp.LoginPathUser), ok)
	app.Get("/admin-area",
		apphttp.AuthMiddleware(testJWTSecret, apphttp.LoginPathAdmin),
		apphttp.RequireAdmin(profiles), ok)
	return app
}

func guardAppWithRole(role string) *fiber.App {
	return buildGuardApp(newStubProfileRepo(map[string]string{testUserID: role}))
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// Anonymous on a customer route: 401 pointing to the customer sign-in.
func TestGuardAnonymousUserRoute(t *testing.T) {
	app := guardAppWithRole(entity.RoleUser)
	resp := doRequest(t, app, "/user-area", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, apphttp.LoginPathUser, body["login"])
}

// Anonymous on an admin route: 401 pointing to the admin sign-in.
func TestGuardAnonymousAdminRoute(t *testing.T) {
	app := guardAppWithRole(entity.RoleUser)
	resp := doRequest(t, app, "/admin-area", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, apphttp.LoginPathAdmin, body["login"])
}

// Authenticated non-admin on an admin route: 403, no login redirect.
func TestGuardUserBlockedOnAdminRoute(t *testing.T) {
	app := guardAppWithRole(entity.RoleUser)
	resp := doRequest(t, app, "/admin-area", tokenForRole(t, entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "NOT_AUTHORIZED", body["code"])
	assert.Empty(t, body["login"])
}

// Admin passes both guards.
func TestGuardAdminAllowed(t *testing.T) {
	app := guardAppWithRole(entity.RoleAdmin)

	for _, path := range []string{"/user-area", "/admin-area"} {
		resp := doRequest(t, app, path, tokenForRole(t, entity.RoleAdmin))
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestGuardInvalidToken(t *testing.T) {
	app := guardAppWithRole(entity.RoleUser)
	resp := doRequest(t, app, "/user-area", "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// A password-reset token is not a session.
func TestGuardRejectsMailScopedToken(t *testing.T) {
	app := guardAppWithRole(entity.RoleUser)
	tok, err := pkgjwt.GenerateScoped(testJWTSecret, testUserID, pkgjwt.ScopePasswordReset, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "/user-area", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// The admin guard decides from the stored role, not the token claim, so a
// role toggle applies to an existing session without a new login.
func TestGuardHonorsRoleToggleMidSession(t *testing.T) {
	profiles := newStubProfileRepo(map[string]string{testUserID: entity.RoleUser})
	app := buildGuardApp(profiles)
	token := tokenForRole(t, entity.RoleUser)

	resp := doRequest(t, app, "/admin-area", token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, profiles.UpdateRole(testUserID, entity.RoleAdmin))
	resp = doRequest(t, app, "/admin-area", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "promotion admits the same token")
	resp.Body.Close()

	require.NoError(t, profiles.UpdateRole(testUserID, entity.RoleUser))
	resp = doRequest(t, app, "/admin-area", token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "demotion blocks the same token")
	resp.Body.Close()
}

// A stale admin claim in the token does not outrank the stored role.
func TestGuardDemotedAdminClaimRejected(t *testing.T) {
	app := guardAppWithRole(entity.RoleUser)

	resp := doRequest(t, app, "/admin-area", tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "NOT_AUTHORIZED", body["code"])
}

// No stored profile reads as not-admin, never an error.
func TestGuardMissingProfileDenied(t *testing.T) {
	app := buildGuardApp(newStubProfileRepo(map[string]string{}))

	resp := doRequest(t, app, "/admin-area", tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddlewareExtractsClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, apphttp.LoginPathUser), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	resp := doRequest(t, app, "/me", tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}
