package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
	"github.com/rjfoods/storefront-api/pkg/jwt"
)

// Locals keys for UserID and Role in Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// Sign-in routes returned in 401 bodies so the client knows where to redirect.
const (
	LoginPathUser  = "/login"
	LoginPathAdmin = "/admin/login"
)

// AuthMiddleware validates the Bearer JWT and loads UserID and Role into
// c.Locals. loginPath is echoed in 401 responses: customer routes send the
// client to /login, admin routes to /admin/login.
func AuthMiddleware(jwtSecret, loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "MISSING_TOKEN", "Authorization header required", loginPath)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "INVALID_TOKEN", "format: Bearer <token>", loginPath)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "MISSING_TOKEN", "empty token", loginPath)
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", "invalid or expired token", loginPath)
		}
		// Mail-link tokens (verify, reset) are not sessions.
		if claims.Scope != jwt.ScopeAccess {
			return unauthorized(c, "INVALID_TOKEN", "token is not a session token", loginPath)
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireAdmin authorizes the admin surface from the stored profile role, not
// the role claim frozen into the token, so a role toggle applies to existing
// sessions on their next request. Runs after AuthMiddleware, so a failure here
// is an authenticated non-admin: 403, not a login redirect. A missing or
// unreadable profile degrades to not-admin.
func RequireAdmin(profiles repository.ProfileRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := profiles.GetByID(GetUserID(c))
		if err != nil || profile == nil || !profile.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "NOT_AUTHORIZED",
				Message: "admin access required",
			})
		}
		c.Locals(LocalRole, profile.Role)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, code, message, loginPath string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:    code,
		Message: message,
		Login:   loginPath,
	})
}

// GetUserID returns the UserID from the context (after the auth middleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole returns the Role from the context (after the auth middleware).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// IsAdmin reports whether the current session carries the admin role.
func IsAdmin(c *fiber.Ctx) bool {
	return GetRole(c) == entity.RoleAdmin
}
