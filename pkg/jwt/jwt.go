package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token scopes. Access tokens carry a session; the mail scopes are single-purpose
// tokens embedded in verification and password-reset links.
const (
	ScopeAccess        = "access"
	ScopeVerifyEmail   = "verify_email"
	ScopePasswordReset = "password_reset"
)

// Claims includes the standard JWT claims plus the application's own fields.
// Role lets the admin middleware authorize without a DB round trip; Scope keeps a
// reset-password token from being accepted as a session.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"` // "user" | "admin"
	Scope  string `json:"scope"`
}

// Generate signs an access token carrying userID and role.
func Generate(secret, userID, role, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, role, ScopeAccess, issuer, expMinutes)
}

// GenerateScoped signs a single-purpose token (email verification, password reset).
func GenerateScoped(secret, userID, scope, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, "", scope, issuer, expMinutes)
}

func generate(secret, userID, role, scope, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: userID,
		Role:   role,
		Scope:  scope,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validates the token and returns its claims.
// Returns an error if the token is invalid, expired or wrongly signed.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// ParseScoped validates the token and additionally requires the given scope.
func ParseScoped(secret, tokenString, scope string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Scope != scope {
		return nil, fmt.Errorf("jwt: wrong token scope %q", claims.Scope)
	}
	return claims, nil
}
