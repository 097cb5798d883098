package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/rjfoods/storefront-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "storefront-test"
)

func TestGenerateAndParse_AccessToken(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "admin", testIssuer, 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, pkgjwt.ScopeAccess, claims.Scope)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "user", testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("another-secret", tok)
	assert.Error(t, err, "a token signed with a different secret must not parse")
}

func TestParse_ExpiredToken(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "user", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "an expired token must not parse")
}

func TestParseScoped_RejectsAccessTokenForReset(t *testing.T) {
	access, err := pkgjwt.Generate(testSecret, testUserID, "user", testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.ParseScoped(testSecret, access, pkgjwt.ScopePasswordReset)
	assert.Error(t, err, "a session token must not be usable as a reset token")
}

func TestParseScoped_AcceptsMatchingScope(t *testing.T) {
	tok, err := pkgjwt.GenerateScoped(testSecret, testUserID, pkgjwt.ScopeVerifyEmail, testIssuer, 30)
	require.NoError(t, err)

	claims, err := pkgjwt.ParseScoped(testSecret, tok, pkgjwt.ScopeVerifyEmail)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Empty(t, claims.Role, "mail tokens carry no role")
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "user", testIssuer, 60)
	assert.Error(t, err)
}
