package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"filebot/internal/config"
	"filebot/internal/service/auth"
)

func testConfig(t *testing.T, expiry time.Duration) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	assert.NoError(t, err)

	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: expiry,
		AdminKeyHash:    string(hash),
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	svc := auth.NewService(testConfig(t, 15*time.Minute))

	token, err := svc.IssueToken("letmein")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestIssueToken_WrongKey(t *testing.T) {
	svc := auth.NewService(testConfig(t, 15*time.Minute))

	_, err := svc.IssueToken("guess")
	assert.ErrorIs(t, err, auth.ErrInvalidKey)
}

func TestIssueToken_NoHashConfigured(t *testing.T) {
	svc := auth.NewService(&config.Config{JWTSecret: "test-secret"})

	_, err := svc.IssueToken("anything")
	assert.ErrorIs(t, err, auth.ErrInvalidKey)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := auth.NewService(testConfig(t, -time.Minute))

	token, err := svc.IssueToken("letmein")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := auth.NewService(testConfig(t, 15*time.Minute))

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
