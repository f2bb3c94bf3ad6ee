package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkpoint-server/internal/config"
	"checkpoint-server/internal/domain/user"
)

func testManager(secret string, ttl time.Duration) *TokenManager {
	return NewTokenManager(&config.Config{JWTSecret: secret, JWTTTL: ttl})
}

func TestIssueAndValidate(t *testing.T) {
	manager := testManager("test-secret", time.Hour)

	usr := &user.User{ID: 42, Name: "Oscar", Login: "oscar", Role: user.RoleOperator}
	token, expiresAt, err := manager.Issue(usr)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	principal, err := manager.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), principal.UserID)
	assert.Equal(t, "oscar", principal.Login)
	assert.True(t, principal.IsOperator())
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := testManager("secret-a", time.Hour)
	validator := testManager("secret-b", time.Hour)

	token, _, err := issuer.Issue(&user.User{ID: 1, Login: "maria", Role: user.RoleRequester})
	require.NoError(t, err)

	_, err = validator.Validate(context.Background(), token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	manager := testManager("test-secret", -time.Minute)

	token, _, err := manager.Issue(&user.User{ID: 1, Login: "maria", Role: user.RoleRequester})
	require.NoError(t, err)

	_, err = manager.Validate(context.Background(), token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	manager := testManager("test-secret", time.Hour)
	_, err := manager.Validate(context.Background(), "not-a-token")
	assert.Error(t, err)
}
