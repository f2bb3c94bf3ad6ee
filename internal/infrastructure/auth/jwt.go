// Package auth issues and validates the HMAC-signed access tokens the HTTP
// surface authenticates with.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"checkpoint-server/internal/config"
	"checkpoint-server/internal/domain"
	"checkpoint-server/internal/domain/user"
	"checkpoint-server/internal/utils/platformerrors"
)

// AccessClaims represent the subset of JWT claims we care about.
type AccessClaims struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates access tokens with a shared secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.JWTTTL,
	}
}

// Issue mints a signed token for the given user.
func (m *TokenManager) Issue(usr *user.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)
	claims := AccessClaims{
		Login: usr.Login,
		Name:  usr.Name,
		Role:  string(usr.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", usr.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate parses a raw token and maps its claims onto a principal.
func (m *TokenManager) Validate(ctx context.Context, rawToken string) (*domain.Principal, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	var claims AccessClaims
	token, err := parser.ParseWithClaims(rawToken, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfra,
			platformerrors.ErrorTypeUnauthorized,
			"invalid or expired token",
			err,
			"b9e4d2a6-1f7c-43b8-9a5e-6d0c3f8b2e7a",
		)
	}

	var userID uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfra,
			platformerrors.ErrorTypeUnauthorized,
			"token subject is not a user ID",
			err,
			"5c1f8d3b-7e9a-46c2-b0d4-9a2e6f5c1d8b",
		)
	}

	role := user.Role(claims.Role)
	if !role.Valid() {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfra,
			platformerrors.ErrorTypeUnauthorized,
			"token carries an unknown role",
			nil,
			"e2a6c4f8-3d1b-45e7-8c9a-0f4b7d2e6a3c",
		)
	}

	return &domain.Principal{
		UserID: userID,
		Login:  claims.Login,
		Name:   claims.Name,
		Role:   role,
	}, nil
}
