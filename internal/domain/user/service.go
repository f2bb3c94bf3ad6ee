package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"checkpoint-server/internal/utils/platformerrors"
)

// Service persists and authenticates users.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RegisterInput carries the attributes of a new user.
type RegisterInput struct {
	Name     string
	Login    string
	Password string
	Role     Role
}

// Register creates a new user. The login must be unique; registering an
// already-taken login fails with a conflict error.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	login := strings.TrimSpace(strings.ToLower(input.Login))
	if login == "" || strings.TrimSpace(input.Name) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"name and login are required", nil, "7d8c3b21-4e0a-4f2d-9c6b-d51a8e2f4a90")
	}
	if !input.Role.Valid() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"role must be requester or operator", nil, "2f1b6c4d-9a3e-4875-b0cd-6e9f1a2b3c4d")
	}
	if len(input.Password) < 6 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"password must be at least 6 characters", nil, "c4a2e8f1-6b3d-4590-8e7a-1f2b3c4d5e6f")
	}

	existing, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to check login availability")
	}
	if existing != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
			"login already registered", nil, "9e5d4c3b-2a1f-4e6d-8c7b-0a9f8e7d6c5b")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to hash password")
	}

	created, err := s.repo.Create(ctx, &User{
		Name:         strings.TrimSpace(input.Name),
		Login:        login,
		PasswordHash: string(hash),
		Role:         input.Role,
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create user")
	}
	return created, nil
}

// Authenticate verifies the login/secret pair and returns the user.
// Unknown logins and wrong secrets fail the same way.
func (s *Service) Authenticate(ctx context.Context, login, secret string) (*User, error) {
	usr, err := s.repo.FindByLogin(ctx, strings.TrimSpace(strings.ToLower(login)))
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to look up user")
	}
	if usr == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnauthorized,
			"invalid credentials", nil, "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(secret)); err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnauthorized,
			"invalid credentials", nil, "6f5e4d3c-2b1a-4c8d-9e0f-a1b2c3d4e5f6")
	}
	return usr, nil
}
