package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkpoint-server/internal/utils/platformerrors"
)

type memoryRepository struct {
	users  map[string]*User
	nextID uint
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{users: make(map[string]*User), nextID: 1}
}

func (m *memoryRepository) Create(_ context.Context, usr *User) (*User, error) {
	clone := *usr
	clone.ID = m.nextID
	m.nextID++
	m.users[clone.Login] = &clone
	return &clone, nil
}

func (m *memoryRepository) FindByLogin(_ context.Context, login string) (*User, error) {
	return m.users[login], nil
}

func (m *memoryRepository) FindByID(_ context.Context, id uint) (*User, error) {
	for _, usr := range m.users {
		if usr.ID == id {
			return usr, nil
		}
	}
	return nil, nil
}

func TestRegisterNormalizesLogin(t *testing.T) {
	service := NewService(newMemoryRepository())

	created, err := service.Register(context.Background(), RegisterInput{
		Name:     "Maria Silva",
		Login:    "  Maria.Silva  ",
		Password: "s3gredo",
		Role:     RoleRequester,
	})
	require.NoError(t, err)

	assert.Equal(t, "maria.silva", created.Login)
	assert.NotEqual(t, "s3gredo", created.PasswordHash)
}

func TestRegisterDuplicateLogin(t *testing.T) {
	service := NewService(newMemoryRepository())
	ctx := context.Background()

	input := RegisterInput{Name: "Maria", Login: "maria", Password: "s3gredo", Role: RoleRequester}
	_, err := service.Register(ctx, input)
	require.NoError(t, err)

	_, err = service.Register(ctx, input)
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeConflict))
}

func TestRegisterValidation(t *testing.T) {
	service := NewService(newMemoryRepository())
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"missing login", RegisterInput{Name: "Maria", Password: "s3gredo", Role: RoleRequester}},
		{"unknown role", RegisterInput{Name: "Maria", Login: "maria", Password: "s3gredo", Role: Role("admin")}},
		{"short password", RegisterInput{Name: "Maria", Login: "maria", Password: "abc", Role: RoleRequester}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeValidation))
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service := NewService(newMemoryRepository())
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterInput{Name: "Maria", Login: "maria", Password: "s3gredo", Role: RoleOperator})
	require.NoError(t, err)

	usr, err := service.Authenticate(ctx, "MARIA", "s3gredo")
	require.NoError(t, err)
	assert.Equal(t, RoleOperator, usr.Role)

	// wrong secret and unknown login fail identically
	_, err = service.Authenticate(ctx, "maria", "errada")
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeUnauthorized))

	_, err = service.Authenticate(ctx, "ninguem", "s3gredo")
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeUnauthorized))
}
