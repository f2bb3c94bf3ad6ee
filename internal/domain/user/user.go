// Package user provides the user directory: registration, authentication and roles.
package user

import (
	"context"
	"time"
)

// Role determines which views and actions are available to a user.
type Role string

const (
	RoleRequester Role = "requester"
	RoleOperator  Role = "operator"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleRequester || r == RoleOperator
}

// User models an application user. Role is fixed at creation.
type User struct {
	ID           uint
	Name         string
	Login        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Repository defines storage operations for users.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	FindByLogin(ctx context.Context, login string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
}
