// Package domain holds cross-aggregate domain types and the service provider set.
package domain

import "checkpoint-server/internal/domain/user"

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID uint
	Login  string
	Name   string
	Role   user.Role
}

// IsOperator reports whether the principal may mutate order lifecycle state.
func (p Principal) IsOperator() bool {
	return p.Role == user.RoleOperator
}
