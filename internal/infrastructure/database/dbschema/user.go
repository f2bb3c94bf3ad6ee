package dbschema

import (
	"checkpoint-server/internal/domain/user"
	"checkpoint-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(User{})
}

// User represents the persisted account that authenticates against the service.
type User struct {
	BaseModel
	Name         string `gorm:"type:text;not null"`
	Login        string `gorm:"type:text;not null;uniqueIndex:idx_users_login,where:deleted_at IS NULL"`
	PasswordHash string `gorm:"type:text;not null"`
	Role         string `gorm:"type:text;not null;default:'requester'"`
}

// NewSchemaUser converts a domain user into a schema instance.
func NewSchemaUser(u *user.User) *User {
	if u == nil {
		return nil
	}

	return &User{
		BaseModel: BaseModel{
			ID:        u.ID,
			CreatedAt: u.CreatedAt,
		},
		Name:         u.Name,
		Login:        u.Login,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
	}
}

// EtoD converts a schema user back to the domain representation.
func (u *User) EtoD() *user.User {
	if u == nil {
		return nil
	}

	return &user.User{
		ID:           u.ID,
		Name:         u.Name,
		Login:        u.Login,
		PasswordHash: u.PasswordHash,
		Role:         user.Role(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}
