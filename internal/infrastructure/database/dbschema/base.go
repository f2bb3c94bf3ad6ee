package dbschema

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel carries the columns shared by every persisted entity.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
