package dbschema

import (
	"checkpoint-server/internal/domain/order"
	"checkpoint-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Order{})
}

// Order represents the persisted work order schema.
type Order struct {
	BaseModel
	PublicID      string  `gorm:"type:text;not null;uniqueIndex:idx_orders_public_id"`
	Site          string  `gorm:"type:text;not null;index:idx_orders_site,where:deleted_at IS NULL"`
	DU            string  `gorm:"column:du;type:text;not null"`
	Projeto       string  `gorm:"type:text;not null"`
	Motivo        string  `gorm:"type:text;not null"`
	Status        string  `gorm:"type:text;not null;default:'pending';index:idx_orders_status,where:deleted_at IS NULL"`
	RequesterID   uint    `gorm:"not null;index:idx_orders_requester,where:deleted_at IS NULL"`
	Requester     *User   `gorm:"foreignKey:RequesterID"`
	OperatorID    *uint   `gorm:""`
	Operator      *User   `gorm:"foreignKey:OperatorID"`
	OperatorLogin *string `gorm:"type:text"`
	ExternalRefID *string `gorm:"type:text"`
}

// NewSchemaOrder converts a domain order into a schema instance.
func NewSchemaOrder(o *order.Order) *Order {
	if o == nil {
		return nil
	}

	entity := &Order{
		BaseModel: BaseModel{
			ID:        o.ID,
			CreatedAt: o.CreatedAt,
			UpdatedAt: o.UpdatedAt,
		},
		PublicID:    o.PublicID,
		Site:        o.Site,
		DU:          o.DU,
		Projeto:     o.Projeto,
		Motivo:      o.Motivo,
		Status:      string(o.Status),
		RequesterID: o.RequesterID,
	}
	entity.OperatorID = copyPtr(o.OperatorID)
	entity.OperatorLogin = copyPtr(o.OperatorLogin)
	entity.ExternalRefID = copyPtr(o.ExternalRefID)
	return entity
}

func copyPtr[T any](src *T) *T {
	if src == nil {
		return nil
	}
	value := *src
	return &value
}

// EtoD converts a schema order back to the domain representation.
func (o *Order) EtoD() *order.Order {
	if o == nil {
		return nil
	}

	result := &order.Order{
		ID:          o.ID,
		PublicID:    o.PublicID,
		Site:        o.Site,
		DU:          o.DU,
		Projeto:     o.Projeto,
		Motivo:      o.Motivo,
		Status:      order.Status(o.Status),
		RequesterID: o.RequesterID,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	result.OperatorID = copyPtr(o.OperatorID)
	result.OperatorLogin = copyPtr(o.OperatorLogin)
	result.ExternalRefID = copyPtr(o.ExternalRefID)
	if o.Requester != nil {
		result.RequesterName = o.Requester.Name
		result.RequesterLogin = o.Requester.Login
	}
	return result
}
