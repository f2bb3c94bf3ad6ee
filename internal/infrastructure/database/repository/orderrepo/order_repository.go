package orderrepo

import (
	"context"

	"gorm.io/gorm"

	"checkpoint-server/internal/domain/order"
	"checkpoint-server/internal/infrastructure/database/dbschema"
	"checkpoint-server/internal/utils/platformerrors"
)

type OrderGormRepository struct {
	db *gorm.DB
}

var _ order.Repository = (*OrderGormRepository)(nil)

func NewOrderGormRepository(db *gorm.DB) order.Repository {
	return &OrderGormRepository{db: db}
}

func (repo *OrderGormRepository) Create(ctx context.Context, ord *order.Order) (*order.Order, error) {
	entity := dbschema.NewSchemaOrder(ord)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabase,
			"failed to create order",
			err,
			"c4e8a2f1-6d9b-4375-8e1c-5a7f3b9d0e62",
		)
	}
	return repo.FindByPublicID(ctx, entity.PublicID)
}

func (repo *OrderGormRepository) FindByPublicID(ctx context.Context, publicID string) (*order.Order, error) {
	var entity dbschema.Order
	err := repo.db.WithContext(ctx).
		Preload("Requester").
		Where("public_id = ?", publicID).
		First(&entity).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabase,
			"failed to find order by public ID",
			err,
			"1b5f9c3d-7a2e-48d6-b0f4-9e6c8a1d5b3f",
		)
	}
	return entity.EtoD(), nil
}

func (repo *OrderGormRepository) ListByRequester(ctx context.Context, requesterID uint) ([]*order.Order, error) {
	var entities []dbschema.Order
	err := repo.db.WithContext(ctx).
		Preload("Requester").
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&entities).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabase,
			"failed to list orders by requester",
			err,
			"8d2a6f4b-3c1e-49a7-95d8-2b7e4f0c6a9d",
		)
	}
	return toDomainList(entities), nil
}

func (repo *OrderGormRepository) ListActive(ctx context.Context) ([]*order.Order, error) {
	var entities []dbschema.Order
	err := repo.db.WithContext(ctx).
		Preload("Requester").
		Where("status IN ?", []string{string(order.StatusPending), string(order.StatusInProgress)}).
		Order("created_at DESC").
		Find(&entities).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabase,
			"failed to list active orders",
			err,
			"5f3e1d9a-4b8c-42f6-a7e2-6c0d9b3f5e8a",
		)
	}
	return toDomainList(entities), nil
}

// ListBySite matches the site column exactly, including case.
func (repo *OrderGormRepository) ListBySite(ctx context.Context, site string) ([]*order.Order, error) {
	var entities []dbschema.Order
	err := repo.db.WithContext(ctx).
		Preload("Requester").
		Where("site = ?", site).
		Order("created_at DESC").
		Find(&entities).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabase,
			"failed to list orders by site",
			err,
			"e7c9b1a5-2d4f-46e8-b3a9-8f5d0c2e7b4a",
		)
	}
	return toDomainList(entities), nil
}

func (repo *OrderGormRepository) Update(ctx context.Context, id uint, patch order.UpdatePatch) (*order.Order, error) {
	if patch.Empty() {
		return repo.findByID(ctx, id)
	}

	assignments := map[string]any{
		"updated_at": gorm.Expr("NOW()"),
	}
	if patch.Status != nil {
		assignments["status"] = string(*patch.Status)
	}
	if patch.OperatorID != nil {
		assignments["operator_id"] = *patch.OperatorID
	}
	if patch.OperatorLogin != nil {
		assignments["operator_login"] = *patch.OperatorLogin
	}
	if patch.ExternalRefID != nil {
		assignments["external_ref_id"] = *patch.ExternalRefID
	}

	result := repo.db.WithContext(ctx).
		Model(&dbschema.Order{}).
		Where("id = ?", id).
		Updates(assignments)
	if result.Error != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabase,
			"failed to update order",
			result.Error,
			"0a6d4e8b-9f1c-43a5-b2e7-7d3f5c9a1e6b",
		)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return repo.findByID(ctx, id)
}

func (repo *OrderGormRepository) findByID(ctx context.Context, id uint) (*order.Order, error) {
	var entity dbschema.Order
	err := repo.db.WithContext(ctx).
		Preload("Requester").
		Where("id = ?", id).
		First(&entity).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabase,
			"failed to reload order",
			err,
			"3d9f7b2e-5a4c-48d1-9e6f-1c8a0b4d7f2e",
		)
	}
	return entity.EtoD(), nil
}

func toDomainList(entities []dbschema.Order) []*order.Order {
	orders := make([]*order.Order, 0, len(entities))
	for i := range entities {
		orders = append(orders, entities[i].EtoD())
	}
	return orders
}
