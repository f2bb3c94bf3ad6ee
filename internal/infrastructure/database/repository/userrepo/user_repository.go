package userrepo

import (
	"context"

	"gorm.io/gorm"

	"checkpoint-server/internal/domain/user"
	"checkpoint-server/internal/infrastructure/database/dbschema"
	"checkpoint-server/internal/utils/platformerrors"
)

type UserGormRepository struct {
	db *gorm.DB
}

var _ user.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) user.Repository {
	return &UserGormRepository{db: db}
}

func (repo *UserGormRepository) Create(ctx context.Context, usr *user.User) (*user.User, error) {
	entity := dbschema.NewSchemaUser(usr)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabase,
			"failed to create user",
			err,
			"7e4c1a9b-8f25-4d6e-b3a1-0c9d2e5f8a7b",
		)
	}
	return entity.EtoD(), nil
}

func (repo *UserGormRepository) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	var entity dbschema.User
	err := repo.db.WithContext(ctx).
		Where("login = ?", login).
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
			"failed to find user by login",
			err,
			"2f8b6d4c-1a3e-47f9-9c5d-8e7a6b4c2d1f",
		)
	}
	return entity.EtoD(), nil
}

func (repo *UserGormRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var entity dbschema.User
	err := repo.db.WithContext(ctx).
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
			"failed to find user by ID",
			err,
			"9a1d7e3f-5b2c-4861-a4f8-3c6e9d0b5a2e",
		)
	}
	return entity.EtoD(), nil
}
