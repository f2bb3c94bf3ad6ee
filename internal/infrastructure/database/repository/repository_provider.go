package repository

import (
	"checkpoint-server/internal/infrastructure/database/repository/orderrepo"
	"checkpoint-server/internal/infrastructure/database/repository/userrepo"

	"github.com/google/wire"
)

var RepositoryProvider = wire.NewSet(
	userrepo.NewUserGormRepository,
	orderrepo.NewOrderGormRepository,
)
