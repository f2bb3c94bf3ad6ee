package domain

import (
	"github.com/google/wire"

	"checkpoint-server/internal/domain/intake"
	"checkpoint-server/internal/domain/order"
	"checkpoint-server/internal/domain/user"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// User directory
	user.NewService,

	// Order lifecycle
	order.NewService,
	wire.Bind(new(intake.OrderBook), new(*order.Service)),

	// Conversational intake
	intake.NewPolicy,
	intake.NewRegexClassifier,
	wire.Bind(new(intake.IntentClassifier), new(*intake.RegexClassifier)),
	intake.NewOrchestrator,
	intake.NewRegistry,
)
