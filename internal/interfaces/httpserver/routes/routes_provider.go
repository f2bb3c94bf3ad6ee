package routes

import (
	"checkpoint-server/internal/interfaces/httpserver/handlers/authhandler"
	"checkpoint-server/internal/interfaces/httpserver/handlers/chathandler"
	"checkpoint-server/internal/interfaces/httpserver/handlers/orderhandler"
	"checkpoint-server/internal/interfaces/httpserver/routes/auth"
	v1 "checkpoint-server/internal/interfaces/httpserver/routes/v1"
	"checkpoint-server/internal/interfaces/httpserver/routes/v1/chat"
	"checkpoint-server/internal/interfaces/httpserver/routes/v1/orders"

	"github.com/google/wire"
)

var RouteProvider = wire.NewSet(
	// Handlers
	authhandler.NewAuthHandler,
	chathandler.NewChatHandler,
	orderhandler.NewOrderHandler,

	// Routes
	auth.NewAuthRoute,
	v1.NewV1Route,
	chat.NewChatRoute,
	orders.NewOrderRoute,
)
