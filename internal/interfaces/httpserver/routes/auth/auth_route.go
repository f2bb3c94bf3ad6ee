package auth

import (
	"github.com/gin-gonic/gin"

	"checkpoint-server/internal/interfaces/httpserver/handlers/authhandler"
)

// AuthRoute handles authentication routes
type AuthRoute struct {
	authHandler *authhandler.AuthHandler
}

// NewAuthRoute creates a new auth route
func NewAuthRoute(authHandler *authhandler.AuthHandler) *AuthRoute {
	return &AuthRoute{authHandler: authHandler}
}

// RegisterRouter registers auth routes on the public router.
func (a *AuthRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/v1/auth/register", a.authHandler.Register)
	router.POST("/v1/auth/login", a.authHandler.Login)
}
