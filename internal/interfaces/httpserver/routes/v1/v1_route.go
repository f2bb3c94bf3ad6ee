package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"checkpoint-server/internal/interfaces/httpserver/routes/v1/chat"
	"checkpoint-server/internal/interfaces/httpserver/routes/v1/orders"
)

type V1Route struct {
	chat   *chat.ChatRoute
	orders *orders.OrderRoute
}

func NewV1Route(
	chat *chat.ChatRoute,
	orders *orders.OrderRoute,
) *V1Route {
	return &V1Route{
		chat,
		orders,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/healthz", GetHealthz)
	v1Router.GET("/readyz", GetReadyz)

	v1Route.chat.RegisterRouter(v1Router)
	v1Route.orders.RegisterRouter(v1Router)
}

// GetHealthz reports liveness.
func GetHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadyz reports readiness.
func GetReadyz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
