package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"checkpoint-server/internal/config"
	"checkpoint-server/internal/infrastructure"
	middleware "checkpoint-server/internal/interfaces/httpserver/middlewares"
	"checkpoint-server/internal/interfaces/httpserver/routes/auth"
	v1 "checkpoint-server/internal/interfaces/httpserver/routes/v1"
)

type HTTPServer struct {
	engine    *gin.Engine
	infra     *infrastructure.Infrastructure
	v1Route   *v1.V1Route
	authRoute *auth.AuthRoute
	config    *config.Config
}

func NewHttpServer(
	v1Route *v1.V1Route,
	authRoute *auth.AuthRoute,
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := HTTPServer{
		gin.New(),
		infra,
		v1Route,
		authRoute,
		cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.LoggingMiddleware(infra.Logger))
	server.engine.Use(middleware.MetricsMiddleware())
	server.engine.Use(middleware.CORSMiddleware())

	// Root health check (for backwards compatibility)
	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server.engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	return &server
}

func (httpServer *HTTPServer) Run() error {
	// Public routes (no auth required)
	root := httpServer.engine.Group("/")

	// Protected routes (auth middleware applied)
	protected := httpServer.engine.Group("/")
	protected.Use(
		middleware.AuthMiddleware(httpServer.infra.TokenManager, httpServer.infra.Logger),
	)

	// Register auth routes (public)
	httpServer.authRoute.RegisterRouter(root)

	// Register v1 routes (with auth middleware)
	httpServer.v1Route.RegisterRouter(protected)

	if err := httpServer.engine.Run(fmt.Sprintf(":%d", httpServer.config.HTTPPort)); err != nil {
		return err
	}
	return nil
}
