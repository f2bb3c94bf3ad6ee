package orders

import (
	"github.com/gin-gonic/gin"

	"checkpoint-server/internal/interfaces/httpserver/handlers/orderhandler"
)

type OrderRoute struct {
	orderHandler *orderhandler.OrderHandler
}

func NewOrderRoute(orderHandler *orderhandler.OrderHandler) *OrderRoute {
	return &OrderRoute{orderHandler: orderHandler}
}

func (orderRoute *OrderRoute) RegisterRouter(router gin.IRouter) {
	orderRouter := router.Group("/orders")
	orderRouter.GET("", orderRoute.orderHandler.List)
	orderRouter.PATCH("/:id", orderRoute.orderHandler.Update)
	orderRouter.POST("/:id/email", orderRoute.orderHandler.Email)
}
