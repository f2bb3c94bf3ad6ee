package chat

import (
	"github.com/gin-gonic/gin"

	"checkpoint-server/internal/interfaces/httpserver/handlers/chathandler"
)

type ChatRoute struct {
	chatHandler *chathandler.ChatHandler
}

func NewChatRoute(chatHandler *chathandler.ChatHandler) *ChatRoute {
	return &ChatRoute{chatHandler: chatHandler}
}

func (chatRoute *ChatRoute) RegisterRouter(router gin.IRouter) {
	chatRouter := router.Group("/chat")
	chatRouter.GET("/welcome", chatRoute.chatHandler.Welcome)
	chatRouter.POST("", chatRoute.chatHandler.Turn)
}
