package router

import (
	"github.com/labstack/echo/v4"

	"finderskeeper/internal/adapter/api/handler"
	"finderskeeper/internal/adapter/api/middleware"
)

// SetupMessageRouter registers the messaging routes. Everything here requires
// authentication.
func SetupMessageRouter(e *echo.Echo, messageHandler *handler.MessageHandler, authMiddleware *middleware.AuthMiddleware) {
	messageGroup := e.Group("/v1/messages")
	messageGroup.Use(authMiddleware.Authenticate)

	messageGroup.GET("", messageHandler.GetThreads)            // GET /v1/messages - Conversation threads for the caller
	messageGroup.POST("/contact", messageHandler.SendContact)  // POST /v1/messages/contact - First message to an item owner
	messageGroup.POST("/reply", messageHandler.SendReply)      // POST /v1/messages/reply - Reply in an existing conversation
	messageGroup.PUT("/read", messageHandler.MarkThreadRead)   // PUT /v1/messages/read - Mark a thread as read
}
