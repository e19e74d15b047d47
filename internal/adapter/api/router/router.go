package router

import (
	"github.com/labstack/echo/v4"

	"finderskeeper/internal/adapter/api/handler"
	"finderskeeper/internal/adapter/api/middleware"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Item    *handler.ItemHandler
	Message *handler.MessageHandler
	User    *handler.UserHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupHealthRouter(e)
	SetupAuthRouter(e, h.Auth)
	SetupItemRouter(e, h.Item, authMiddleware)
	SetupMessageRouter(e, h.Message, authMiddleware)
	SetupUserRouter(e, h.User, authMiddleware, adminMiddleware)
}
