package router

import (
	"github.com/labstack/echo/v4"

	"finderskeeper/internal/adapter/api/handler"
	"finderskeeper/internal/adapter/api/middleware"
)

// SetupUserRouter registers the admin user-management routes.
func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminGroup := e.Group("/v1/admin/users")
	adminGroup.Use(authMiddleware.Authenticate)
	adminGroup.Use(adminMiddleware.AdminOnly)

	adminGroup.GET("", userHandler.ListUsers)
	adminGroup.PATCH("/:id/status", userHandler.UpdateUserStatus)
}
