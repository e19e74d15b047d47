package router

import (
	"github.com/labstack/echo/v4"

	"finderskeeper/internal/adapter/api/handler"
	"finderskeeper/internal/adapter/api/middleware"
)

// SetupItemRouter registers the listing routes. Browsing is public; creating
// and changing listings requires authentication.
func SetupItemRouter(e *echo.Echo, itemHandler *handler.ItemHandler, authMiddleware *middleware.AuthMiddleware) {
	itemGroup := e.Group("/v1/items")

	itemGroup.GET("", itemHandler.ListItems)
	itemGroup.GET("/:id", itemHandler.GetItem)

	itemGroup.POST("", itemHandler.CreateItem, authMiddleware.Authenticate)
	itemGroup.PATCH("/:id", itemHandler.UpdateItem, authMiddleware.Authenticate)
	itemGroup.DELETE("/:id", itemHandler.DeleteItem, authMiddleware.Authenticate)
}
