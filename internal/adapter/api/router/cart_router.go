package router

import (
	"rebuy/internal/adapter/api/handler"
	"rebuy/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.Authenticate)
	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:productId", cartHandler.UpdateItem)
	cart.DELETE("/items/:productId", cartHandler.RemoveItem)
	cart.DELETE("", cartHandler.ClearCart)
}
