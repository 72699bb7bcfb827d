package router

import (
	"rebuy/internal/adapter/api/handler"
	"rebuy/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.GET("", orderHandler.ListMyOrders)
	orders.GET("/:id", orderHandler.GetMyOrder)

	admin := e.Group("/v1/admin/orders")
	admin.Use(adminMiddleware.Authenticate)
	admin.GET("", orderHandler.ListOrders)
	admin.GET("/:id", orderHandler.GetOrder)
	admin.PATCH("/:id/status", orderHandler.UpdateStatus)
	admin.POST("/:id/courier", orderHandler.AssignCourier)
}
