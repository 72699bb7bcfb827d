package router

import (
	"rebuy/internal/adapter/api/handler"
	"rebuy/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReorderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	reorderHandler := handler.GetReorderHandler()

	// Suppliers browse open requests and reply.
	supplier := e.Group("/v1/reorders")
	supplier.Use(authMiddleware.Authenticate)
	supplier.Use(authMiddleware.RequireRole("supplier"))
	supplier.GET("", reorderHandler.List)
	supplier.GET("/:id", reorderHandler.Get)
	supplier.POST("/:id/replies", reorderHandler.Reply)

	admin := e.Group("/v1/admin/reorders")
	admin.Use(adminMiddleware.Authenticate)
	admin.POST("", reorderHandler.Create)
	admin.GET("", reorderHandler.List)
	admin.GET("/:id", reorderHandler.Get)
	admin.PUT("/:id", reorderHandler.Update)
	admin.DELETE("/:id", reorderHandler.Delete)
}
