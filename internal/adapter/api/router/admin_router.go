package router

import (
	"rebuy/internal/adapter/api/handler"
	"rebuy/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAdminRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	adminHandler := handler.GetAdminHandler()

	e.POST("/v1/admin/auth/login", adminHandler.Login, rateLimitMiddleware.Limit("login"))

	admin := e.Group("/v1/admin")
	admin.Use(adminMiddleware.Authenticate)
	admin.GET("/me", adminHandler.Me)

	super := admin.Group("/admins")
	super.Use(adminMiddleware.SuperAdminOnly)
	super.POST("", adminHandler.CreateAdmin)
	super.GET("", adminHandler.ListAdmins)
	super.PATCH("/:id/status", adminHandler.SetStatus)
	super.DELETE("/:id", adminHandler.DeleteAdmin)
}
