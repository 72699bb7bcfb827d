package router

import (
	"rebuy/internal/adapter/api/handler"
	"rebuy/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupDashboardRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()

	admin := e.Group("/v1/admin/dashboard")
	admin.Use(adminMiddleware.Authenticate)
	admin.GET("", dashboardHandler.Stats)
}
