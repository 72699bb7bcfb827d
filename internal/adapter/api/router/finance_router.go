package router

import (
	"rebuy/internal/adapter/api/handler"
	"rebuy/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupFinanceRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	financeHandler := handler.GetFinanceHandler()

	finance := e.Group("/v1/finance")
	finance.Use(adminMiddleware.Authenticate)
	finance.POST("", financeHandler.Create)
	finance.GET("", financeHandler.List)
	finance.GET("/summary", financeHandler.Summary)
	finance.PUT("/:id", financeHandler.Update)
	finance.DELETE("/:id", financeHandler.Delete)
}
