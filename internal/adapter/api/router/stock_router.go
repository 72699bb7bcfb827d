package router

import (
	"rebuy/internal/adapter/api/handler"
	"rebuy/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupStockRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	stockHandler := handler.GetStockHandler()

	stock := e.Group("/v1/stock")
	stock.Use(adminMiddleware.Authenticate)
	stock.POST("", stockHandler.CreateStock)
	stock.GET("", stockHandler.ListStock)
	stock.GET("/low", stockHandler.ListLowStock)
	stock.GET("/:id", stockHandler.GetStock)
	stock.PUT("/:id", stockHandler.UpdateStock)
	stock.DELETE("/:id", stockHandler.DeleteStock)
}
