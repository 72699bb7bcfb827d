package router

import (
	"rebuy/internal/adapter/api/handler"
	"rebuy/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	e.GET("/v1/products", productHandler.ListProducts)
	e.GET("/v1/products/search", productHandler.SearchProducts)
	e.GET("/v1/products/:id", productHandler.GetProduct)

	admin := e.Group("/v1/admin/products")
	admin.Use(adminMiddleware.Authenticate)
	admin.POST("", productHandler.CreateProduct)
	admin.PUT("/:id", productHandler.UpdateProduct)
	admin.POST("/:id/image", productHandler.UploadImage)
	admin.DELETE("/:id", productHandler.DeleteProduct)
}
