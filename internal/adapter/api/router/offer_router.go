package router

import (
	"rebuy/internal/adapter/api/handler"
	"rebuy/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOfferRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	offerHandler := handler.GetOfferHandler()

	supplier := e.Group("/v1/offers")
	supplier.Use(authMiddleware.Authenticate)
	supplier.Use(authMiddleware.RequireRole("supplier"))
	supplier.POST("", offerHandler.Create)
	supplier.GET("/mine", offerHandler.ListMine)
	supplier.GET("/:id", offerHandler.Get)
	supplier.PUT("/:id", offerHandler.Update)
	supplier.DELETE("/:id", offerHandler.Delete)
	supplier.GET("/:id/quotation", offerHandler.Quotation)

	admin := e.Group("/v1/admin/offers")
	admin.Use(adminMiddleware.Authenticate)
	admin.GET("", offerHandler.List)
	admin.GET("/:id", offerHandler.Get)
	admin.POST("/:id/decision", offerHandler.Decide)
	admin.GET("/:id/quotation", offerHandler.Quotation)
}
