package router

import (
	"rebuy/internal/adapter/api/handler"
	"rebuy/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCheckoutRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	checkoutHandler := handler.GetCheckoutHandler()

	checkout := e.Group("/v1/checkout")
	checkout.Use(authMiddleware.Authenticate)
	checkout.POST("", checkoutHandler.Checkout)
	checkout.POST("/:orderId/slip", checkoutHandler.UploadSlip)
}
