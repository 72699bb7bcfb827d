package router

import (
	"rebuy/internal/adapter/api/handler"
	"rebuy/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupFeedbackRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	feedbackHandler := handler.GetFeedbackHandler()

	e.GET("/v1/feedback", feedbackHandler.List)

	protected := e.Group("/v1/feedback")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("", feedbackHandler.Create)
	protected.PUT("/:id", feedbackHandler.Update)
	protected.DELETE("/:id", feedbackHandler.Delete)

	admin := e.Group("/v1/admin/feedback")
	admin.Use(adminMiddleware.Authenticate)
	admin.DELETE("/:id", feedbackHandler.Delete)
}
