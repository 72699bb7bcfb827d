package router

import (
	"rebuy/internal/adapter/api/handler"
	"rebuy/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	authHandler := handler.GetAuthHandler()

	e.POST("/v1/auth/register", authHandler.Register, rateLimitMiddleware.Limit("register"))
	e.POST("/v1/auth/login", authHandler.Login, rateLimitMiddleware.Limit("login"))
	e.POST("/v1/auth/google", authHandler.GoogleLogin, rateLimitMiddleware.Limit("login"))
}
