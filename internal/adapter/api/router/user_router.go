package router

import (
	"rebuy/internal/adapter/api/handler"
	"rebuy/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.GET("/me", userHandler.Me)
	users.PUT("/me", userHandler.UpdateProfile)
	users.DELETE("/me", userHandler.DeleteAccount)

	admin := e.Group("/v1/admin/users")
	admin.Use(adminMiddleware.Authenticate)
	admin.GET("", userHandler.ListUsers)
	admin.DELETE("/:id", userHandler.DeleteUser)
}
