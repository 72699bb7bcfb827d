package router

import (
	"rebuy/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	SetupAuthRouter(e, rateLimitMiddleware)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
	SetupAdminRouter(e, adminMiddleware, rateLimitMiddleware)
	SetupStockRouter(e, adminMiddleware)
	SetupProductRouter(e, adminMiddleware)
	SetupCartRouter(e, authMiddleware)
	SetupCheckoutRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware, adminMiddleware)
	SetupPaymentRouter(e, authMiddleware)
	SetupReorderRouter(e, authMiddleware, adminMiddleware)
	SetupOfferRouter(e, authMiddleware, adminMiddleware)
	SetupFeedbackRouter(e, authMiddleware, adminMiddleware)
	SetupFinanceRouter(e, adminMiddleware)
	SetupDashboardRouter(e, adminMiddleware)
	SetupHealthRouter(e)
}
