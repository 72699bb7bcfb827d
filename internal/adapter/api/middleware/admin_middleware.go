package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"rebuy/internal/domain/repository"
	"rebuy/internal/infrastructure/token"
)

// AdminMiddleware verifies tokens from the admin namespace. Admin tokens are
// signed with a separate secret, so a user token never passes here.
type AdminMiddleware struct {
	tokens    *token.Manager
	adminRepo repository.AdminRepository
}

func NewAdminMiddleware(tokens *token.Manager, adminRepo repository.AdminRepository) *AdminMiddleware {
	return &AdminMiddleware{
		tokens:    tokens,
		adminRepo: adminRepo,
	}
}

func (m *AdminMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		adminID, role, err := m.tokens.Verify(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		// A disabled admin keeps a valid token until it expires; check the
		// status flag on every request.
		admin, err := m.adminRepo.GetByID(c.Request().Context(), adminID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Admin account not found")
		}
		if admin.Status != "active" {
			return echo.NewHTTPError(http.StatusForbidden, "Admin account is disabled")
		}

		c.Set("admin_id", adminID)
		c.Set("admin_role", role)

		return next(c)
	}
}

func (m *AdminMiddleware) SuperAdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get("admin_role").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}
		if role != "super_admin" {
			return echo.NewHTTPError(http.StatusForbidden, "Super admin privileges required")
		}
		return next(c)
	}
}
