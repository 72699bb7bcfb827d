package handler

import (
	"github.com/labstack/echo/v4"

	"rebuy/internal/domain/entity"
	"rebuy/internal/usecase"
	"rebuy/pkg/response"
	"rebuy/pkg/utils"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type adminAuthResponse struct {
	Token string        `json:"token"`
	Admin *entity.Admin `json:"admin"`
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.adminUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, adminAuthResponse{
		Token: result.Token,
		Admin: result.Admin,
	})
}

func (h *AdminHandler) Me(c echo.Context) error {
	adminID := c.Get("admin_id").(string)

	admin, err := h.adminUseCase.GetByID(c.Request().Context(), adminID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, admin)
}

type createAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin super_admin"`
}

func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	admin, err := h.adminUseCase.CreateAdmin(c.Request().Context(), usecase.CreateAdminInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, admin)
}

func (h *AdminHandler) ListAdmins(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	admins, total, err := h.adminUseCase.ListAdmins(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, admins, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) SetStatus(c echo.Context) error {
	id := c.Param("id")

	var req struct {
		Status string `json:"status" validate:"required,oneof=active disabled"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	callerID := c.Get("admin_id").(string)

	admin, err := h.adminUseCase.SetStatus(c.Request().Context(), callerID, id, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, admin)
}

func (h *AdminHandler) DeleteAdmin(c echo.Context) error {
	id := c.Param("id")
	callerID := c.Get("admin_id").(string)

	if err := h.adminUseCase.DeleteAdmin(c.Request().Context(), callerID, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Admin deleted"})
}
