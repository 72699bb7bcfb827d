package handler

import (
	"github.com/labstack/echo/v4"

	"rebuy/internal/usecase"
	"rebuy/pkg/response"
)

type DashboardHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUseCase: dashboardUseCase}
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardUseCase.Stats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
