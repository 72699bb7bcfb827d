package handler

import (
	"github.com/labstack/echo/v4"

	"rebuy/internal/usecase"
	"rebuy/pkg/response"
	"rebuy/pkg/utils"
)

type FeedbackHandler struct {
	feedbackUseCase *usecase.FeedbackUseCase
}

func NewFeedbackHandler(feedbackUseCase *usecase.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{feedbackUseCase: feedbackUseCase}
}

type feedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Message string `json:"message" validate:"required,max=1000"`
}

func (h *FeedbackHandler) Create(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	feedback, err := h.feedbackUseCase.Create(c.Request().Context(), uid, req.Rating, req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, feedback)
}

func (h *FeedbackHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	items, total, err := h.feedbackUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, params.Page, params.PageSize)
}

func (h *FeedbackHandler) Update(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	feedback, err := h.feedbackUseCase.Update(c.Request().Context(), uid, c.Param("id"), req.Rating, req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, feedback)
}

// Delete is reachable from both the user and admin route groups; the
// owner check is skipped for admin callers.
func (h *FeedbackHandler) Delete(c echo.Context) error {
	var callerID string
	isAdmin := false

	if adminID, ok := c.Get("admin_id").(string); ok {
		callerID = adminID
		isAdmin = true
	} else {
		callerID = c.Get("uid").(string)
	}

	if err := h.feedbackUseCase.Delete(c.Request().Context(), callerID, isAdmin, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Feedback deleted"})
}
