package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"rebuy/internal/usecase"
	"rebuy/pkg/response"
	"rebuy/pkg/utils"
)

type OfferHandler struct {
	offerUseCase *usecase.OfferUseCase
}

func NewOfferHandler(offerUseCase *usecase.OfferUseCase) *OfferHandler {
	return &OfferHandler{offerUseCase: offerUseCase}
}

type offerRequest struct {
	StockID      string  `json:"stock_id" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice    float64 `json:"unit_price" validate:"required,gt=0"`
	DeliveryDate string  `json:"delivery_date" validate:"required"`
	Note         string  `json:"note"`
}

func (r offerRequest) toInput() (usecase.OfferInput, error) {
	deliveryDate, err := utils.ParseDate(r.DeliveryDate)
	if err != nil {
		return usecase.OfferInput{}, err
	}

	return usecase.OfferInput{
		StockID:      r.StockID,
		Quantity:     r.Quantity,
		UnitPrice:    r.UnitPrice,
		DeliveryDate: deliveryDate,
		Note:         r.Note,
	}, nil
}

func (h *OfferHandler) Create(c echo.Context) error {
	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.Error(c, err)
	}

	supplierID := c.Get("uid").(string)

	offer, err := h.offerUseCase.Create(c.Request().Context(), supplierID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, offer)
}

func (h *OfferHandler) ListMine(c echo.Context) error {
	supplierID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	offers, total, err := h.offerUseCase.ListMine(c.Request().Context(), supplierID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, offers, total, params.Page, params.PageSize)
}

func (h *OfferHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	offers, total, err := h.offerUseCase.List(c.Request().Context(), c.QueryParam("status"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, offers, total, params.Page, params.PageSize)
}

func (h *OfferHandler) Get(c echo.Context) error {
	offer, err := h.offerUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, offer)
}

func (h *OfferHandler) Update(c echo.Context) error {
	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.Error(c, err)
	}

	supplierID := c.Get("uid").(string)

	offer, err := h.offerUseCase.Update(c.Request().Context(), supplierID, c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, offer)
}

func (h *OfferHandler) Delete(c echo.Context) error {
	supplierID := c.Get("uid").(string)

	if err := h.offerUseCase.Delete(c.Request().Context(), supplierID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Offer deleted"})
}

type decideOfferRequest struct {
	Decision string `json:"decision" validate:"required,oneof=Approved Rejected"`
	Note     string `json:"note"`
}

func (h *OfferHandler) Decide(c echo.Context) error {
	var req decideOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminID := c.Get("admin_id").(string)

	offer, err := h.offerUseCase.Decide(c.Request().Context(), adminID, c.Param("id"), req.Decision, req.Note)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, offer)
}

func (h *OfferHandler) Quotation(c echo.Context) error {
	pdfBytes, err := h.offerUseCase.Quotation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=quotation-%s.pdf", c.Param("id")))
	return c.Blob(200, "application/pdf", pdfBytes)
}
