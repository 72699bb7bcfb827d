package usecase

import (
	"context"
	"time"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
	"rebuy/internal/domain/service"
	"rebuy/pkg/errors"
	"rebuy/pkg/logger"
)

type OfferUseCase struct {
	offerRepo repository.OfferRepository
	stockRepo repository.StockRepository
	userRepo  repository.UserRepository
	pdf       *service.PDFService
}

func NewOfferUseCase(offerRepo repository.OfferRepository, stockRepo repository.StockRepository, userRepo repository.UserRepository, pdf *service.PDFService) *OfferUseCase {
	return &OfferUseCase{
		offerRepo: offerRepo,
		stockRepo: stockRepo,
		userRepo:  userRepo,
		pdf:       pdf,
	}
}

type OfferInput struct {
	StockID      string
	Quantity     int
	UnitPrice    float64
	DeliveryDate time.Time
	Note         string
}

func (uc *OfferUseCase) Create(ctx context.Context, supplierID string, input OfferInput) (*entity.SupplierOffer, error) {
	stock, err := uc.stockRepo.GetByID(ctx, input.StockID)
	if err != nil {
		return nil, err
	}

	offer := &entity.SupplierOffer{
		SupplierID:   supplierID,
		StockID:      stock.ID,
		StockName:    stock.Name,
		Quantity:     input.Quantity,
		UnitPrice:    input.UnitPrice,
		DeliveryDate: input.DeliveryDate,
		Note:         input.Note,
		Status:       entity.OfferStatusPending,
	}

	if err := uc.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}

	return offer, nil
}

func (uc *OfferUseCase) GetByID(ctx context.Context, id string) (*entity.SupplierOffer, error) {
	return uc.offerRepo.GetByID(ctx, id)
}

func (uc *OfferUseCase) List(ctx context.Context, status string, limit, offset int) ([]*entity.SupplierOffer, int64, error) {
	return uc.offerRepo.List(ctx, status, limit, offset)
}

func (uc *OfferUseCase) ListMine(ctx context.Context, supplierID string, limit, offset int) ([]*entity.SupplierOffer, int64, error) {
	return uc.offerRepo.ListBySupplierID(ctx, supplierID, limit, offset)
}

// Update is only allowed while the offer is pending and owned by the caller.
func (uc *OfferUseCase) Update(ctx context.Context, supplierID, id string, input OfferInput) (*entity.SupplierOffer, error) {
	offer, err := uc.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer.SupplierID != supplierID {
		return nil, errors.Forbidden("Offer belongs to another supplier", nil)
	}
	if offer.Status != entity.OfferStatusPending {
		return nil, errors.BadRequest("Only pending offers can be updated", nil)
	}

	offer.Quantity = input.Quantity
	offer.UnitPrice = input.UnitPrice
	offer.DeliveryDate = input.DeliveryDate
	offer.Note = input.Note

	if err := uc.offerRepo.Update(ctx, offer); err != nil {
		return nil, err
	}

	return offer, nil
}

func (uc *OfferUseCase) Delete(ctx context.Context, supplierID, id string) error {
	offer, err := uc.offerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if offer.SupplierID != supplierID {
		return errors.Forbidden("Offer belongs to another supplier", nil)
	}
	if offer.Status != entity.OfferStatusPending {
		return errors.BadRequest("Only pending offers can be deleted", nil)
	}

	return uc.offerRepo.Delete(ctx, id)
}

// Decide approves or rejects a pending offer. Approval appends the offered
// quantity to the stock item.
func (uc *OfferUseCase) Decide(ctx context.Context, adminID, id, decision, note string) (*entity.SupplierOffer, error) {
	offer, err := uc.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer.Status != entity.OfferStatusPending {
		return nil, errors.BadRequest("Offer has already been decided", nil)
	}

	switch decision {
	case entity.OfferStatusApproved, entity.OfferStatusRejected:
	default:
		return nil, errors.BadRequest("Decision must be Approved or Rejected", nil)
	}

	offer.Status = decision
	offer.Decision = &entity.OfferDecision{
		DecidedBy: adminID,
		DecidedAt: time.Now(),
		Note:      note,
	}

	if err := uc.offerRepo.Update(ctx, offer); err != nil {
		return nil, err
	}

	if decision == entity.OfferStatusApproved {
		if err := uc.stockRepo.AdjustQuantity(ctx, offer.StockID, offer.Quantity, false); err != nil {
			logger.Warn("Failed to add approved offer %s to stock %s: %v", offer.ID, offer.StockID, err)
		}
	}

	return offer, nil
}

// Quotation renders the offer as a PDF for download.
func (uc *OfferUseCase) Quotation(ctx context.Context, id string) ([]byte, error) {
	offer, err := uc.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier, err := uc.userRepo.GetByID(ctx, offer.SupplierID)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := uc.pdf.OfferQuotation(offer, supplier)
	if err != nil {
		return nil, errors.Internal("Failed to generate quotation", err)
	}

	return pdfBytes, nil
}
