package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/service"
	"rebuy/pkg/errors"
)

type fakeOfferRepo struct {
	offers map[string]*entity.SupplierOffer
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: map[string]*entity.SupplierOffer{}}
}

func (r *fakeOfferRepo) Create(ctx context.Context, offer *entity.SupplierOffer) error {
	if offer.ID == "" {
		offer.ID = fmt.Sprintf("offer-%d", len(r.offers)+1)
	}
	r.offers[offer.ID] = offer
	return nil
}

func (r *fakeOfferRepo) GetByID(ctx context.Context, id string) (*entity.SupplierOffer, error) {
	offer, ok := r.offers[id]
	if !ok {
		return nil, errors.NotFound("Offer", nil)
	}
	return offer, nil
}

func (r *fakeOfferRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.SupplierOffer, int64, error) {
	var out []*entity.SupplierOffer
	for _, offer := range r.offers {
		if status == "" || offer.Status == status {
			out = append(out, offer)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOfferRepo) ListBySupplierID(ctx context.Context, supplierID string, limit, offset int) ([]*entity.SupplierOffer, int64, error) {
	var out []*entity.SupplierOffer
	for _, offer := range r.offers {
		if offer.SupplierID == supplierID {
			out = append(out, offer)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOfferRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	for _, offer := range r.offers {
		if offer.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeOfferRepo) Update(ctx context.Context, offer *entity.SupplierOffer) error {
	if _, ok := r.offers[offer.ID]; !ok {
		return errors.NotFound("Offer", nil)
	}
	r.offers[offer.ID] = offer
	return nil
}

func (r *fakeOfferRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.offers[id]; !ok {
		return errors.NotFound("Offer", nil)
	}
	delete(r.offers, id)
	return nil
}

func offerFixture(t *testing.T) (*OfferUseCase, *fakeOfferRepo, *fakeStockRepo) {
	t.Helper()

	offerRepo := newFakeOfferRepo()
	stockRepo := newFakeStockRepo()
	userRepo := newFakeUserRepo()

	stockRepo.stocks["stock-1"] = &entity.Stock{ID: "stock-1", Name: "Used phone", Quantity: 5}
	userRepo.users["supplier-1"] = &entity.User{
		ID:          "supplier-1",
		Role:        "supplier",
		FirstName:   "Kamala",
		LastName:    "Silva",
		CompanyName: "Kamala Traders",
	}

	uc := NewOfferUseCase(offerRepo, stockRepo, userRepo, service.NewPDFService("ReBuy.lk"))
	return uc, offerRepo, stockRepo
}

func makeOffer(t *testing.T, uc *OfferUseCase) *entity.SupplierOffer {
	t.Helper()

	offer, err := uc.Create(context.Background(), "supplier-1", OfferInput{
		StockID:      "stock-1",
		Quantity:     20,
		UnitPrice:    9500,
		DeliveryDate: time.Now().AddDate(0, 0, 14),
	})
	require.NoError(t, err)
	return offer
}

func TestOfferCreateSnapshotsStockName(t *testing.T) {
	uc, _, _ := offerFixture(t)

	offer := makeOffer(t, uc)
	assert.Equal(t, "Used phone", offer.StockName)
	assert.Equal(t, entity.OfferStatusPending, offer.Status)
	assert.Equal(t, 190000.0, offer.Total())
}

func TestOfferApprovalAddsStock(t *testing.T) {
	uc, _, stockRepo := offerFixture(t)
	offer := makeOffer(t, uc)

	decided, err := uc.Decide(context.Background(), "admin-1", offer.ID, entity.OfferStatusApproved, "Good price")
	require.NoError(t, err)

	assert.Equal(t, entity.OfferStatusApproved, decided.Status)
	require.NotNil(t, decided.Decision)
	assert.Equal(t, "admin-1", decided.Decision.DecidedBy)
	assert.Equal(t, 25, stockRepo.stocks["stock-1"].Quantity)
}

func TestOfferRejectionLeavesStock(t *testing.T) {
	uc, _, stockRepo := offerFixture(t)
	offer := makeOffer(t, uc)

	decided, err := uc.Decide(context.Background(), "admin-1", offer.ID, entity.OfferStatusRejected, "Too expensive")
	require.NoError(t, err)

	assert.Equal(t, entity.OfferStatusRejected, decided.Status)
	assert.Equal(t, 5, stockRepo.stocks["stock-1"].Quantity)
}

func TestOfferCannotBeDecidedTwice(t *testing.T) {
	uc, _, _ := offerFixture(t)
	offer := makeOffer(t, uc)

	_, err := uc.Decide(context.Background(), "admin-1", offer.ID, entity.OfferStatusApproved, "")
	require.NoError(t, err)

	_, err = uc.Decide(context.Background(), "admin-1", offer.ID, entity.OfferStatusRejected, "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestOfferUpdateOnlyWhilePending(t *testing.T) {
	uc, _, _ := offerFixture(t)
	offer := makeOffer(t, uc)

	_, err := uc.Update(context.Background(), "supplier-2", offer.ID, OfferInput{Quantity: 1, UnitPrice: 1})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.Decide(context.Background(), "admin-1", offer.ID, entity.OfferStatusApproved, "")
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), "supplier-1", offer.ID, OfferInput{Quantity: 1, UnitPrice: 1})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	err = uc.Delete(context.Background(), "supplier-1", offer.ID)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestOfferQuotationPDF(t *testing.T) {
	uc, _, _ := offerFixture(t)
	offer := makeOffer(t, uc)

	pdfBytes, err := uc.Quotation(context.Background(), offer.ID)
	require.NoError(t, err)
	assert.True(t, len(pdfBytes) > 0)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
