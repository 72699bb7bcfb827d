package usecase

import (
	"context"
	"time"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
)

type FinanceUseCase struct {
	financeRepo repository.FinanceRepository
}

func NewFinanceUseCase(financeRepo repository.FinanceRepository) *FinanceUseCase {
	return &FinanceUseCase{
		financeRepo: financeRepo,
	}
}

type FinanceInput struct {
	Type        string
	Category    string
	Amount      float64
	Description string
	Date        time.Time
}

func (uc *FinanceUseCase) Create(ctx context.Context, adminID string, input FinanceInput) (*entity.FinanceEntry, error) {
	entry := &entity.FinanceEntry{
		Type:        input.Type,
		Category:    input.Category,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
		RecordedBy:  adminID,
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}

	if err := uc.financeRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (uc *FinanceUseCase) List(ctx context.Context, entryType string, from, to time.Time, limit, offset int) ([]*entity.FinanceEntry, int64, error) {
	return uc.financeRepo.List(ctx, entryType, from, to, limit, offset)
}

func (uc *FinanceUseCase) Update(ctx context.Context, id string, input FinanceInput) (*entity.FinanceEntry, error) {
	entry, err := uc.financeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Type = input.Type
	entry.Category = input.Category
	entry.Amount = input.Amount
	entry.Description = input.Description
	if !input.Date.IsZero() {
		entry.Date = input.Date
	}

	if err := uc.financeRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (uc *FinanceUseCase) Delete(ctx context.Context, id string) error {
	return uc.financeRepo.Delete(ctx, id)
}

func (uc *FinanceUseCase) Summary(ctx context.Context, from, to time.Time) (*entity.FinanceSummary, error) {
	income, err := uc.financeRepo.SumByType(ctx, entity.FinanceTypeIncome, from, to)
	if err != nil {
		return nil, err
	}

	expense, err := uc.financeRepo.SumByType(ctx, entity.FinanceTypeExpense, from, to)
	if err != nil {
		return nil, err
	}

	return &entity.FinanceSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income - expense,
	}, nil
}
