package usecase

import (
	"context"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
	"rebuy/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type UpdateProfileInput struct {
	FirstName   string
	LastName    string
	Phone       string
	Address     string
	City        string
	PostalCode  string
	CompanyName string
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone
	user.Address = input.Address
	user.City = input.City
	user.PostalCode = input.PostalCode
	if user.Role == "supplier" {
		user.CompanyName = input.CompanyName
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteAccount removes the caller's own account.
func (uc *UserUseCase) DeleteAccount(ctx context.Context, userID string) error {
	return uc.userRepo.Delete(ctx, userID)
}

// Admin operations

func (uc *UserUseCase) ListUsers(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, role, limit, offset)
}

func (uc *UserUseCase) DeleteUser(ctx context.Context, userID string) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return errors.NotFound("User", err)
	}
	return uc.userRepo.Delete(ctx, userID)
}
