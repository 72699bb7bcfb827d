package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
	"rebuy/pkg/errors"
)

type AdminUseCase struct {
	adminRepo repository.AdminRepository
	tokens    TokenGenerator
}

func NewAdminUseCase(adminRepo repository.AdminRepository, tokens TokenGenerator) *AdminUseCase {
	return &AdminUseCase{
		adminRepo: adminRepo,
		tokens:    tokens,
	}
}

type AdminAuthResult struct {
	Admin *entity.Admin
	Token string
}

func (uc *AdminUseCase) Login(ctx context.Context, email, password string) (*AdminAuthResult, error) {
	admin, err := uc.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	if admin.Status != "active" {
		return nil, errors.Forbidden("Admin account is disabled", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	now := time.Now()
	admin.LastLoginAt = &now
	if err := uc.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(admin.ID, admin.Role)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AdminAuthResult{
		Admin: admin,
		Token: token,
	}, nil
}

type CreateAdminInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// CreateAdmin is restricted to super_admin callers (enforced in middleware).
func (uc *AdminUseCase) CreateAdmin(ctx context.Context, input CreateAdminInput) (*entity.Admin, error) {
	existing, err := uc.adminRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.BadRequest("Admin email already in use", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	admin := &entity.Admin{
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Role:         input.Role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

func (uc *AdminUseCase) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	return uc.adminRepo.GetByID(ctx, id)
}

func (uc *AdminUseCase) ListAdmins(ctx context.Context, limit, offset int) ([]*entity.Admin, int64, error) {
	return uc.adminRepo.List(ctx, limit, offset)
}

// SetStatus enables or disables an admin account. A super_admin cannot
// disable itself.
func (uc *AdminUseCase) SetStatus(ctx context.Context, callerID, adminID, status string) (*entity.Admin, error) {
	if callerID == adminID {
		return nil, errors.BadRequest("Cannot change the status of your own account", nil)
	}

	admin, err := uc.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	admin.Status = status
	if err := uc.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

func (uc *AdminUseCase) DeleteAdmin(ctx context.Context, callerID, adminID string) error {
	if callerID == adminID {
		return errors.BadRequest("Cannot delete your own account", nil)
	}
	return uc.adminRepo.Delete(ctx, adminID)
}
