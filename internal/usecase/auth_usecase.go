package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
	"rebuy/pkg/errors"
	"rebuy/pkg/logger"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenGenerator
	google   GoogleVerifier
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenGenerator, google GoogleVerifier) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		google:   google,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Role        string
	Phone       string
	Address     string
	City        string
	PostalCode  string
	CompanyName string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Role-conditional requirements: buyers ship to a postal address,
	// suppliers are contacted through a company.
	switch input.Role {
	case "buyer":
		if input.PostalCode == "" {
			return nil, errors.BadRequest("Postal code is required for buyers", nil)
		}
	case "supplier":
		if input.CompanyName == "" {
			return nil, errors.BadRequest("Company name is required for suppliers", nil)
		}
		if input.Phone == "" {
			return nil, errors.BadRequest("Phone is required for suppliers", nil)
		}
	default:
		return nil, errors.BadRequest("Role must be buyer or supplier", nil)
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		Provider:     "local",
		Phone:        input.Phone,
		Address:      input.Address,
		City:         input.City,
		PostalCode:   input.PostalCode,
		CompanyName:  input.CompanyName,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.Debug("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	if user.Status != "active" {
		return nil, errors.Forbidden("Account is disabled", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	token, err := uc.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

// GoogleLogin verifies a Google ID token and signs the matching user in,
// creating a buyer account on first login. Socially created accounts skip
// the role-conditional profile requirements.
func (uc *AuthUseCase) GoogleLogin(ctx context.Context, idToken string) (*AuthResult, error) {
	email, firstName, lastName, err := uc.google.VerifyIDToken(idToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid Google ID token", err)
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}

		now := time.Now()
		user = &entity.User{
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
			Role:      "buyer",
			Provider:  "google",
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		logger.Info("Created user %s from Google sign-in", user.ID)
	}

	if user.Status != "active" {
		return nil, errors.Forbidden("Account is disabled", nil)
	}

	token, err := uc.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}
