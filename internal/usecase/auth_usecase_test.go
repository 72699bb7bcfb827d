package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"rebuy/internal/domain/entity"
	"rebuy/pkg/errors"
)

func authFixture(t *testing.T, google GoogleVerifier) (*AuthUseCase, *fakeUserRepo) {
	t.Helper()

	userRepo := newFakeUserRepo()
	return NewAuthUseCase(userRepo, fakeTokenGenerator{}, google), userRepo
}

func TestRegisterBuyer(t *testing.T) {
	uc, userRepo := authFixture(t, fakeGoogleVerifier{})

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:      "nimal@example.com",
		Password:   "s3cret",
		FirstName:  "Nimal",
		LastName:   "Perera",
		Role:       "buyer",
		PostalCode: "20000",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "local", result.User.Provider)
	assert.Equal(t, "active", result.User.Status)
	assert.NotEqual(t, "s3cret", result.User.PasswordHash)

	stored, err := userRepo.GetByEmail(context.Background(), "nimal@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestRegisterBuyerRequiresPostalCode(t *testing.T) {
	uc, _ := authFixture(t, fakeGoogleVerifier{})

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "nimal@example.com",
		Password: "s3cret",
		Role:     "buyer",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRegisterSupplierRequiresCompanyAndPhone(t *testing.T) {
	uc, _ := authFixture(t, fakeGoogleVerifier{})

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "kamala@example.com",
		Password: "s3cret",
		Role:     "supplier",
		Phone:    "0771234567",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.Register(context.Background(), RegisterInput{
		Email:       "kamala@example.com",
		Password:    "s3cret",
		Role:        "supplier",
		CompanyName: "Kamala Traders",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:       "kamala@example.com",
		Password:    "s3cret",
		Role:        "supplier",
		CompanyName: "Kamala Traders",
		Phone:       "0771234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "supplier", result.User.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := authFixture(t, fakeGoogleVerifier{})

	input := RegisterInput{
		Email:      "nimal@example.com",
		Password:   "s3cret",
		Role:       "buyer",
		PostalCode: "20000",
	}

	_, err := uc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), input)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestLogin(t *testing.T) {
	uc, _ := authFixture(t, fakeGoogleVerifier{})

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:      "nimal@example.com",
		Password:   "s3cret",
		Role:       "buyer",
		PostalCode: "20000",
	})
	require.NoError(t, err)

	result, err := uc.Login(context.Background(), "nimal@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	_, err = uc.Login(context.Background(), "nimal@example.com", "wrong")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	_, err = uc.Login(context.Background(), "missing@example.com", "s3cret")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginDisabledAccount(t *testing.T) {
	uc, userRepo := authFixture(t, fakeGoogleVerifier{})

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	userRepo.users["user-1"] = &entity.User{
		ID:           "user-1",
		Email:        "nimal@example.com",
		PasswordHash: string(hash),
		Status:       "disabled",
	}

	_, err = uc.Login(context.Background(), "nimal@example.com", "s3cret")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestGoogleLoginCreatesBuyerOnFirstLogin(t *testing.T) {
	uc, userRepo := authFixture(t, fakeGoogleVerifier{
		email:     "saman@example.com",
		firstName: "Saman",
		lastName:  "Silva",
	})

	result, err := uc.GoogleLogin(context.Background(), "id-token")
	require.NoError(t, err)

	assert.Equal(t, "buyer", result.User.Role)
	assert.Equal(t, "google", result.User.Provider)
	// Social accounts skip the role-conditional profile requirements.
	assert.Empty(t, result.User.PostalCode)

	// Second login matches by email instead of creating another account.
	again, err := uc.GoogleLogin(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, again.User.ID)
	assert.Len(t, userRepo.users, 1)
}

func TestGoogleLoginInvalidToken(t *testing.T) {
	uc, _ := authFixture(t, fakeGoogleVerifier{err: errors.Unauthorized("bad token", nil)})

	_, err := uc.GoogleLogin(context.Background(), "garbage")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}
