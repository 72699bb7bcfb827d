package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "rebuy/pkg/errors"
)

func testContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessEnvelope(t *testing.T) {
	c, rec := testContext(t)

	require.NoError(t, Success(c, map[string]string{"hello": "world"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"hello":"world"`)
	assert.Contains(t, rec.Body.String(), `"timestamp"`)
}

func TestErrorMapsAppError(t *testing.T) {
	c, rec := testContext(t)

	require.NoError(t, Error(c, apperrors.NotFound("Order", nil)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	assert.Contains(t, rec.Body.String(), "Order not found")
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	c, rec := testContext(t)

	require.NoError(t, Error(c, assert.AnError))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestErrorTranslatesValidationErrors(t *testing.T) {
	c, rec := testContext(t)

	type input struct {
		Email string `validate:"required,email"`
	}
	err := validator.New().Struct(input{})
	require.Error(t, err)

	require.NoError(t, Error(c, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "email is required")
}

func TestPaginatedTotalPages(t *testing.T) {
	c, rec := testContext(t)

	require.NoError(t, Paginated(c, []string{"a", "b"}, 41, 1, 20))

	assert.Contains(t, rec.Body.String(), `"total":41`)
	assert.Contains(t, rec.Body.String(), `"totalPages":3`)
}
