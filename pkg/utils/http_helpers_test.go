package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	apperrors "hotel-backoffice/pkg/errors"
)

func TestResolveError(t *testing.T) {
	type payload struct {
		ID string `validate:"required"`
	}
	validationErr := validator.New().Struct(payload{})

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"HttpError как есть", apperrors.NewConflictError("in use"), http.StatusConflict, "in use"},
		{"обёрнутая HttpError", fmt.Errorf("ctx: %w", apperrors.NewNotFoundError("Invoice not found")), http.StatusNotFound, "Invoice not found"},
		{"истёкший токен", apperrors.ErrTokenExpired, http.StatusUnauthorized, "Unauthorized"},
		{"неверный логин", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
		{"закрытый счёт", apperrors.ErrInvoiceClosed, http.StatusBadRequest, "Cannot delete closed invoice"},
		{"счёт с оплатами", apperrors.ErrInvoiceHasPayments, http.StatusBadRequest, "Cannot delete invoice with payments applied"},
		{"конфликт из репозитория", fmt.Errorf("uom 1: %w", apperrors.ErrConflict), http.StatusConflict, "Record is in use by other records"},
		{"дубликат", apperrors.ErrAlreadyExists, http.StatusConflict, "Record already exists"},
		{"валидация", validationErr, http.StatusBadRequest, "Validation error: field 'ID' failed on 'required'"},
		{"неизвестная", errors.New("pq: relation does not exist"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := ResolveError(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestErrorResponse_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := ErrorResponse(c, errors.New("dial tcp 10.0.0.5:5432: connection refused"), zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":false,"message":"Internal server error"}`, rec.Body.String())
}

func TestTextErrorResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)

	err := TextErrorResponse(c, apperrors.NewConflictError("Cannot delete UoM: it is currently in use by other records"), zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Cannot delete UoM: it is currently in use by other records", rec.Body.String())
}
