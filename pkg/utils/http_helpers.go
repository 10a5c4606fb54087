package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "hotel-backoffice/pkg/errors"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

const internalErrorMessage = "Internal server error"

type knownError struct {
	err     error
	code    int
	message string
}

// Порядок важен: проверяется сверху вниз, первое совпадение побеждает.
var knownErrors = []knownError{
	{apperrors.ErrEmptyAuthHeader, http.StatusUnauthorized, "Unauthorized"},
	{apperrors.ErrInvalidAuthHeader, http.StatusUnauthorized, "Unauthorized"},
	{apperrors.ErrInvalidToken, http.StatusUnauthorized, "Unauthorized"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, "Unauthorized"},
	{apperrors.ErrTokenNotYetValid, http.StatusUnauthorized, "Unauthorized"},
	{apperrors.ErrInvalidSigningMethod, http.StatusUnauthorized, "Unauthorized"},
	{apperrors.ErrSessionNotFoundInContext, http.StatusUnauthorized, "Unauthorized"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
	{apperrors.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{apperrors.ErrInvoiceClosed, http.StatusBadRequest, "Cannot delete closed invoice"},
	{apperrors.ErrInvoiceHasPayments, http.StatusBadRequest, "Cannot delete invoice with payments applied"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, "Bad request"},
	{apperrors.ErrNotFound, http.StatusNotFound, "Not found"},
	{apperrors.ErrConflict, http.StatusConflict, "Record is in use by other records"},
	{apperrors.ErrAlreadyExists, http.StatusConflict, "Record already exists"},
}

// ResolveError переводит ошибку в (статус, сообщение для клиента).
// Неизвестные ошибки — 500 без подробностей.
func ResolveError(err error) (int, string) {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", e.Field(), e.Tag()))
		}
		return http.StatusBadRequest, "Validation error: " + strings.Join(msgs, "; ")
	}

	for _, k := range knownErrors {
		if errors.Is(err, k.err) {
			return k.code, k.message
		}
	}

	return http.StatusInternalServerError, internalErrorMessage
}

// ErrorResponse отвечает клиенту JSON-ом {status:false, message}. 5xx пишутся в лог
// логгером обработчика (у него уже есть тег handler), наружу уходит только общее сообщение.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	code, message := ResolveError(err)
	logError(c, err, code, logger)

	response := map[string]interface{}{
		"status":  false,
		"message": message,
	}

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) && httpErr.Details != nil {
		response["body"] = httpErr.Details
	}

	return c.JSON(code, response)
}

// TextErrorResponse — то же, но телом идёт plain text (ответы удаления единиц измерения).
func TextErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	code, message := ResolveError(err)
	logError(c, err, code, logger)
	return c.String(code, message)
}

func logError(c echo.Context, err error, code int, logger *zap.Logger) {
	fields := []zap.Field{
		zap.Int("code", code),
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.String("request_id", GetRequestIDFromCtx(c.Request().Context())),
		zap.Error(err),
	}

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) && httpErr.Context != nil {
		fields = append(fields, zap.Any("context", httpErr.Context))
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unexpected Error", fields...)
		return
	}
	logger.Debug("HTTP Error", fields...)
}
