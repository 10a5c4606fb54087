package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token expired")
	ErrTokenNotYetValid     = fmt.Errorf("token is not valid yet")

	// Авторизация
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("invalid authorization header format")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUnauthorized       = fmt.Errorf("unauthorized")
	ErrForbidden          = fmt.Errorf("forbidden")

	// Контекст
	ErrSessionNotFoundInContext = fmt.Errorf("session not found in request context")

	// Общие
	ErrNotFound      = fmt.Errorf("record not found")
	ErrBadRequest    = fmt.Errorf("bad request")
	ErrConflict      = fmt.Errorf("record is referenced by other records")
	ErrAlreadyExists = fmt.Errorf("record already exists")

	// AR-инвойсы
	ErrInvoiceClosed      = fmt.Errorf("cannot delete closed invoice")
	ErrInvoiceHasPayments = fmt.Errorf("cannot delete invoice with payments applied")
)

// HttpError — ошибка, которая уже знает свой HTTP-статус.
// Message уходит клиенту, Err и Context только в лог.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message, Err: ErrBadRequest}
}

func NewForbiddenError(message string) *HttpError {
	return &HttpError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

func NewNotFoundError(message string) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

func NewConflictError(message string) *HttpError {
	return &HttpError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}
