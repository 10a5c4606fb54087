package controllers

import (
	"strings"

	"github.com/labstack/echo/v4"

	"hotel-backoffice/internal/dto"
	apperrors "hotel-backoffice/pkg/errors"
)

var binder = &echo.DefaultBinder{}

// bindBusinessUnitHeader — бизнес-юнит из обязательного заголовка x-business-unit-id.
func bindBusinessUnitHeader(ctx echo.Context) (string, error) {
	var h dto.BusinessUnitHeader
	if err := binder.BindHeaders(ctx, &h); err != nil {
		return "", apperrors.NewBadRequestError("Invalid headers")
	}
	if err := ctx.Validate(&h); err != nil {
		return "", apperrors.NewBadRequestError("Missing required header: " + dto.HeaderBusinessUnitID)
	}
	return normalizeID(h.BusinessUnitID), nil
}

// normalizeID приводит идентификатор к виду, в котором его хранит БД.
func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// bindPath — параметры пути в структуру + валидация тегов.
func bindPath(ctx echo.Context, dest interface{}, message string) error {
	if err := binder.BindPathParams(ctx, dest); err != nil {
		return apperrors.NewBadRequestError(message)
	}
	if err := ctx.Validate(dest); err != nil {
		return apperrors.NewBadRequestError(message)
	}
	return nil
}
