package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotel-backoffice/internal/dto"
	"hotel-backoffice/internal/services"
	"hotel-backoffice/pkg/utils"
)

type UoMController struct {
	uomService   *services.UoMService
	listLogger   *zap.Logger
	deleteLogger *zap.Logger
}

func NewUoMController(uomService *services.UoMService, logger *zap.Logger) *UoMController {
	return &UoMController{
		uomService:   uomService,
		listLogger:   logger.With(zap.String("handler", "UOMS_GET")),
		deleteLogger: logger.With(zap.String("handler", "UOM_DELETE")),
	}
}

func (c *UoMController) GetUoMs(ctx echo.Context) error {
	businessUnitID, err := bindBusinessUnitHeader(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.listLogger)
	}

	uoms, err := c.uomService.GetUoMs(ctx.Request().Context(), businessUnitID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.listLogger)
	}

	return ctx.JSON(http.StatusOK, uoms)
}

// DeleteUoM отвечает plain text и на успех (200), и на конфликт (409).
func (c *UoMController) DeleteUoM(ctx echo.Context) error {
	businessUnitID, err := bindBusinessUnitHeader(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.deleteLogger)
	}

	var params dto.UoMPathParams
	if err := bindPath(ctx, &params, "UoM ID is required"); err != nil {
		return utils.ErrorResponse(ctx, err, c.deleteLogger)
	}

	if err := c.uomService.DeleteUoM(ctx.Request().Context(), businessUnitID, params.UoMID); err != nil {
		code, _ := utils.ResolveError(err)
		if code == http.StatusConflict {
			return utils.TextErrorResponse(ctx, err, c.deleteLogger)
		}
		return utils.ErrorResponse(ctx, err, c.deleteLogger)
	}

	return ctx.String(http.StatusOK, services.UoMDeletedMessage)
}
