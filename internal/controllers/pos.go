package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotel-backoffice/internal/services"
	"hotel-backoffice/pkg/utils"
)

type POSController struct {
	posService *services.POSService
	logger     *zap.Logger
}

func NewPOSController(posService *services.POSService, logger *zap.Logger) *POSController {
	return &POSController{
		posService: posService,
		logger:     logger.With(zap.String("handler", "POS_MENU_ITEMS_GET")),
	}
}

func (c *POSController) GetMenuItems(ctx echo.Context) error {
	businessUnitID, err := bindBusinessUnitHeader(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	items, err := c.posService.GetMenuItems(ctx.Request().Context(), businessUnitID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, items)
}
