package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotel-backoffice/internal/dto"
	"hotel-backoffice/internal/services"
	"hotel-backoffice/pkg/utils"
)

// PublicController — эндпоинты маркетингового сайта, без авторизации.
type PublicController struct {
	catalogService      *services.PublicCatalogService
	businessUnitsLogger *zap.Logger
	accommodationLogger *zap.Logger
	servicesLogger      *zap.Logger
}

func NewPublicController(catalogService *services.PublicCatalogService, logger *zap.Logger) *PublicController {
	return &PublicController{
		catalogService:      catalogService,
		businessUnitsLogger: logger.With(zap.String("handler", "PUBLIC_BUSINESS_UNITS_GET")),
		accommodationLogger: logger.With(zap.String("handler", "PUBLIC_ACCOMMODATIONS_GET")),
		servicesLogger:      logger.With(zap.String("handler", "PUBLIC_SERVICES_GET")),
	}
}

func (c *PublicController) GetBusinessUnits(ctx echo.Context) error {
	units, err := c.catalogService.GetBusinessUnits(ctx.Request().Context())
	if err != nil {
		c.businessUnitsLogger.Error("Ошибка при получении списка бизнес-юнитов", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, dto.PublicErrorResponse{
			Success: false,
			Message: "Failed to fetch business units",
		})
	}

	return ctx.JSON(http.StatusOK, dto.PublicBusinessUnitsResponse{Success: true, Data: units})
}

func (c *PublicController) GetAccommodations(ctx echo.Context) error {
	var query dto.PublicCatalogQuery
	if err := bindPublicQuery(ctx, &query); err != nil {
		return utils.ErrorResponse(ctx, err, c.accommodationLogger)
	}

	list, err := c.catalogService.GetAccommodations(ctx.Request().Context(), query.BusinessUnitID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.accommodationLogger)
	}

	return ctx.JSON(http.StatusOK, list)
}

func (c *PublicController) GetServices(ctx echo.Context) error {
	var query dto.PublicCatalogQuery
	if err := bindPublicQuery(ctx, &query); err != nil {
		return utils.ErrorResponse(ctx, err, c.servicesLogger)
	}

	grouped, err := c.catalogService.GetServicesByCategory(ctx.Request().Context(), query.BusinessUnitID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.servicesLogger)
	}

	return ctx.JSON(http.StatusOK, grouped)
}

func bindPublicQuery(ctx echo.Context, query *dto.PublicCatalogQuery) error {
	if err := binder.BindQueryParams(ctx, query); err != nil {
		return err
	}
	return ctx.Validate(query)
}
