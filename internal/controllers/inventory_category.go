package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotel-backoffice/internal/services"
	"hotel-backoffice/pkg/utils"
)

const xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type InventoryCategoryController struct {
	categoryService *services.InventoryCategoryService
	listLogger      *zap.Logger
	exportLogger    *zap.Logger
}

func NewInventoryCategoryController(categoryService *services.InventoryCategoryService, logger *zap.Logger) *InventoryCategoryController {
	return &InventoryCategoryController{
		categoryService: categoryService,
		listLogger:      logger.With(zap.String("handler", "INVENTORY_CATEGORIES_GET")),
		exportLogger:    logger.With(zap.String("handler", "INVENTORY_CATEGORIES_EXPORT")),
	}
}

func (c *InventoryCategoryController) GetCategories(ctx echo.Context) error {
	businessUnitID, err := bindBusinessUnitHeader(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.listLogger)
	}

	categories, err := c.categoryService.GetCategories(ctx.Request().Context(), businessUnitID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.listLogger)
	}

	return ctx.JSON(http.StatusOK, categories)
}

func (c *InventoryCategoryController) ExportCategories(ctx echo.Context) error {
	businessUnitID, err := bindBusinessUnitHeader(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.exportLogger)
	}

	buf, err := c.categoryService.ExportCategories(ctx.Request().Context(), businessUnitID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.exportLogger)
	}

	filename := fmt.Sprintf("inventory-categories-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK, xlsxMimeType, buf.Bytes())
}
