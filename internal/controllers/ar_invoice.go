package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotel-backoffice/internal/dto"
	"hotel-backoffice/internal/services"
	"hotel-backoffice/pkg/utils"
)

type ARInvoiceController struct {
	invoiceService *services.ARInvoiceService
	logger         *zap.Logger
}

func NewARInvoiceController(invoiceService *services.ARInvoiceService, logger *zap.Logger) *ARInvoiceController {
	return &ARInvoiceController{
		invoiceService: invoiceService,
		logger:         logger.With(zap.String("handler", "AR_INVOICE_DELETE")),
	}
}

func (c *ARInvoiceController) DeleteInvoice(ctx echo.Context) error {
	var params dto.ARInvoicePathParams
	if err := bindPath(ctx, &params, "Business unit ID and invoice ID are required"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	businessUnitID := normalizeID(params.BusinessUnitID)
	if err := c.invoiceService.DeleteInvoice(ctx.Request().Context(), businessUnitID, normalizeID(params.InvoiceID)); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
