package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotel-backoffice/internal/controllers"
	"hotel-backoffice/internal/repositories"
	"hotel-backoffice/internal/services"
)

func runARInvoiceRouter(secureGroup *echo.Group, dbConn repositories.Querier, logger *zap.Logger) {
	var (
		invoiceRepository = repositories.NewARInvoiceRepository(dbConn, logger)
		invoiceService    = services.NewARInvoiceService(invoiceRepository, logger)
		invoiceCtrl       = controllers.NewARInvoiceController(invoiceService, logger)
	)

	secureGroup.DELETE("/ar-invoices/:invoiceId", invoiceCtrl.DeleteInvoice)
}
