package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"hotel-backoffice/internal/authz"
	"hotel-backoffice/internal/repositories"
	apperrors "hotel-backoffice/pkg/errors"
)

type ARInvoiceService struct {
	BaseService
	invoiceRepo repositories.ARInvoiceRepositoryInterface
}

func NewARInvoiceService(invoiceRepo repositories.ARInvoiceRepositoryInterface, logger *zap.Logger) *ARInvoiceService {
	return &ARInvoiceService{
		BaseService: NewBaseService(logger),
		invoiceRepo: invoiceRepo,
	}
}

// DeleteInvoice: доступ → инвойс существует → не закрыт → нет платежей → удаление.
func (s *ARInvoiceService) DeleteInvoice(ctx context.Context, businessUnitID, invoiceID string) error {
	if _, err := s.Authorize(ctx, businessUnitID, authz.AssignedOnly); err != nil {
		return err
	}

	invoice, err := s.invoiceRepo.FindInvoiceWithApplications(ctx, businessUnitID, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Invoice not found")
		}
		return err
	}

	if err := invoice.CanBeDeleted(); err != nil {
		s.logger.Info("Удаление инвойса отклонено",
			zap.String("invoiceID", invoiceID),
			zap.String("status", string(invoice.Status)),
			zap.Int("applications", len(invoice.Applications)),
		)
		return err
	}

	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Invoice not found")
		}
		return err
	}

	s.logger.Info("Инвойс удалён", zap.String("invoiceID", invoiceID), zap.String("businessUnitID", businessUnitID))
	return nil
}
