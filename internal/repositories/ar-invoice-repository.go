package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"hotel-backoffice/internal/entities"
	"hotel-backoffice/internal/infrastructure/bd"
	apperrors "hotel-backoffice/pkg/errors"
)

type ARInvoiceRepositoryInterface interface {
	FindInvoiceWithApplications(ctx context.Context, businessUnitID, invoiceID string) (*entities.ARInvoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

type ARInvoiceRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewARInvoiceRepository(storage Querier, logger *zap.Logger) ARInvoiceRepositoryInterface {
	return &ARInvoiceRepository{storage: storage, logger: logger}
}

// FindInvoiceWithApplications ищет инвойс в рамках бизнес-юнита вместе с разнесёнными платежами.
// Инвойс чужого бизнес-юнита для вызывающего не существует.
func (r *ARInvoiceRepository) FindInvoiceWithApplications(ctx context.Context, businessUnitID, invoiceID string) (*entities.ARInvoice, error) {
	query, args, err := bd.Psql().
		Select("i.id", "i.business_unit_id", "i.invoice_number", "i.status", "i.total_amount", "i.created_at").
		From("ar_invoices AS i").
		Where(sq.Eq{"i.id": invoiceID, "i.business_unit_id": businessUnitID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var inv entities.ARInvoice
	var status string
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&inv.ID, &inv.BusinessUnitID, &inv.InvoiceNumber, &status, &inv.TotalAmount, &inv.CreatedAt,
	)
	if err != nil {
		return nil, ClassifyError(err, "ar_invoice", invoiceID)
	}
	inv.Status = entities.InvoiceStatus(status)

	appQuery, appArgs, err := bd.Psql().
		Select("a.id", "a.invoice_id", "a.amount", "a.applied_at").
		From("ar_payment_applications AS a").
		Where(sq.Eq{"a.invoice_id": invoiceID}).
		OrderBy("a.applied_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, appQuery, appArgs...)
	if err != nil {
		return nil, ClassifyError(err, "ar_payment_applications", invoiceID)
	}
	defer rows.Close()

	inv.Applications = make([]entities.ARPaymentApplication, 0)
	for rows.Next() {
		var a entities.ARPaymentApplication
		if err := rows.Scan(&a.ID, &a.InvoiceID, &a.Amount, &a.AppliedAt); err != nil {
			return nil, err
		}
		inv.Applications = append(inv.Applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &inv, nil
}

func (r *ARInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM ar_invoices WHERE id = $1`, invoiceID)
	if err != nil {
		return ClassifyError(err, "ar_invoice", invoiceID)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
