package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-backoffice/internal/entities"
	apperrors "hotel-backoffice/pkg/errors"
)

var invoiceColumns = []string{"id", "business_unit_id", "invoice_number", "status", "total_amount", "created_at"}

func TestARInvoiceRepository_FindInvoiceWithApplications(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM ar_invoices AS i WHERE`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(invoiceColumns).
			AddRow("inv-1", "bu-1", "INV-0003", "PARTIALLY_PAID", decimal.RequireFromString("3000.00"), created))
	mock.ExpectQuery(`SELECT (.+) FROM ar_payment_applications AS a WHERE (.+) ORDER BY a.applied_at ASC`).
		WithArgs("inv-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "invoice_id", "amount", "applied_at"}).
			AddRow("pay-1", "inv-1", decimal.RequireFromString("1000.00"), created.Add(time.Hour)))

	repo := NewARInvoiceRepository(mock, zap.NewNop())
	inv, err := repo.FindInvoiceWithApplications(context.Background(), "bu-1", "inv-1")

	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusPartiallyPaid, inv.Status)
	assert.Equal(t, "3000", inv.TotalAmount.String())
	require.Len(t, inv.Applications, 1)
	assert.Equal(t, "1000", inv.Applications[0].Amount.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestARInvoiceRepository_FindInvoice_NoApplications(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectQuery(`FROM ar_invoices`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(invoiceColumns).
			AddRow("inv-1", "bu-1", "INV-0001", "DRAFT", decimal.RequireFromString("10.50"), time.Now()))
	mock.ExpectQuery(`FROM ar_payment_applications`).
		WithArgs("inv-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "invoice_id", "amount", "applied_at"}))

	inv, err := NewARInvoiceRepository(mock, zap.NewNop()).
		FindInvoiceWithApplications(context.Background(), "bu-1", "inv-1")

	require.NoError(t, err)
	assert.NotNil(t, inv.Applications)
	assert.Empty(t, inv.Applications)
	assert.NoError(t, inv.CanBeDeleted())
}

func TestARInvoiceRepository_FindInvoice_NotFound(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectQuery(`FROM ar_invoices`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	_, err = NewARInvoiceRepository(mock, zap.NewNop()).
		FindInvoiceWithApplications(context.Background(), "bu-2", "inv-1")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestARInvoiceRepository_DeleteInvoice(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectExec(`DELETE FROM ar_invoices`).WithArgs("inv-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM ar_invoices`).WithArgs("inv-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewARInvoiceRepository(mock, zap.NewNop())

	assert.NoError(t, repo.DeleteInvoice(context.Background(), "inv-1"))
	// повторное удаление того же счёта
	assert.ErrorIs(t, repo.DeleteInvoice(context.Background(), "inv-1"), apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
