package entities

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "hotel-backoffice/pkg/errors"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "DRAFT"
	InvoiceStatusOpen          InvoiceStatus = "OPEN"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusClosed        InvoiceStatus = "CLOSED"
	InvoiceStatusCancelled     InvoiceStatus = "CANCELLED"
)

type ARInvoice struct {
	ID             string
	BusinessUnitID string
	InvoiceNumber  string
	Status         InvoiceStatus
	TotalAmount    decimal.Decimal
	CreatedAt      time.Time

	Applications []ARPaymentApplication
}

// ARPaymentApplication — платёж, разнесённый на инвойс.
type ARPaymentApplication struct {
	ID        string
	InvoiceID string
	Amount    decimal.Decimal
	AppliedAt time.Time
}

// CanBeDeleted: удалять можно только незакрытый инвойс без разнесённых платежей.
func (i *ARInvoice) CanBeDeleted() error {
	if i.Status == InvoiceStatusClosed {
		return apperrors.ErrInvoiceClosed
	}
	if len(i.Applications) > 0 {
		return apperrors.ErrInvoiceHasPayments
	}
	return nil
}
