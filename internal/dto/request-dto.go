package dto

// Параметры запроса. Бизнес-юнит берётся либо из пути, либо из обязательного
// заголовка x-business-unit-id — как объявлено у конкретного маршрута.

const HeaderBusinessUnitID = "x-business-unit-id"

type ARInvoicePathParams struct {
	BusinessUnitID string `param:"businessUnitId" validate:"required"`
	InvoiceID      string `param:"invoiceId" validate:"required,entity_id"`
}

type BusinessUnitHeader struct {
	BusinessUnitID string `header:"x-business-unit-id" validate:"required"`
}

type UoMPathParams struct {
	UoMID string `param:"uomId" validate:"required,entity_id"`
}

type PublicCatalogQuery struct {
	BusinessUnitID string `query:"businessUnitId" validate:"omitempty,entity_id"`
}
