package validation

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-backoffice/internal/dto"
)

func TestValidator_PathParams(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.ARInvoicePathParams{
		BusinessUnitID: "any-unit",
		InvoiceID:      "5d3c1e8a-9b7f-4a21-b6d4-3e2f1a0c9b11",
	}))
	assert.Error(t, v.Validate(&dto.ARInvoicePathParams{BusinessUnitID: "bu", InvoiceID: "42"}))
	assert.Error(t, v.Validate(&dto.ARInvoicePathParams{InvoiceID: "5d3c1e8a-9b7f-4a21-b6d4-3e2f1a0c9b11"}))
}

func TestValidator_BusinessUnitHeader(t *testing.T) {
	v := New()

	assert.Error(t, v.Validate(&dto.BusinessUnitHeader{}))
	assert.NoError(t, v.Validate(&dto.BusinessUnitHeader{BusinessUnitID: "bu-1"}))
}

func TestValidator_Login(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.LoginDTO{Username: "cashier.01", Password: "Password123!"}))
	assert.Error(t, v.Validate(&dto.LoginDTO{Username: "no spaces", Password: "Password123!"}))
	assert.Error(t, v.Validate(&dto.LoginDTO{Username: "cashier", Password: "123"}))
}

func TestValidator_PublicQueryOptional(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.PublicCatalogQuery{}))
	assert.Error(t, v.Validate(&dto.PublicCatalogQuery{BusinessUnitID: "oops"}))
}

func TestValidator_NullTypes(t *testing.T) {
	type note struct {
		Text null.String `json:"text" validate:"omitempty,max=5"`
		Ref  null.String `json:"ref" validate:"required"`
	}
	v := New()

	assert.NoError(t, v.Validate(&note{Ref: null.StringFrom("r")}))
	assert.NoError(t, v.Validate(&note{Text: null.StringFrom("short"), Ref: null.StringFrom("r")}))
	assert.Error(t, v.Validate(&note{Text: null.StringFrom("too long"), Ref: null.StringFrom("r")}))
	assert.Error(t, v.Validate(&note{}))
}

func TestValidator_WireFieldNames(t *testing.T) {
	err := New().Validate(&dto.ARInvoicePathParams{BusinessUnitID: "bu", InvoiceID: "42"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "invoiceId", verrs[0].Field())
	assert.Equal(t, "entity_id", verrs[0].Tag())
}
