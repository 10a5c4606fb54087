package entities

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type MenuCategory struct {
	ID        string
	Name      string
	SortOrder int
}

type MenuItem struct {
	ID             string
	BusinessUnitID string
	CategoryID     string
	Name           string
	Description    null.String
	Price          decimal.Decimal
	ImageURL       null.String
	IsActive       bool

	Category *MenuCategory
}
