package entities

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

// Accommodation — номер/тип размещения, который показывается на публичном сайте.
type Accommodation struct {
	ID             string
	BusinessUnitID string
	Name           string
	Description    null.String
	Capacity       int
	PricePerNight  decimal.Decimal
	Amenities      []string
	ImageURL       null.String
	IsActive       bool
}

type HotelService struct {
	ID             string
	BusinessUnitID string
	Name           string
	Description    null.String
	Category       string
	Price          decimal.Decimal
	IsActive       bool
}
