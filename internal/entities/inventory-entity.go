package entities

import (
	"github.com/aarondl/null/v8"

	"hotel-backoffice/pkg/types"
)

type InventoryCategory struct {
	ID             string
	BusinessUnitID string
	Name           string
	Description    null.String
	// ItemCount считается при чтении, в таблице не хранится
	ItemCount int

	types.BaseEntity
}

type InventoryItem struct {
	ID             string
	BusinessUnitID string
	CategoryID     string
	UoMID          string
	Name           string
}
