package dto

import (
	"time"

	"hotel-backoffice/internal/entities"
)

type InventoryCategoryDTO struct {
	ID             string    `json:"id"`
	BusinessUnitID string    `json:"businessUnitId"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	ItemCount      int       `json:"itemCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewInventoryCategoryDTO(c entities.InventoryCategory) InventoryCategoryDTO {
	return InventoryCategoryDTO{
		ID:             c.ID,
		BusinessUnitID: c.BusinessUnitID,
		Name:           c.Name,
		Description:    c.Description.Ptr(),
		ItemCount:      c.ItemCount,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func NewInventoryCategoryDTOs(list []entities.InventoryCategory) []InventoryCategoryDTO {
	out := make([]InventoryCategoryDTO, 0, len(list))
	for _, c := range list {
		out = append(out, NewInventoryCategoryDTO(c))
	}
	return out
}
