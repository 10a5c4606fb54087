package dto

import (
	"github.com/shopspring/decimal"

	"hotel-backoffice/internal/entities"
)

type MenuCategoryDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

type MenuItemDTO struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	ImageURL    *string          `json:"imageUrl"`
	IsActive    bool             `json:"isActive"`
	CategoryID  string           `json:"categoryId"`
	Category    *MenuCategoryDTO `json:"category"`
}

func NewMenuItemDTOs(list []entities.MenuItem) []MenuItemDTO {
	out := make([]MenuItemDTO, 0, len(list))
	for _, m := range list {
		item := MenuItemDTO{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description.Ptr(),
			Price:       m.Price,
			ImageURL:    m.ImageURL.Ptr(),
			IsActive:    m.IsActive,
			CategoryID:  m.CategoryID,
		}
		if m.Category != nil {
			item.Category = &MenuCategoryDTO{
				ID:        m.Category.ID,
				Name:      m.Category.Name,
				SortOrder: m.Category.SortOrder,
			}
		}
		out = append(out, item)
	}
	return out
}
