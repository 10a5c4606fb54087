package dto

import (
	"time"

	"hotel-backoffice/internal/entities"
)

type UoMDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUoMDTOs(list []entities.UoM) []UoMDTO {
	out := make([]UoMDTO, 0, len(list))
	for _, u := range list {
		out = append(out, UoMDTO{
			ID:        u.ID,
			Name:      u.Name,
			Symbol:    u.Symbol,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	return out
}
