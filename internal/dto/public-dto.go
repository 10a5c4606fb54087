package dto

import (
	"github.com/shopspring/decimal"

	"hotel-backoffice/internal/entities"
)

type BusinessUnitDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location *string `json:"location"`
}

// PublicBusinessUnitsResponse — формат, который ждёт маркетинговый сайт.
// data присутствует всегда, пустой список отдаётся как [].
type PublicBusinessUnitsResponse struct {
	Success bool              `json:"success"`
	Data    []BusinessUnitDTO `json:"data"`
}

type PublicErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AccommodationDTO struct {
	ID             string          `json:"id"`
	BusinessUnitID string          `json:"businessUnitId"`
	Name           string          `json:"name"`
	Description    *string         `json:"description"`
	Capacity       int             `json:"capacity"`
	PricePerNight  decimal.Decimal `json:"pricePerNight"`
	Amenities      []string        `json:"amenities"`
	ImageURL       *string         `json:"imageUrl"`
}

type HotelServiceDTO struct {
	ID             string          `json:"id"`
	BusinessUnitID string          `json:"businessUnitId"`
	Name           string          `json:"name"`
	Description    *string         `json:"description"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
}

func NewBusinessUnitDTOs(list []entities.BusinessUnit) []BusinessUnitDTO {
	out := make([]BusinessUnitDTO, 0, len(list))
	for _, bu := range list {
		out = append(out, BusinessUnitDTO{ID: bu.ID, Name: bu.Name, Location: bu.Location.Ptr()})
	}
	return out
}

func NewAccommodationDTOs(list []entities.Accommodation) []AccommodationDTO {
	out := make([]AccommodationDTO, 0, len(list))
	for _, a := range list {
		amenities := a.Amenities
		if amenities == nil {
			amenities = []string{}
		}
		out = append(out, AccommodationDTO{
			ID:             a.ID,
			BusinessUnitID: a.BusinessUnitID,
			Name:           a.Name,
			Description:    a.Description.Ptr(),
			Capacity:       a.Capacity,
			PricePerNight:  a.PricePerNight,
			Amenities:      amenities,
			ImageURL:       a.ImageURL.Ptr(),
		})
	}
	return out
}

// GroupServicesByCategory раскладывает услуги по категориям. Внутри категории порядок
// входного списка сохраняется.
func GroupServicesByCategory(list []entities.HotelService) map[string][]HotelServiceDTO {
	grouped := make(map[string][]HotelServiceDTO)
	for _, s := range list {
		grouped[s.Category] = append(grouped[s.Category], HotelServiceDTO{
			ID:             s.ID,
			BusinessUnitID: s.BusinessUnitID,
			Name:           s.Name,
			Description:    s.Description.Ptr(),
			Category:       s.Category,
			Price:          s.Price,
		})
	}
	return grouped
}
