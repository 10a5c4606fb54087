package dto

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-backoffice/internal/entities"
)

func TestGroupServicesByCategory(t *testing.T) {
	list := []entities.HotelService{
		{ID: "1", Name: "City tour", Category: "Excursions", Price: decimal.NewFromInt(300)},
		{ID: "2", Name: "Boat rental", Category: "Excursions", Price: decimal.NewFromInt(200)},
		{ID: "3", Name: "Massage", Category: "Spa", Description: null.StringFrom("Classic"), Price: decimal.NewFromInt(400)},
	}

	grouped := GroupServicesByCategory(list)

	require.Len(t, grouped, 2)
	require.Len(t, grouped["Excursions"], 2)
	// порядок внутри категории как во входном списке
	assert.Equal(t, "City tour", grouped["Excursions"][0].Name)
	assert.Equal(t, "Boat rental", grouped["Excursions"][1].Name)
	assert.Equal(t, "Classic", *grouped["Spa"][0].Description)
}

func TestGroupServicesByCategory_Empty(t *testing.T) {
	grouped := GroupServicesByCategory(nil)

	assert.NotNil(t, grouped)
	assert.Empty(t, grouped)
}

func TestNewAccommodationDTOs_NilAmenities(t *testing.T) {
	out := NewAccommodationDTOs([]entities.Accommodation{{ID: "a-1", Name: "Cabin"}})

	require.Len(t, out, 1)
	assert.NotNil(t, out[0].Amenities)
	assert.Nil(t, out[0].Description)
}
