package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-backoffice/internal/entities"
)

func TestPublicCatalogService_GetServicesByCategory(t *testing.T) {
	catalog := new(mockCatalogRepo)
	catalog.On("ListActiveServices", mock.Anything, "").Return([]entities.HotelService{
		{ID: "s-1", Name: "City tour", Category: "Excursions", Price: decimal.NewFromInt(300)},
		{ID: "s-2", Name: "Massage", Category: "Spa", Price: decimal.NewFromInt(400)},
		{ID: "s-3", Name: "Sauna", Category: "Spa", Price: decimal.NewFromInt(250)},
	}, nil)
	svc := NewPublicCatalogService(new(mockBusinessUnitRepo), catalog, zap.NewNop())

	// без Identity в контексте: публичный эндпоинт
	grouped, err := svc.GetServicesByCategory(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, grouped, 2)
	require.Len(t, grouped["Spa"], 2)
	assert.Equal(t, "Massage", grouped["Spa"][0].Name)
	assert.Equal(t, "Sauna", grouped["Spa"][1].Name)
	assert.Equal(t, "City tour", grouped["Excursions"][0].Name)
}

func TestPublicCatalogService_GetBusinessUnits(t *testing.T) {
	units := new(mockBusinessUnitRepo)
	units.On("ListBusinessUnits", mock.Anything).Return([]entities.BusinessUnit{
		{ID: "bu-1", Name: "City Cafe"},
		{ID: "bu-2", Name: "Grand Hotel"},
	}, nil)
	svc := NewPublicCatalogService(units, new(mockCatalogRepo), zap.NewNop())

	list, err := svc.GetBusinessUnits(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Nil(t, list[0].Location)
}

func TestPublicCatalogService_GetAccommodations_Empty(t *testing.T) {
	catalog := new(mockCatalogRepo)
	catalog.On("ListActiveAccommodations", mock.Anything, "bu-1").Return([]entities.Accommodation{}, nil)
	svc := NewPublicCatalogService(new(mockBusinessUnitRepo), catalog, zap.NewNop())

	list, err := svc.GetAccommodations(context.Background(), "bu-1")

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
