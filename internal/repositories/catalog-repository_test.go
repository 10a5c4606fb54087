package repositories

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogRepository_ListActiveServices(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectQuery(`FROM hotel_services AS s WHERE s.is_active = (.+) ORDER BY s.category ASC, s.name ASC`).
		WithArgs(true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "business_unit_id", "name", "description", "category", "price", "is_active"}).
			AddRow("s-1", "bu-1", "City tour", null.String{}, "Excursions", decimal.RequireFromString("300.00"), true).
			AddRow("s-2", "bu-1", "Massage", null.StringFrom("Classic"), "Spa", decimal.RequireFromString("400.00"), true))

	list, err := NewCatalogRepository(mock, zap.NewNop()).ListActiveServices(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Excursions", list[0].Category)
	assert.Equal(t, "400", list[1].Price.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_ListActiveAccommodations_ScopedToBusinessUnit(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectQuery(`FROM accommodations AS a WHERE a.is_active = (.+) AND a.business_unit_id = (.+) ORDER BY a.name ASC`).
		WithArgs(true, "bu-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "business_unit_id", "name", "description", "capacity", "price_per_night", "amenities", "image_url", "is_active"}).
			AddRow("a-1", "bu-1", "Deluxe King", null.String{}, 2, decimal.RequireFromString("1200.00"), []string{"wifi"}, null.String{}, true))

	list, err := NewCatalogRepository(mock, zap.NewNop()).ListActiveAccommodations(context.Background(), "bu-1")

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"wifi"}, list[0].Amenities)
	assert.Equal(t, 2, list[0].Capacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
