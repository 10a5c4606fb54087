package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInventoryCategoryRepository_ListCategoriesWithItemCount(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) COUNT\(i.id\) AS item_count FROM inventory_categories AS c LEFT JOIN inventory_items i (.+) WHERE c.business_unit_id = (.+) GROUP BY c.id ORDER BY c.name ASC`).
		WithArgs("bu-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "business_unit_id", "name", "description", "created_at", "updated_at", "item_count"}).
			AddRow("c-1", "bu-1", "Cleaning supplies", null.String{}, now, now, int64(0)).
			AddRow("c-2", "bu-1", "Linen", null.StringFrom("Bed sheets"), now, now, int64(2)))

	repo := NewInventoryCategoryRepository(mock, zap.NewNop())
	categories, err := repo.ListCategoriesWithItemCount(context.Background(), "bu-1")

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, 0, categories[0].ItemCount)
	assert.False(t, categories[0].Description.Valid)
	assert.Equal(t, 2, categories[1].ItemCount)
	assert.Equal(t, "Bed sheets", categories[1].Description.String)
	assert.NoError(t, mock.ExpectationsWereMet())
}
