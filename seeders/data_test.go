package seeders

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedID_Deterministic(t *testing.T) {
	a := seedID("uom", "Piece")
	b := seedID("uom", "Piece")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, seedID("uom", "Box"))
	assert.NotEqual(t, a, seedID("business_unit", "Piece"))
	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

// Все ссылки в демо-данных должны указывать на то, что сидится.
func TestDemoData_References(t *testing.T) {
	units := map[string]bool{}
	for _, bu := range businessUnitsData {
		units[bu.Name] = true
	}
	uoms := map[string]bool{}
	for _, u := range uomsData {
		uoms[u.Name] = true
	}
	categories := map[string]bool{}
	for _, c := range inventoryCategoriesData {
		require.True(t, units[c.Unit], c.Unit)
		categories[c.Unit+"/"+c.Name] = true
	}
	for _, i := range inventoryItemsData {
		assert.True(t, categories[i.Unit+"/"+i.Category], i.Name)
		assert.True(t, uoms[i.UoM], i.Name)
	}

	menuCategories := map[string]bool{}
	for _, c := range menuCategoriesData {
		menuCategories[c.Unit+"/"+c.Name] = true
	}
	for _, m := range menuItemsData {
		assert.True(t, menuCategories[m.Unit+"/"+m.Category], m.Name)
	}

	for _, u := range demoUsersData {
		for _, unit := range u.Units {
			assert.True(t, units[unit], u.Username)
		}
	}
	for _, inv := range arInvoicesData {
		assert.True(t, units[inv.Unit], inv.Number)
	}
}
