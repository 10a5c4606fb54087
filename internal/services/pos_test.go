package services

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-backoffice/internal/entities"
	apperrors "hotel-backoffice/pkg/errors"
)

func TestPOSService_GetMenuItems(t *testing.T) {
	repo := new(mockMenuRepo)
	repo.On("ListActiveMenuItems", mock.Anything, "bu-1").Return([]entities.MenuItem{
		{
			ID:         "m-1",
			CategoryID: "c-1",
			Name:       "Omelette",
			Price:      decimal.RequireFromString("35.00"),
			ImageURL:   null.StringFrom("/img/omelette.png"),
			IsActive:   true,
			Category:   &entities.MenuCategory{ID: "c-1", Name: "Breakfast", SortOrder: 1},
		},
	}, nil)
	svc := NewPOSService(repo, zap.NewNop())

	items, err := svc.GetMenuItems(ctxAs(staffIn("Cashier", "bu-1")), "bu-1")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Breakfast", items[0].Category.Name)
	assert.Nil(t, items[0].Description)
	assert.Equal(t, "/img/omelette.png", *items[0].ImageURL)
}

func TestPOSService_GetMenuItems_RoleNotPermitted(t *testing.T) {
	repo := new(mockMenuRepo)
	svc := NewPOSService(repo, zap.NewNop())

	_, err := svc.GetMenuItems(ctxAs(staffIn("Staff", "bu-1")), "bu-1")

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Code)
	assert.Contains(t, httpErr.Message, "role")
	repo.AssertNotCalled(t, "ListActiveMenuItems", mock.Anything, mock.Anything)
}
