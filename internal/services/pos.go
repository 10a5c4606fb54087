package services

import (
	"context"

	"go.uber.org/zap"

	"hotel-backoffice/internal/authz"
	"hotel-backoffice/internal/dto"
	"hotel-backoffice/internal/repositories"
)

type POSService struct {
	BaseService
	menuRepo repositories.MenuRepositoryInterface
}

func NewPOSService(menuRepo repositories.MenuRepositoryInterface, logger *zap.Logger) *POSService {
	return &POSService{
		BaseService: NewBaseService(logger),
		menuRepo:    menuRepo,
	}
}

// GetMenuItems — меню кассы, только для Admin и Cashier.
func (s *POSService) GetMenuItems(ctx context.Context, businessUnitID string) ([]dto.MenuItemDTO, error) {
	if _, err := s.Authorize(ctx, businessUnitID, authz.POSAccess); err != nil {
		return nil, err
	}

	items, err := s.menuRepo.ListActiveMenuItems(ctx, businessUnitID)
	if err != nil {
		return nil, err
	}
	return dto.NewMenuItemDTOs(items), nil
}
