package services

import (
	"context"

	"go.uber.org/zap"

	"hotel-backoffice/internal/dto"
	"hotel-backoffice/internal/repositories"
)

// PublicCatalogService — чтения для маркетингового сайта: без сессии и без проверок доступа.
type PublicCatalogService struct {
	businessUnitRepo repositories.BusinessUnitRepositoryInterface
	catalogRepo      repositories.CatalogRepositoryInterface
	logger           *zap.Logger
}

func NewPublicCatalogService(
	businessUnitRepo repositories.BusinessUnitRepositoryInterface,
	catalogRepo repositories.CatalogRepositoryInterface,
	logger *zap.Logger,
) *PublicCatalogService {
	return &PublicCatalogService{
		businessUnitRepo: businessUnitRepo,
		catalogRepo:      catalogRepo,
		logger:           logger,
	}
}

func (s *PublicCatalogService) GetBusinessUnits(ctx context.Context) ([]dto.BusinessUnitDTO, error) {
	units, err := s.businessUnitRepo.ListBusinessUnits(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewBusinessUnitDTOs(units), nil
}

func (s *PublicCatalogService) GetAccommodations(ctx context.Context, businessUnitID string) ([]dto.AccommodationDTO, error) {
	list, err := s.catalogRepo.ListActiveAccommodations(ctx, businessUnitID)
	if err != nil {
		return nil, err
	}
	return dto.NewAccommodationDTOs(list), nil
}

func (s *PublicCatalogService) GetServicesByCategory(ctx context.Context, businessUnitID string) (map[string][]dto.HotelServiceDTO, error) {
	list, err := s.catalogRepo.ListActiveServices(ctx, businessUnitID)
	if err != nil {
		return nil, err
	}
	return dto.GroupServicesByCategory(list), nil
}
