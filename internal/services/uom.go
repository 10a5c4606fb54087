package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"hotel-backoffice/internal/authz"
	"hotel-backoffice/internal/dto"
	"hotel-backoffice/internal/repositories"
	apperrors "hotel-backoffice/pkg/errors"
)

const (
	UoMDeletedMessage = "UoM deleted successfully"
	UoMInUseMessage   = "Cannot delete UoM: it is currently in use by other records"
)

type UoMService struct {
	BaseService
	uomRepo repositories.UoMRepositoryInterface
}

func NewUoMService(uomRepo repositories.UoMRepositoryInterface, logger *zap.Logger) *UoMService {
	return &UoMService{
		BaseService: NewBaseService(logger),
		uomRepo:     uomRepo,
	}
}

// GetUoMs: доступ проверяется по бизнес-юниту, но сам справочник общий.
func (s *UoMService) GetUoMs(ctx context.Context, businessUnitID string) ([]dto.UoMDTO, error) {
	if _, err := s.Authorize(ctx, businessUnitID, authz.AssignedOnly); err != nil {
		return nil, err
	}

	uoms, err := s.uomRepo.ListUoMs(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewUoMDTOs(uoms), nil
}

func (s *UoMService) DeleteUoM(ctx context.Context, businessUnitID, uomID string) error {
	if _, err := s.Authorize(ctx, businessUnitID, authz.AssignedOnly); err != nil {
		return err
	}

	if err := s.uomRepo.DeleteUoM(ctx, uomID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			s.logger.Info("Единица измерения используется, удаление отклонено", zap.String("uomID", uomID))
			return apperrors.NewConflictError(UoMInUseMessage)
		case errors.Is(err, apperrors.ErrNotFound):
			return apperrors.NewNotFoundError("UoM not found")
		}
		return err
	}

	s.logger.Info("Единица измерения удалена", zap.String("uomID", uomID))
	return nil
}
