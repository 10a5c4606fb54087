package repositories

import (
	"context"

	"go.uber.org/zap"

	"hotel-backoffice/internal/entities"
	"hotel-backoffice/internal/infrastructure/bd"
)

type BusinessUnitRepositoryInterface interface {
	ListBusinessUnits(ctx context.Context) ([]entities.BusinessUnit, error)
}

type BusinessUnitRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewBusinessUnitRepository(storage Querier, logger *zap.Logger) BusinessUnitRepositoryInterface {
	return &BusinessUnitRepository{storage: storage, logger: logger}
}

func (r *BusinessUnitRepository) ListBusinessUnits(ctx context.Context) ([]entities.BusinessUnit, error) {
	query, args, err := bd.Psql().
		Select("bu.id", "bu.name", "bu.location", "bu.created_at").
		From("business_units AS bu").
		OrderBy("bu.name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, ClassifyError(err, "business_units", "*")
	}
	defer rows.Close()

	units := make([]entities.BusinessUnit, 0)
	for rows.Next() {
		var bu entities.BusinessUnit
		if err := rows.Scan(&bu.ID, &bu.Name, &bu.Location, &bu.CreatedAt); err != nil {
			return nil, err
		}
		units = append(units, bu)
	}
	return units, rows.Err()
}
