package repositories

import (
	"context"

	"go.uber.org/zap"

	"hotel-backoffice/internal/entities"
	"hotel-backoffice/internal/infrastructure/bd"
)

// CatalogRepositoryInterface — публичные выборки для маркетингового сайта.
type CatalogRepositoryInterface interface {
	ListActiveAccommodations(ctx context.Context, businessUnitID string) ([]entities.Accommodation, error)
	ListActiveServices(ctx context.Context, businessUnitID string) ([]entities.HotelService, error)
}

type CatalogRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewCatalogRepository(storage Querier, logger *zap.Logger) CatalogRepositoryInterface {
	return &CatalogRepository{storage: storage, logger: logger}
}

func (r *CatalogRepository) ListActiveAccommodations(ctx context.Context, businessUnitID string) ([]entities.Accommodation, error) {
	builder := bd.Psql().
		Select(
			"a.id", "a.business_unit_id", "a.name", "a.description", "a.capacity",
			"a.price_per_night", "a.amenities", "a.image_url", "a.is_active",
		).
		From("accommodations AS a")
	builder = bd.ActiveOnly(builder, "a.is_active")
	builder = bd.ScopeToBusinessUnit(builder, "a.business_unit_id", businessUnitID)

	query, args, err := builder.OrderBy("a.name ASC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, ClassifyError(err, "accommodations", businessUnitID)
	}
	defer rows.Close()

	list := make([]entities.Accommodation, 0)
	for rows.Next() {
		var a entities.Accommodation
		if err := rows.Scan(
			&a.ID, &a.BusinessUnitID, &a.Name, &a.Description, &a.Capacity,
			&a.PricePerNight, &a.Amenities, &a.ImageURL, &a.IsActive,
		); err != nil {
			return nil, err
		}
		if a.Amenities == nil {
			a.Amenities = []string{}
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ListActiveServices — порядок (category, name) важен: по нему строится группировка.
func (r *CatalogRepository) ListActiveServices(ctx context.Context, businessUnitID string) ([]entities.HotelService, error) {
	builder := bd.Psql().
		Select(
			"s.id", "s.business_unit_id", "s.name", "s.description",
			"s.category", "s.price", "s.is_active",
		).
		From("hotel_services AS s")
	builder = bd.ActiveOnly(builder, "s.is_active")
	builder = bd.ScopeToBusinessUnit(builder, "s.business_unit_id", businessUnitID)

	query, args, err := builder.OrderBy("s.category ASC", "s.name ASC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, ClassifyError(err, "hotel_services", businessUnitID)
	}
	defer rows.Close()

	list := make([]entities.HotelService, 0)
	for rows.Next() {
		var s entities.HotelService
		if err := rows.Scan(
			&s.ID, &s.BusinessUnitID, &s.Name, &s.Description,
			&s.Category, &s.Price, &s.IsActive,
		); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
