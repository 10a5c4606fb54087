package repositories

import (
	"context"

	"go.uber.org/zap"

	"hotel-backoffice/internal/entities"
	"hotel-backoffice/internal/infrastructure/bd"
)

type MenuRepositoryInterface interface {
	ListActiveMenuItems(ctx context.Context, businessUnitID string) ([]entities.MenuItem, error)
}

type MenuRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewMenuRepository(storage Querier, logger *zap.Logger) MenuRepositoryInterface {
	return &MenuRepository{storage: storage, logger: logger}
}

// ListActiveMenuItems — активные позиции меню в порядке витрины кассы:
// сначала sort_order категории, затем название позиции.
func (r *MenuRepository) ListActiveMenuItems(ctx context.Context, businessUnitID string) ([]entities.MenuItem, error) {
	builder := bd.Psql().
		Select(
			"m.id", "m.business_unit_id", "m.category_id", "m.name", "m.description",
			"m.price", "m.image_url", "m.is_active",
			"c.id", "c.name", "c.sort_order",
		).
		From("menu_items AS m").
		Join("menu_categories c ON m.category_id = c.id")
	builder = bd.ScopeToBusinessUnit(builder, "m.business_unit_id", businessUnitID)
	builder = bd.ActiveOnly(builder, "m.is_active")

	query, args, err := builder.
		OrderBy("c.sort_order ASC", "m.name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, ClassifyError(err, "menu_items", businessUnitID)
	}
	defer rows.Close()

	items := make([]entities.MenuItem, 0)
	for rows.Next() {
		var m entities.MenuItem
		var c entities.MenuCategory
		if err := rows.Scan(
			&m.ID, &m.BusinessUnitID, &m.CategoryID, &m.Name, &m.Description,
			&m.Price, &m.ImageURL, &m.IsActive,
			&c.ID, &c.Name, &c.SortOrder,
		); err != nil {
			return nil, err
		}
		m.Category = &c
		items = append(items, m)
	}
	return items, rows.Err()
}
