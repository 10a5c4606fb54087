package repositories

import (
	"context"

	"go.uber.org/zap"

	"hotel-backoffice/internal/entities"
	"hotel-backoffice/internal/infrastructure/bd"
)

type InventoryCategoryRepositoryInterface interface {
	ListCategoriesWithItemCount(ctx context.Context, businessUnitID string) ([]entities.InventoryCategory, error)
}

type InventoryCategoryRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewInventoryCategoryRepository(storage Querier, logger *zap.Logger) InventoryCategoryRepositoryInterface {
	return &InventoryCategoryRepository{storage: storage, logger: logger}
}

// ListCategoriesWithItemCount — категории бизнес-юнита по алфавиту, itemCount считается
// через LEFT JOIN, чтобы пустые категории тоже попали в список (с нулём).
func (r *InventoryCategoryRepository) ListCategoriesWithItemCount(ctx context.Context, businessUnitID string) ([]entities.InventoryCategory, error) {
	builder := bd.Psql().
		Select(
			"c.id", "c.business_unit_id", "c.name", "c.description",
			"c.created_at", "c.updated_at",
			"COUNT(i.id) AS item_count",
		).
		From("inventory_categories AS c").
		LeftJoin("inventory_items i ON i.category_id = c.id")
	builder = bd.ScopeToBusinessUnit(builder, "c.business_unit_id", businessUnitID)

	query, args, err := builder.
		GroupBy("c.id").
		OrderBy("c.name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, ClassifyError(err, "inventory_categories", businessUnitID)
	}
	defer rows.Close()

	categories := make([]entities.InventoryCategory, 0)
	for rows.Next() {
		var c entities.InventoryCategory
		var itemCount int64
		if err := rows.Scan(
			&c.ID, &c.BusinessUnitID, &c.Name, &c.Description,
			&c.CreatedAt, &c.UpdatedAt, &itemCount,
		); err != nil {
			return nil, err
		}
		c.ItemCount = int(itemCount)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
