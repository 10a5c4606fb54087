package repositories

import (
	"context"

	"go.uber.org/zap"

	"hotel-backoffice/internal/entities"
	"hotel-backoffice/internal/infrastructure/bd"
	apperrors "hotel-backoffice/pkg/errors"
)

type UoMRepositoryInterface interface {
	ListUoMs(ctx context.Context) ([]entities.UoM, error)
	DeleteUoM(ctx context.Context, id string) error
}

type UoMRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewUoMRepository(storage Querier, logger *zap.Logger) UoMRepositoryInterface {
	return &UoMRepository{storage: storage, logger: logger}
}

// ListUoMs — справочник общий для всех бизнес-юнитов, в схеме uoms нет business_unit_id.
func (r *UoMRepository) ListUoMs(ctx context.Context) ([]entities.UoM, error) {
	query, args, err := bd.Psql().
		Select("u.id", "u.name", "u.symbol", "u.created_at", "u.updated_at").
		From("uoms AS u").
		OrderBy("u.name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, ClassifyError(err, "uoms", "*")
	}
	defer rows.Close()

	uoms := make([]entities.UoM, 0)
	for rows.Next() {
		var u entities.UoM
		if err := rows.Scan(&u.ID, &u.Name, &u.Symbol, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		uoms = append(uoms, u)
	}
	return uoms, rows.Err()
}

// DeleteUoM не проверяет ссылки заранее: если единица используется, Postgres вернёт
// нарушение внешнего ключа, и ClassifyError превратит его в ErrConflict.
func (r *UoMRepository) DeleteUoM(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM uoms WHERE id = $1`, id)
	if err != nil {
		return ClassifyError(err, "uom", id)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
