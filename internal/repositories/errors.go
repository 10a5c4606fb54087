package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "hotel-backoffice/pkg/errors"
)

// Коды SQLSTATE, которые мы переводим в доменные ошибки.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// ClassifyError переводит ошибку драйвера в доменную, чтобы сервисы не знали про Postgres.
// Ошибки контекста проходят как есть.
func ClassifyError(err error, entity string, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, apperrors.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%s %s: %w", entity, id, apperrors.ErrConflict)
		case pgUniqueViolation:
			return fmt.Errorf("%s %s: %w", entity, id, apperrors.ErrAlreadyExists)
		case pgCheckViolation:
			return fmt.Errorf("%s %s: %w", entity, id, apperrors.ErrBadRequest)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
