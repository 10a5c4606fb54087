package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier — общее у *pgxpool.Pool, pgx.Tx и pgxmock. Репозитории зависят только от него.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// TxBeginner — то, что умеет открыть транзакцию (пул соединений).
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
