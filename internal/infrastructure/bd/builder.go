package bd

import (
	sq "github.com/Masterminds/squirrel"
)

// Psql — билдер с плейсхолдерами $1, $2 ... для pgx.
func Psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// ScopeToBusinessUnit ограничивает выборку одним бизнес-юнитом.
// Пустой id — без ограничения (публичные выборки по всем юнитам).
func ScopeToBusinessUnit(builder sq.SelectBuilder, column string, businessUnitID string) sq.SelectBuilder {
	if businessUnitID == "" {
		return builder
	}
	return builder.Where(sq.Eq{column: businessUnitID})
}

// ActiveOnly оставляет только записи с is_active = true.
func ActiveOnly(builder sq.SelectBuilder, column string) sq.SelectBuilder {
	return builder.Where(sq.Eq{column: true})
}
