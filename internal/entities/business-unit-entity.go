package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// BusinessUnit — тенант (отель, ресторан, магазин). Почти все данные и проверки доступа
// разрезаются по нему.
type BusinessUnit struct {
	ID        string
	Name      string
	Location  null.String
	CreatedAt time.Time
}
