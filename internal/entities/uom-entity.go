package entities

import "hotel-backoffice/pkg/types"

// UoM — единица измерения. Глобальный справочник, к бизнес-юниту не привязан.
type UoM struct {
	ID     string
	Name   string
	Symbol string

	types.BaseEntity
}
