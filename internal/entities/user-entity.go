package entities

import "hotel-backoffice/pkg/types"

type Role struct {
	ID   uint64
	Role string
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	IsActive     bool
	RoleID       *uint64
	Role         *Role

	types.BaseEntity
}

// Assignment связывает пользователя с бизнес-юнитом, в котором ему разрешено работать.
type Assignment struct {
	UserID         string `json:"userId"`
	BusinessUnitID string `json:"businessUnitId"`
}

// Identity — то, что знает о пользователе каждый защищённый запрос.
// Собирается при разборе сессии и кешируется, в БД отдельно не хранится.
type Identity struct {
	UserID      string       `json:"userId"`
	Username    string       `json:"username"`
	Role        *Role        `json:"role,omitempty"`
	Assignments []Assignment `json:"assignments"`
}

func (i *Identity) RoleName() string {
	if i == nil || i.Role == nil {
		return ""
	}
	return i.Role.Role
}
