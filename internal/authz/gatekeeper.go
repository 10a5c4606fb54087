package authz

import (
	"strings"

	"hotel-backoffice/internal/entities"
)

type DenyReason string

const (
	ReasonBusinessUnitNotAssigned DenyReason = "business_unit_not_assigned"
	ReasonRoleNotPermitted        DenyReason = "role_not_permitted"
)

type Decision struct {
	Allowed bool
	Reason  DenyReason
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason DenyReason) Decision { return Decision{Allowed: false, Reason: reason} }

// Authorize — единая проверка доступа для всех защищённых обработчиков.
// Разрешает, если среди назначений есть запрошенный бизнес-юнит и (если политика
// ограничивает роли) роль пользователя есть в белом списке. Пустой businessUnitID
// сюда попадать не должен: это 400, его отсекает контроллер.
func Authorize(identity *entities.Identity, businessUnitID string, policy Policy) Decision {
	if identity == nil || !HasAssignment(identity.Assignments, businessUnitID) {
		return deny(ReasonBusinessUnitNotAssigned)
	}

	if policy.RoleRestricted() && !policy.Roles.Contains(identity.RoleName()) {
		return deny(ReasonRoleNotPermitted)
	}

	return allow()
}

// Allow — то же самое, но без причины отказа.
func Allow(identity *entities.Identity, businessUnitID string, policy Policy) bool {
	return Authorize(identity, businessUnitID, policy).Allowed
}

// HasAssignment сравнивает UUID без учёта регистра: Postgres отдаёт их в нижнем.
func HasAssignment(assignments []entities.Assignment, businessUnitID string) bool {
	for _, a := range assignments {
		if strings.EqualFold(a.BusinessUnitID, businessUnitID) {
			return true
		}
	}
	return false
}
