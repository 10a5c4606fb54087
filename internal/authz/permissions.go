// internal/authz/permissions.go
package authz

// --- РОЛИ В СИСТЕМЕ ---

type RoleName string

const (
	RoleAdmin   RoleName = "Admin"
	RoleManager RoleName = "Manager"
	RoleCashier RoleName = "Cashier"
	RoleStaff   RoleName = "Staff"
)

// RoleSet — белый список ролей маршрута. Пустой набор = без ограничения по роли.
type RoleSet map[RoleName]struct{}

func Roles(roles ...RoleName) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

func (s RoleSet) Contains(role string) bool {
	_, ok := s[RoleName(role)]
	return ok
}

// Policy описывает, что нужно маршруту помимо назначения на бизнес-юнит.
type Policy struct {
	Name  string
	Roles RoleSet
}

func (p Policy) RoleRestricted() bool {
	return len(p.Roles) > 0
}

// --- ПОЛИТИКИ МАРШРУТОВ ---

var (
	// AssignedOnly — достаточно быть назначенным на бизнес-юнит.
	AssignedOnly = Policy{Name: "assigned"}

	// POSAccess — касса: только Admin и Cashier.
	POSAccess = Policy{Name: "pos", Roles: Roles(RoleAdmin, RoleCashier)}
)
