package user

// Role is the single source of truth for staff roles. Both the admin API
// allow-list and the JWT middleware validate against this enum.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSales     Role = "sales"
	RoleWarehouse Role = "warehouse"
	RolePrinter   Role = "printer"
	RoleSupport   Role = "support"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSales, RoleWarehouse, RolePrinter, RoleSupport:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// FallbackRole is retried once when a profile insert is rejected by the
// store's role constraint with any other role.
const FallbackRole = RoleSales
