package domain

import "fmt"

// Role is the access level attached to a credential.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleBusOperator Role = "bus_operator"
	RoleCommuter    Role = "commuter"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleBusOperator, RoleCommuter:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

// ParseRole converts raw input into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
	return r, nil
}

// RoleSet is the exact set of roles an operation accepts. There is no
// hierarchy: admin is only allowed where it is listed.
type RoleSet map[Role]struct{}

// NewRoleSet builds a RoleSet from the given roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Has reports whether r belongs to the set.
func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// AllRoles is the set used by read operations open to any authenticated caller.
var AllRoles = NewRoleSet(RoleAdmin, RoleBusOperator, RoleCommuter)
