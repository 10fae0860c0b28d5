package domain

import "fmt"

// Role is the partition a user record lives in. Partitions are disjoint: an ID
// is unique inside its role but the same number may exist in several roles.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

// RolePriority is the order in which partitions are probed during login.
var RolePriority = []Role{RoleCustomer, RoleDriver, RoleAdmin}

// ParseRole converts a config/API value into a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// User represents a user record stored in one role partition (Redis, Postgres or SQLite).
// Password is compared as-is; the CRUD side owns how it gets there.
type User struct {
	ID       int64  `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Role     Role   `json:"role" yaml:"role"`
}
