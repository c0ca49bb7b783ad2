package identity

// Role is the coarse authorization role of a directory user
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleManager    Role = "MANAGER"
	RoleUser       Role = "USER"
)

// IsValid checks if the role is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// IsAdmin reports whether the role carries administrative rights
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// SeesAllPurchaseOrders reports whether list views are unrestricted.
// Plain users only see the orders they created.
func (r Role) SeesAllPurchaseOrders() bool {
	return r != RoleUser
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}
