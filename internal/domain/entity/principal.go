package entity

// Role is the authorization role carried by a verified token
type Role string

// Roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps a token claim onto a role; anything unknown is a plain user
func ParseRole(role string) Role {
	if Role(role) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Principal is the authenticated caller of an operation
type Principal struct {
	UserID string
	Name   string
	Phone  string
	Role   Role
}

// IsAdmin reports whether the caller may use back-office operations
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanView reports whether the caller may read a resource owned by ownerID
func (p Principal) CanView(ownerID string) bool {
	return p.IsAdmin() || p.UserID == ownerID
}
