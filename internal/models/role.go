package models

// Role is the numeric role identifier issued by the backend.
type Role int

const (
	RoleAdmin Role = 1
	RoleUser  Role = 2
)

const (
	RoleNameAdmin = "ADMIN"
	RoleNameUser  = "USER"
)

// Name returns the backend's display name for a role.
func (r Role) Name() string {
	switch r {
	case RoleAdmin:
		return RoleNameAdmin
	case RoleUser:
		return RoleNameUser
	default:
		return ""
	}
}
