package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin  RoleType = "admin"
	RoleMentor RoleType = "mentor"
	RoleMentee RoleType = "mentee"
)

// Valid reports whether the role is one of the known role tags.
func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleMentor, RoleMentee:
		return true
	}
	return false
}
