package entities

// Role is a caller's effective authority within a channel
type Role string

const (
	RoleNotAllowed Role = "NOT_ALLOWED"
	RoleMember     Role = "MEMBER"
	RoleAdmin      Role = "ADMIN"
	RoleOwner      Role = "OWNER"
	RoleSuperUser  Role = "SUPER_USER"
)

var rank = map[Role]int{
	RoleNotAllowed: 0,
	RoleMember:     1,
	RoleAdmin:      2,
	RoleOwner:      3,
	RoleSuperUser:  4,
}

// AtLeast reports whether r ranks at or above min.
// Unknown roles rank below NOT_ALLOWED.
func (r Role) AtLeast(min Role) bool {
	have, ok := rank[r]
	if !ok {
		return false
	}
	return have >= rank[min]
}

// Valid reports whether r is one of the five known roles
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}
