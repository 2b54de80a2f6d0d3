// Package domain defines the authentication domain models: user accounts,
// principals derived from validated tokens, and the role hierarchy.
package domain

// Role identifies the access level of an authenticated user.
// Roles are stored on the user record and carried inside access-token claims.
type Role string

const (
	// RoleAdmin has full access to every resource and operation.
	RoleAdmin Role = "Admin"

	// RoleModerator can manage resources but cannot restore deleted data
	// or delete master data (clients, drivers, vehicles, companies).
	RoleModerator Role = "Moderator"

	// RoleUser is a customer account linked to a Client record. It only
	// sees rows reachable from that client.
	RoleUser Role = "User"

	// RoleDriver is linked to a Driver record. It only sees vehicles and
	// transportations assigned to that driver.
	RoleDriver Role = "Driver"
)

// ParseRole converts a string into a Role, falling back to RoleUser for
// unknown values so that a corrupt claim can never grant elevated access.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleModerator, RoleUser, RoleDriver:
		return Role(s)
	default:
		return RoleUser
	}
}

// Elevated reports whether the role can manage other accounts.
func (r Role) Elevated() bool {
	return r == RoleAdmin || r == RoleModerator
}
