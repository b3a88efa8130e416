package enums

import "fmt"

// Role is the actor role carried in access tokens. Permissions are resolved
// by exhaustive matching on the role variant rather than probing loose
// permission objects at runtime.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

var validRoles = []Role{
	RoleAdmin,
	RoleStaff,
}

// Action is a discrete operation a role may be permitted to perform.
type Action string

const (
	ActionViewMembers   Action = "members:view"
	ActionEditMembers   Action = "members:edit"
	ActionRenewMembers  Action = "members:renew"
	ActionDeleteMembers Action = "members:delete"
	ActionUploadMedia   Action = "media:upload"
)

// staffDefaultActions is the permitted set for staff tokens that carry no
// explicit permission claims.
var staffDefaultActions = []Action{
	ActionViewMembers,
	ActionRenewMembers,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}

// Can reports whether the role permits the action. Admin permits everything;
// staff is restricted to the granted set, falling back to the default staff
// set when no grants are present.
func (r Role) Can(action Action, granted []Action) bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleStaff:
		allowed := granted
		if len(allowed) == 0 {
			allowed = staffDefaultActions
		}
		for _, a := range allowed {
			if a == action {
				return true
			}
		}
		return false
	default:
		return false
	}
}
