// Package principal describes the authenticated caller of a request.
package principal

type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleManager       Role = "manager"
	RoleEducator      Role = "educator"
	RoleClient        Role = "client"
)

// Employees are the roles that work for an establishment.
var Employees = []Role{RoleAdministrator, RoleManager, RoleEducator}

func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleManager, RoleEducator, RoleClient:
		return true
	}
	return false
}

// Principal is the user id and role extracted from an access token.
type Principal struct {
	UserID int64
	Role   Role
}

func (p Principal) Is(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

func (p Principal) IsStaff() bool {
	return p.Is(RoleAdministrator, RoleManager)
}
