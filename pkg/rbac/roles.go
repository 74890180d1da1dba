package rbac

// Role identifies one of the fixed user roles in the platform.
// The zero value is RoleUnknown, which carries no authority.
type Role string

const (
	RoleUnknown       Role = ""
	RoleSuperAdmin    Role = "super_admin"
	RoleBrokerAdmin   Role = "broker_admin"
	RoleBrokerUser    Role = "broker_user"
	RoleEmployerAdmin Role = "employer_admin"
	RoleEmployerHR    Role = "employer_hr"
	RoleEmployee      Role = "employee"
	RoleCarrierAdmin  Role = "carrier_admin"
	RoleCarrierUser   Role = "carrier_user"
	RoleReadonlyUser  Role = "readonly_user"
)

// roleLevels assigns each role its place in the management hierarchy.
// Higher levels may assign and manage lower ones; the level by itself
// grants no resource permissions. Roles absent from the table (including
// RoleUnknown and RoleReadonlyUser) sit at level 0.
var roleLevels = map[Role]int{
	RoleEmployee:      1,
	RoleEmployerHR:    2,
	RoleEmployerAdmin: 3,
	RoleBrokerUser:    4,
	RoleBrokerAdmin:   5,
	RoleCarrierUser:   6,
	RoleCarrierAdmin:  7,
	RoleSuperAdmin:    10,
}

// allRoles lists every valid role for boundary normalization.
var allRoles = map[Role]struct{}{
	RoleSuperAdmin:    {},
	RoleBrokerAdmin:   {},
	RoleBrokerUser:    {},
	RoleEmployerAdmin: {},
	RoleEmployerHR:    {},
	RoleEmployee:      {},
	RoleCarrierAdmin:  {},
	RoleCarrierUser:   {},
	RoleReadonlyUser:  {},
}

// ParseRole normalizes an external role string to the closed Role set.
// Unrecognized input maps to RoleUnknown, never to an error.
func ParseRole(s string) Role {
	r := Role(s)
	if _, ok := allRoles[r]; ok {
		return r
	}
	return RoleUnknown
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	_, ok := allRoles[r]
	return ok
}

// Level returns the role's hierarchy level. Unknown roles map to 0.
func (r Role) Level() int {
	return roleLevels[r]
}

// AtLeast reports whether the role's level is greater than or equal to
// the other role's level.
func (r Role) AtLeast(other Role) bool {
	return r.Level() >= other.Level()
}

// IsBroker reports whether the role belongs to the broker family, which
// may reach employer organizations managed by the broker's tenant.
func (r Role) IsBroker() bool {
	return r == RoleBrokerAdmin || r == RoleBrokerUser
}

func (r Role) String() string {
	return string(r)
}
