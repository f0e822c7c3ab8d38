package models

// Campus identifies one of the fixed physical school locations. It is the
// primary scoping dimension for almost every record in the system.
type Campus string

// CampusAll marks records visible to every campus (announcements only).
const CampusAll Campus = "All"

const (
	CampusBrindabanpur Campus = "Brindabanpur"
	CampusJagadishpur  Campus = "Jagadishpur"
	CampusBarogram     Campus = "Barogram"
)

var campusPrefixes = map[Campus]string{
	CampusBrindabanpur: "ICBR",
	CampusJagadishpur:  "ICJG",
	CampusBarogram:     "ICBO",
}

// Campuses lists every known campus in a stable order.
func Campuses() []Campus {
	return []Campus{CampusBrindabanpur, CampusJagadishpur, CampusBarogram}
}

// Valid reports whether the campus is one of the known locations.
func (c Campus) Valid() bool {
	_, ok := campusPrefixes[c]
	return ok
}

// Prefix returns the four letter registration number prefix for the campus,
// or an empty string when the campus is unknown.
func (c Campus) Prefix() string {
	return campusPrefixes[c]
}

// Role determines visibility and write permissions for a user.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleAccountant Role = "Accountant"
	RoleTeacher    Role = "Teacher"
)

// Roles lists every supported role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleAccountant, RoleTeacher}
}

// Valid reports whether the role is one of the supported roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAccountant, RoleTeacher:
		return true
	}
	return false
}
