package entity

// Role rol de un usuario. La jerarquía es fija y pequeña:
// admin ⊇ company_manager ⊇ attendance_officer.
type Role string

const (
	RoleAdmin             Role = "admin"
	RoleCompanyManager    Role = "company_manager"
	RoleAttendanceOfficer Role = "attendance_officer"
)

// Valid indica si el rol pertenece al conjunto conocido.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCompanyManager, RoleAttendanceOfficer:
		return true
	}
	return false
}

// Satisfies decide si el rol que se posee cumple el rol requerido.
// Un requerimiento vacío siempre se cumple. Un rol superior siempre
// satisface un requerimiento escrito para uno inferior; nunca al revés.
func (r Role) Satisfies(required Role) bool {
	switch required {
	case "":
		return true
	case RoleAdmin:
		return r == RoleAdmin
	case RoleCompanyManager:
		return r == RoleAdmin || r == RoleCompanyManager
	case RoleAttendanceOfficer:
		return r == RoleAdmin || r == RoleCompanyManager || r == RoleAttendanceOfficer
	default:
		return false
	}
}
