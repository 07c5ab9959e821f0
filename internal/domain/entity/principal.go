package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Principal identidad autenticada de una petición, reconstruida en cada
// request a partir de un token verificado. Inmutable una vez construida:
// un request sin credencial válida nunca llega a tener Principal.
type Principal struct {
	ID        uuid.UUID
	Username  string
	FirstName string
	LastName  string
	Role      Role
	CompanyID *uuid.UUID
	// Token bearer original, para reenviarlo en verificaciones remotas
	// (el servicio dueño aplica su propio scoping al llamador real).
	Token string
}

// DisplayName nombre legible del principal.
func (p Principal) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// IsAdmin indica si el principal tiene alcance global.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// SameCompany indica si el id dado coincide con la empresa del principal.
func (p Principal) SameCompany(id uuid.UUID) bool {
	return p.CompanyID != nil && *p.CompanyID == id
}
