package usecase

import (
	"github.com/google/uuid"

	"github.com/asistify/asistencias-api/internal/domain"
	"github.com/asistify/asistencias-api/internal/domain/entity"
)

// scopeCompany resuelve el alcance de empresa de un principal antes de
// ejecutar cualquier query con scoping. Un admin sin empresa ve todo
// (devuelve nil); cualquier otro rol sin empresa se rechaza con ErrNoCompany
// antes de tocar la base.
func scopeCompany(p entity.Principal) (*uuid.UUID, error) {
	if p.IsAdmin() {
		return p.CompanyID, nil
	}
	if p.CompanyID == nil {
		return nil, domain.ErrNoCompany
	}
	return p.CompanyID, nil
}

// resolveWriteCompany decide la empresa a la que se asigna una escritura.
// Regla de negocio intencional: un no-admin nunca elige empresa; cualquier
// company_id que venga del cliente se ignora y se usa el del principal.
func resolveWriteCompany(p entity.Principal, requested *uuid.UUID) (*uuid.UUID, error) {
	if p.IsAdmin() {
		return requested, nil
	}
	if p.CompanyID == nil {
		return nil, domain.ErrNoCompany
	}
	return p.CompanyID, nil
}
