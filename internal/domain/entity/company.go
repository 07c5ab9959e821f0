package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de centro médico.
const (
	CenterHospital             = "hospital"
	CenterClinic               = "clinic"
	CenterDentalClinic         = "dental_clinic"
	CenterPharmacy             = "pharmacy"
	CenterUrgentCare           = "urgent_care"
	CenterLaboratory           = "laboratory"
	CenterRehabilitationCenter = "rehabilitation_center"
	CenterNursingHome          = "nursing_home"
	CenterMaternityCenter      = "maternity_center"
	CenterSpecializedCenter    = "specialized_center"
)

// Propiedad del centro.
const (
	OwnershipPrivate = "private"
	OwnershipPublic  = "public"
)

// AdditionalAttendanceField campo extra que la empresa exige al registrar asistencias.
type AdditionalAttendanceField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Company representa una empresa (centro médico) dueña de usuarios y asistencias.
// El NIT es único y sirve como llave natural en varias rutas.
type Company struct {
	ID                         uuid.UUID
	NIT                        string
	Name                       string
	ContactNumber              string
	CenterType                 string
	OwnershipType              string
	Addresses                  []string
	AdditionalAttendanceFields []AdditionalAttendanceField
	CreatedBy                  *uuid.UUID
	UpdatedBy                  *uuid.UUID
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}
