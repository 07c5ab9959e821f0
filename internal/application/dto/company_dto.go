package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/asistify/asistencias-api/internal/domain/entity"
)

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	NIT                        string                             `json:"nit" validate:"required,min=8,max=12"`
	Name                       string                             `json:"name" validate:"required,min=2,max=100"`
	ContactNumber              string                             `json:"contact_number" validate:"required,min=10,max=15"`
	CenterType                 string                             `json:"center_type" validate:"required,oneof=hospital clinic dental_clinic pharmacy urgent_care laboratory rehabilitation_center nursing_home maternity_center specialized_center"`
	OwnershipType              string                             `json:"ownership_type" validate:"required,oneof=private public"`
	Addresses                  []string                           `json:"addresses"`
	AdditionalAttendanceFields []entity.AdditionalAttendanceField `json:"additional_attendance_fields"`
}

// UpdateCompanyRequest entrada para modificar una empresa (mismos campos que crear).
type UpdateCompanyRequest = CreateCompanyRequest

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	UID                        uuid.UUID                          `json:"uid"`
	NIT                        string                             `json:"nit"`
	Name                       string                             `json:"name"`
	ContactNumber              string                             `json:"contact_number"`
	CenterType                 string                             `json:"center_type"`
	OwnershipType              string                             `json:"ownership_type"`
	Addresses                  []string                           `json:"addresses"`
	AdditionalAttendanceFields []entity.AdditionalAttendanceField `json:"additional_attendance_fields,omitempty"`
	CreatedBy                  *uuid.UUID                         `json:"created_by,omitempty"`
	UpdatedBy                  *uuid.UUID                         `json:"updated_by,omitempty"`
	CreatedAt                  time.Time                          `json:"created_at"`
	UpdatedAt                  time.Time                          `json:"updated_at"`
}
