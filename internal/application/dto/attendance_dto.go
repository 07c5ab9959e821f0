package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateAttendanceRequest entrada para registrar una asistencia.
// CompanyID solo lo honra un admin; para el resto se fuerza la empresa del llamador.
type CreateAttendanceRequest struct {
	FullName       string         `json:"full_name" validate:"required,min=2,max=100"`
	Document       string         `json:"document" validate:"required,min=8,max=12"`
	DocumentType   string         `json:"document_type" validate:"required,oneof=CC CE TI PP"`
	Gender         string         `json:"gender" validate:"required,oneof=male female"`
	BirthDate      time.Time      `json:"birth_date" validate:"required"`
	Address        string         `json:"address" validate:"required,min=2,max=100"`
	Reason         string         `json:"reason" validate:"required,min=2,max=100"`
	AdditionalData map[string]any `json:"additional_data"`
	CompanyID      *uuid.UUID     `json:"company_id" validate:"omitempty"`
}

// UpdateAttendanceRequest entrada para modificar una asistencia.
type UpdateAttendanceRequest = CreateAttendanceRequest

// AttendanceCreateMultiple lote de asistencias (importación masiva).
type AttendanceCreateMultiple struct {
	Attendances []CreateAttendanceRequest `json:"attendances" validate:"required,min=1,dive"`
}

// AttendanceResponse salida de una asistencia.
type AttendanceResponse struct {
	UID            uuid.UUID      `json:"uid"`
	FullName       string         `json:"full_name"`
	Document       string         `json:"document"`
	DocumentType   string         `json:"document_type"`
	Gender         string         `json:"gender"`
	BirthDate      time.Time      `json:"birth_date"`
	Address        string         `json:"address"`
	Reason         string         `json:"reason"`
	AdditionalData map[string]any `json:"additional_data,omitempty"`
	CompanyID      uuid.UUID      `json:"company_id"`
	UserID         uuid.UUID      `json:"user_id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
