package entity

import (
	"time"

	"github.com/google/uuid"
)

// Géneros registrables en una asistencia.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Attendance registro de atención de un paciente en una empresa.
// CompanyID y UserID referencian filas de otros servicios: no hay foreign key
// entre bases; la integridad se verifica por llamada remota al escribir.
type Attendance struct {
	ID             uuid.UUID
	FullName       string
	Document       string
	DocumentType   string
	Gender         string
	BirthDate      time.Time
	Address        string
	Reason         string
	AdditionalData map[string]any
	CompanyID      uuid.UUID
	UserID         uuid.UUID
	CreatedBy      *uuid.UUID
	UpdatedBy      *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
