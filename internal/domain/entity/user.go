package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de documento de identidad (Colombia).
const (
	DocumentCC = "CC" // cédula de ciudadanía
	DocumentCE = "CE" // cédula de extranjería
	DocumentTI = "TI" // tarjeta de identidad
	DocumentPP = "PP" // pasaporte
)

// User representa un usuario del sistema. CompanyID es nil solo para
// administradores globales; el resto de roles opera dentro de su empresa.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string // bcrypt, nunca en texto plano después de persistir
	Email        string
	Document     string
	DocumentType string
	FirstName    string
	LastName     string
	BirthDate    time.Time
	PhoneNumber  string
	Role         Role
	CompanyID    *uuid.UUID
	CreatedBy    *uuid.UUID
	UpdatedBy    *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
