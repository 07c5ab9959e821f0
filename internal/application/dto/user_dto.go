package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
// CompanyID solo lo honra un admin; para el resto se fuerza la empresa del llamador.
type CreateUserRequest struct {
	Username        string     `json:"username" validate:"required,min=5,max=20"`
	Password        string     `json:"password" validate:"required,min=8,max=100"`
	ConfirmPassword string     `json:"confirm_password" validate:"required,eqfield=Password"`
	Email           string     `json:"email" validate:"required,email,min=5,max=70"`
	Document        string     `json:"document" validate:"required,min=8,max=12"`
	DocumentType    string     `json:"document_type" validate:"required,oneof=CC CE TI PP"`
	FirstName       string     `json:"first_name" validate:"required,min=2,max=50"`
	LastName        string     `json:"last_name" validate:"required,min=2,max=50"`
	BirthDate       time.Time  `json:"birth_date" validate:"required"`
	PhoneNumber     string     `json:"phone_number" validate:"required,min=10,max=15"`
	Role            string     `json:"role" validate:"required,oneof=admin company_manager attendance_officer"`
	CompanyID       *uuid.UUID `json:"company_id" validate:"omitempty"`
}

// UpdateUserRequest entrada para modificar un usuario. Password opcional.
type UpdateUserRequest struct {
	Password        string     `json:"password" validate:"omitempty,min=8,max=100"`
	ConfirmPassword string     `json:"confirm_password" validate:"eqfield=Password"`
	Email           string     `json:"email" validate:"required,email,min=5,max=70"`
	Document        string     `json:"document" validate:"required,min=8,max=12"`
	DocumentType    string     `json:"document_type" validate:"required,oneof=CC CE TI PP"`
	FirstName       string     `json:"first_name" validate:"required,min=2,max=50"`
	LastName        string     `json:"last_name" validate:"required,min=2,max=50"`
	BirthDate       time.Time  `json:"birth_date" validate:"required"`
	PhoneNumber     string     `json:"phone_number" validate:"required,min=10,max=15"`
	Role            string     `json:"role" validate:"required,oneof=admin company_manager attendance_officer"`
	CompanyID       *uuid.UUID `json:"company_id" validate:"omitempty"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	UID          uuid.UUID  `json:"uid"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Document     string     `json:"document"`
	DocumentType string     `json:"document_type"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	BirthDate    time.Time  `json:"birth_date"`
	PhoneNumber  string     `json:"phone_number"`
	Role         string     `json:"role"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
	UpdatedBy    *uuid.UUID `json:"updated_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
