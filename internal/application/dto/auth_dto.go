package dto

import "github.com/google/uuid"

// LoginRequest credenciales del grant por password. Acepta form y JSON.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TokenResponse salida de POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // siempre "bearer"
}

// TokenValidation salida de GET /validate-token.
type TokenValidation struct {
	Valid     bool       `json:"valid"`
	UserID    uuid.UUID  `json:"user_id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
}
