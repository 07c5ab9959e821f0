package dto

import "github.com/google/uuid"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
	Search string `query:"search"`
}

// DefaultPage aplica valores por defecto y topes si Limit/Offset vienen fuera de rango.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ResourceDelete respuesta estándar de un DELETE exitoso.
type ResourceDelete struct {
	UID     uuid.UUID `json:"uid"`
	Deleted bool      `json:"deleted"`
}

// ErrorResponse cuerpo de error HTTP. Detail duplica Message: es el campo que
// los servicios hermanos leen al propagar un rechazo remoto.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
