package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	// ErrNotFound cubre también el caso "fuera de alcance": un recurso de otra
	// empresa se reporta igual que uno inexistente, nunca se revela cuál fue.
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidToken = errors.New("token inválido o expirado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrNoCompany    = errors.New("el usuario no pertenece a ninguna empresa")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrValidation   = errors.New("entrada inválida")

	// ErrUpstreamUnavailable: la verificación remota no se pudo completar
	// (red caída, timeout o respuesta ilegible). Un solo intento, sin reintentos.
	ErrUpstreamUnavailable = errors.New("servicio remoto no disponible")
)

// UpstreamError: el servicio remoto respondió y rechazó la referencia.
// Status y Detail se propagan tal cual al cliente original.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("rechazo del servicio remoto (%d): %s", e.StatusCode, e.Detail)
}

// ValidationError lleva el campo que falló para respuestas con detalle por campo.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
