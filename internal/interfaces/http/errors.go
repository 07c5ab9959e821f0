package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP. El cuerpo lleva
// code, message y detail; los servicios hermanos leen detail al propagar
// rechazos entre sí, así que siempre va poblado.
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return respond(c, fiber.StatusBadRequest, "VALIDATION", verr.Error())
	}
	var uerr *domain.UpstreamError
	if errors.As(err, &uerr) {
		// El rechazo remoto se propaga con su status y detalle originales.
		return respond(c, uerr.StatusCode, "UPSTREAM_REJECTED", uerr.Detail)
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return respond(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
	case errors.Is(err, domain.ErrInvalidToken):
		return respond(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
	case errors.Is(err, domain.ErrUnauthorized):
		return respond(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return respond(c, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado")
	case errors.Is(err, domain.ErrNoCompany):
		return respond(c, fiber.StatusBadRequest, "NO_COMPANY", "el usuario no pertenece a ninguna empresa")
	case errors.Is(err, domain.ErrDuplicate):
		return respond(c, fiber.StatusConflict, "DUPLICATE", "recurso duplicado")
	case errors.Is(err, domain.ErrValidation):
		return respond(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return respond(c, fiber.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "servicio remoto no disponible")
	default:
		return respond(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

func respond(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message, Detail: message})
}

// badRequest respuesta para cuerpos o parámetros que ni siquiera parsean.
func badRequest(c *fiber.Ctx, message string) error {
	return respond(c, fiber.StatusBadRequest, "INVALID_BODY", message)
}
