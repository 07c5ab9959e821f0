package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/asistify/asistencias-api/internal/application/auth"
	"github.com/asistify/asistencias-api/internal/application/dto"
)

// AuthHandler maneja emisión y validación de tokens y el usuario actual.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Token emite un JWT a cambio de username/password (form o JSON).
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Username == "" || in.Password == "" {
		return badRequest(c, "username y password son requeridos")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ValidateToken valida el bearer de la petición y devuelve su identidad.
// No consulta la base: la validez es criptográfica y temporal.
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	tokenString, errResp := bearerToken(c)
	if errResp != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(errResp)
	}
	out, err := h.uc.ValidateToken(tokenString)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Me devuelve el usuario detrás del bearer, leído de la base.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	tokenString, errResp := bearerToken(c)
	if errResp != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(errResp)
	}
	out, err := h.uc.CurrentUser(c.Context(), tokenString)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
