package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
// Las rutas de escritura por llave natural usan el NIT; la lectura por id
// existe además como vía de verificación para los servicios hermanos.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create crea una empresa (solo admin).
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista empresas (solo admin).
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros de paginación inválidos")
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Mine devuelve la empresa propia del llamador.
func (h *CompanyHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.Mine(c.Context(), GetPrincipal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una empresa por id dentro del alcance del llamador.
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(c.Context(), GetPrincipal(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByNIT obtiene una empresa por NIT dentro del alcance del llamador.
func (h *CompanyHandler) GetByNIT(c *fiber.Ctx) error {
	nit := c.Params("nit")
	if nit == "" {
		return badRequest(c, "nit es requerido")
	}
	out, err := h.uc.GetByNIT(c.Context(), GetPrincipal(c), nit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateByNIT modifica una empresa localizada por NIT.
func (h *CompanyHandler) UpdateByNIT(c *fiber.Ctx) error {
	nit := c.Params("nit")
	if nit == "" {
		return badRequest(c, "nit es requerido")
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateByNIT(c.Context(), GetPrincipal(c), nit, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteByNIT elimina una empresa por NIT (solo admin).
func (h *CompanyHandler) DeleteByNIT(c *fiber.Ctx) error {
	nit := c.Params("nit")
	if nit == "" {
		return badRequest(c, "nit es requerido")
	}
	out, err := h.uc.DeleteByNIT(c.Context(), GetPrincipal(c), nit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
