package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/application/usecase"
)

// AttendanceHandler maneja las peticiones HTTP para el recurso Attendance.
type AttendanceHandler struct {
	uc *usecase.AttendanceUseCase
}

// NewAttendanceHandler construye el handler inyectando el caso de uso.
func NewAttendanceHandler(uc *usecase.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// List lista asistencias visibles para el llamador.
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros de paginación inválidos")
	}
	out, err := h.uc.List(c.Context(), GetPrincipal(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una asistencia por id dentro del alcance del llamador.
func (h *AttendanceHandler) GetByID(c *fiber.Ctx) error {
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

// Create registra una asistencia.
func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateMultiple inserta un lote de asistencias (importación masiva).
func (h *AttendanceHandler) CreateMultiple(c *fiber.Ctx) error {
	var in dto.AttendanceCreateMultiple
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	inserted, err := h.uc.CreateMultiple(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"inserted": inserted})
}

// Update modifica una asistencia.
func (h *AttendanceHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateAttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetPrincipal(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una asistencia.
func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.Delete(c.Context(), GetPrincipal(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
