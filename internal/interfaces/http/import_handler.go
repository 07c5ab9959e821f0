package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/asistify/asistencias-api/internal/application/importer"
)

// ImportHandler maneja la carga de archivos de asistencias (multipart).
type ImportHandler struct {
	uc *importer.ImportUseCase
}

// NewImportHandler construye el handler inyectando el caso de uso.
func NewImportHandler(uc *importer.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// FromFile recibe un archivo en el campo "file", lo parsea y envía el lote al
// servicio de asistencias reenviando el bearer del llamador.
func (h *ImportHandler) FromFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "campo multipart 'file' requerido")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "no se pudo abrir el archivo")
	}
	defer file.Close()

	out, err := h.uc.FromFile(c.Context(), GetPrincipal(c), fileHeader.Filename, file)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
