package ports

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/asistify/asistencias-api/internal/application/dto"
)

// CompanyVerifier confirma contra el servicio de empresas que una referencia
// company_id existe y es visible para el llamador. La llamada reenvía el
// bearer token del principal: el servicio dueño aplica su propio scoping.
//
// La verificación y la escritura local posterior NO son atómicas entre sí:
// la empresa puede borrarse entre el chequeo y el insert. Brecha documentada,
// sin reintentos ni compensación.
type CompanyVerifier interface {
	// VerifyByID consulta GET /companies/{id}. Requiere que el llamador tenga
	// al menos rol company_manager en el servicio remoto.
	VerifyByID(ctx context.Context, bearer string, id uuid.UUID) error
	// VerifyOwn consulta GET /companies/me y confirma que la empresa propia
	// del llamador sigue existiendo y coincide con el id esperado. Es la vía
	// de verificación para roles sin permiso de lectura por id.
	VerifyOwn(ctx context.Context, bearer string, id uuid.UUID) error
}

// AttendanceSubmitter envía un lote de asistencias al servicio de asistencias
// (usado por el importador), reenviando el bearer token del llamador.
type AttendanceSubmitter interface {
	SubmitBatch(ctx context.Context, bearer string, batch dto.AttendanceCreateMultiple) (map[string]any, error)
}

// RowParser convierte un archivo subido en filas de asistencia.
// CSV está implementado; otros formatos (xlsx) pueden registrarse por extensión.
type RowParser interface {
	// Extensions extensiones de archivo que este parser acepta, sin punto ("csv").
	Extensions() []string
	Parse(r io.Reader, maxRows int) ([]dto.AttendanceImportRow, error)
}
