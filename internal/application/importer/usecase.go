package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/application/ports"
	"github.com/asistify/asistencias-api/internal/domain"
	"github.com/asistify/asistencias-api/internal/domain/entity"
)

// birthDateLayouts formatos aceptados en la columna birth_date.
var birthDateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05", "02/01/2006"}

// ImportUseCase convierte un archivo subido en un lote de asistencias y lo
// envía al servicio de asistencias reenviando el bearer del llamador. El
// importador no persiste nada localmente: el insert ocurre río arriba.
type ImportUseCase struct {
	parsers   map[string]ports.RowParser // por extensión, sin punto
	submitter ports.AttendanceSubmitter
	maxRows   int
}

// NewImportUseCase registra los parsers disponibles por extensión.
func NewImportUseCase(submitter ports.AttendanceSubmitter, maxRows int, parsers ...ports.RowParser) *ImportUseCase {
	byExt := make(map[string]ports.RowParser)
	for _, p := range parsers {
		for _, ext := range p.Extensions() {
			byExt[strings.ToLower(ext)] = p
		}
	}
	return &ImportUseCase{parsers: byExt, submitter: submitter, maxRows: maxRows}
}

// FromFile parsea el archivo, valida cada fila (con número de fila en el
// error) y envía el lote completo en una sola llamada remota.
func (uc *ImportUseCase) FromFile(ctx context.Context, p entity.Principal, filename string, r io.Reader) (*dto.AttendanceImportResponse, error) {
	if filename == "" {
		return nil, &domain.ValidationError{Field: "file", Reason: "falta el nombre del archivo"}
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	parser, ok := uc.parsers[ext]
	if !ok {
		return nil, &domain.ValidationError{Field: "file", Reason: "extensión de archivo no soportada"}
	}

	rows, err := parser.Parse(r, uc.maxRows)
	if err != nil {
		return nil, err
	}

	attendances := make([]dto.CreateAttendanceRequest, 0, len(rows))
	for _, row := range rows {
		att, err := rowToRequest(row)
		if err != nil {
			return nil, err
		}
		attendances = append(attendances, att)
	}
	if len(attendances) == 0 {
		return nil, &domain.ValidationError{Field: "file", Reason: "el archivo no contiene filas"}
	}

	insertion, err := uc.submitter.SubmitBatch(ctx, p.Token, dto.AttendanceCreateMultiple{Attendances: attendances})
	if err != nil {
		return nil, err
	}
	return &dto.AttendanceImportResponse{
		Attendances:       attendances,
		InsertionResponse: insertion,
		FileExtension:     ext,
	}, nil
}

// rowToRequest valida y convierte una fila cruda; los errores llevan la fila
// del archivo para que el usuario pueda corregirla.
func rowToRequest(row dto.AttendanceImportRow) (dto.CreateAttendanceRequest, error) {
	birthDate, err := parseBirthDate(row.BirthDate)
	if err != nil {
		return dto.CreateAttendanceRequest{}, rowError(row.Line, "birth_date", "fecha inválida")
	}
	att := dto.CreateAttendanceRequest{
		FullName:       row.FullName,
		Document:       row.Document,
		DocumentType:   row.DocumentType,
		Gender:         row.Gender,
		BirthDate:      birthDate,
		Address:        row.Address,
		Reason:         row.Reason,
		AdditionalData: row.Additional,
	}
	if err := dto.Validate(att); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return dto.CreateAttendanceRequest{}, rowError(row.Line, verr.Field, verr.Reason)
		}
		return dto.CreateAttendanceRequest{}, err
	}
	return att, nil
}

func parseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("formato de fecha no reconocido: %q", s)
}

func rowError(line int, field, reason string) *domain.ValidationError {
	return &domain.ValidationError{
		Field:  field,
		Reason: fmt.Sprintf("fila %d: %s", line, reason),
	}
}
