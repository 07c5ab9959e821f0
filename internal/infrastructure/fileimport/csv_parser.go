package fileimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/application/ports"
	"github.com/asistify/asistencias-api/internal/domain"
)

// baseColumns columnas obligatorias del archivo, en orden. Las columnas
// adicionales del encabezado se vuelcan en additional_data fila por fila.
var baseColumns = []string{
	"full_name",
	"document",
	"document_type",
	"gender",
	"address",
	"birth_date",
	"reason",
}

var _ ports.RowParser = (*CSVParser)(nil)

// CSVParser lee asistencias desde archivos CSV con encabezado.
type CSVParser struct{}

// NewCSVParser construye el parser CSV.
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// Extensions extensiones aceptadas.
func (p *CSVParser) Extensions() []string {
	return []string{"csv"}
}

// Parse lee hasta maxRows filas de datos. Filas completamente vacías se
// saltan; una fila con menos columnas que las base es un error con su línea.
func (p *CSVParser) Parse(r io.Reader, maxRows int) ([]dto.AttendanceImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // el ancho real se valida contra el encabezado

	header, err := reader.Read()
	if err != nil {
		return nil, &domain.ValidationError{Field: "file", Reason: "no se pudo leer el encabezado"}
	}
	if len(header) < len(baseColumns) {
		return nil, &domain.ValidationError{
			Field:  "file",
			Reason: fmt.Sprintf("el encabezado requiere al menos %d columnas", len(baseColumns)),
		}
	}
	additionalKeys := header[len(baseColumns):]

	var rows []dto.AttendanceImportRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &domain.ValidationError{
				Field:  "file",
				Reason: fmt.Sprintf("fila %d: CSV malformado", line),
			}
		}
		if isEmptyRecord(record) {
			continue
		}
		if len(rows) >= maxRows {
			break
		}
		if len(record) < len(baseColumns) {
			return nil, &domain.ValidationError{
				Field:  "file",
				Reason: fmt.Sprintf("fila %d: faltan columnas", line),
			}
		}

		row := dto.AttendanceImportRow{
			Line:         line,
			FullName:     strings.TrimSpace(record[0]),
			Document:     strings.TrimSpace(record[1]),
			DocumentType: strings.TrimSpace(record[2]),
			Gender:       strings.TrimSpace(record[3]),
			Address:      strings.TrimSpace(record[4]),
			BirthDate:    strings.TrimSpace(record[5]),
			Reason:       strings.TrimSpace(record[6]),
		}
		if len(additionalKeys) > 0 {
			row.Additional = make(map[string]any, len(additionalKeys))
			for i, key := range additionalKeys {
				idx := len(baseColumns) + i
				if idx < len(record) {
					row.Additional[key] = record[idx]
				}
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isEmptyRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
