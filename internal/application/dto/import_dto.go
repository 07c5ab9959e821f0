package dto

// AttendanceImportRow fila cruda leída del archivo antes de validarse.
// Las columnas extra (más allá de las base) van a Additional.
type AttendanceImportRow struct {
	Line         int // número de línea en el archivo, para errores con contexto
	FullName     string
	Document     string
	DocumentType string
	Gender       string
	Address      string
	BirthDate    string
	Reason       string
	Additional   map[string]any
}

// AttendanceImportResponse salida del importador: lo que se parseó y lo que
// respondió el servicio de asistencias al insertar el lote.
type AttendanceImportResponse struct {
	Attendances       []CreateAttendanceRequest `json:"attendances"`
	InsertionResponse map[string]any            `json:"insertion_response"`
	FileExtension     string                    `json:"file_extension"`
}
