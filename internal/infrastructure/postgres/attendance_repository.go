package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asistify/asistencias-api/internal/domain/entity"
	"github.com/asistify/asistencias-api/internal/domain/repository"
	"github.com/asistify/asistencias-api/pkg/strutil"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

const attendanceColumns = `id, full_name, document, document_type, gender, birth_date,
	address, reason, additional_data, company_id, user_id,
	created_by, updated_by, created_at, updated_at`

const attendanceInsert = `
	INSERT INTO attendances (` + attendanceColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

// AttendanceRepo implementación del puerto AttendanceRepository sobre PostgreSQL.
// additional_data es una columna jsonb con los campos extra que exige la empresa.
type AttendanceRepo struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository construye el adaptador de persistencia para asistencias.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepo {
	return &AttendanceRepo{pool: pool}
}

// Create persiste una nueva asistencia.
func (r *AttendanceRepo) Create(ctx context.Context, attendance *entity.Attendance) error {
	extra, err := toJSON(attendance.AdditionalData)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, attendanceInsert, insertArgs(attendance, extra)...)
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// CreateBatch inserta el lote completo dentro de una transacción: si una fila
// falla no queda ninguna (importación masiva todo-o-nada).
func (r *AttendanceRepo) CreateBatch(ctx context.Context, attendances []*entity.Attendance) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, a := range attendances {
		extra, err := toJSON(a.AdditionalData)
		if err != nil {
			return err
		}
		batch.Queue(attendanceInsert, insertArgs(a, extra)...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert attendance batch: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una asistencia por id. Sin fila devuelve (nil, nil).
func (r *AttendanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// Update actualiza una asistencia existente.
func (r *AttendanceRepo) Update(ctx context.Context, attendance *entity.Attendance) error {
	extra, err := toJSON(attendance.AdditionalData)
	if err != nil {
		return err
	}
	query := `
		UPDATE attendances SET full_name = $2, document = $3, document_type = $4, gender = $5,
			birth_date = $6, address = $7, reason = $8, additional_data = $9,
			updated_by = $10, updated_at = $11
		WHERE id = $1`
	_, err = r.pool.Exec(ctx, query,
		attendance.ID, attendance.FullName, attendance.Document, attendance.DocumentType,
		attendance.Gender, attendance.BirthDate, attendance.Address, attendance.Reason,
		extra, attendance.UpdatedBy, attendance.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	return nil
}

// List lista asistencias según el filtro; la búsqueda cubre nombre y documento.
func (r *AttendanceRepo) List(ctx context.Context, f repository.AttendanceFilter) ([]*entity.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE 1=1`
	args := []any{}
	if f.CompanyID != nil {
		args = append(args, *f.CompanyID)
		query += fmt.Sprintf(" AND company_id = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, searchPattern(strutil.NormalizeSearch(f.Search)))
		n := len(args)
		query += fmt.Sprintf(" AND (full_name ILIKE $%d OR document ILIKE $%d)", n, n)
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	defer rows.Close()

	var list []*entity.Attendance
	for rows.Next() {
		a, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Delete elimina una asistencia por id.
func (r *AttendanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	return nil
}

func insertArgs(a *entity.Attendance, extra any) []any {
	return []any{
		a.ID, a.FullName, a.Document, a.DocumentType, a.Gender, a.BirthDate,
		a.Address, a.Reason, extra, a.CompanyID, a.UserID,
		a.CreatedBy, a.UpdatedBy, a.CreatedAt, a.UpdatedAt,
	}
}

func (r *AttendanceRepo) scanOne(row pgx.Row) (*entity.Attendance, error) {
	var a entity.Attendance
	var extra []byte
	err := row.Scan(
		&a.ID, &a.FullName, &a.Document, &a.DocumentType, &a.Gender, &a.BirthDate,
		&a.Address, &a.Reason, &extra, &a.CompanyID, &a.UserID,
		&a.CreatedBy, &a.UpdatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan attendance: %w", err)
	}
	if err := fromJSON(extra, &a.AdditionalData); err != nil {
		return nil, err
	}
	return &a, nil
}
