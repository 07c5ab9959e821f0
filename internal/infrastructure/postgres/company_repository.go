package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asistify/asistencias-api/internal/domain"
	"github.com/asistify/asistencias-api/internal/domain/entity"
	"github.com/asistify/asistencias-api/internal/domain/repository"
	"github.com/asistify/asistencias-api/pkg/strutil"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, nit, name, contact_number, center_type, ownership_type,
	addresses, additional_attendance_fields, created_by, updated_by, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
// Las direcciones y los campos adicionales de asistencia van en columnas jsonb.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa. NIT duplicado -> domain.ErrDuplicate.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	addresses, err := toJSON(company.Addresses)
	if err != nil {
		return err
	}
	extraFields, err := toJSON(company.AdditionalAttendanceFields)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.pool.Exec(ctx, query,
		company.ID, company.NIT, company.Name, company.ContactNumber, company.CenterType,
		company.OwnershipType, addresses, extraFields,
		company.CreatedBy, company.UpdatedBy, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por id. Sin fila devuelve (nil, nil).
func (r *CompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// GetByNIT obtiene una empresa por NIT. Sin fila devuelve (nil, nil).
func (r *CompanyRepo) GetByNIT(ctx context.Context, nit string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE nit = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, nit))
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	addresses, err := toJSON(company.Addresses)
	if err != nil {
		return err
	}
	extraFields, err := toJSON(company.AdditionalAttendanceFields)
	if err != nil {
		return err
	}
	query := `
		UPDATE companies SET nit = $2, name = $3, contact_number = $4, center_type = $5,
			ownership_type = $6, addresses = $7, additional_attendance_fields = $8,
			updated_by = $9, updated_at = $10
		WHERE id = $1`
	_, err = r.pool.Exec(ctx, query,
		company.ID, company.NIT, company.Name, company.ContactNumber, company.CenterType,
		company.OwnershipType, addresses, extraFields, company.UpdatedBy, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List lista empresas con paginación y búsqueda por nombre o NIT.
func (r *CompanyRepo) List(ctx context.Context, f repository.CompanyFilter) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE 1=1`
	args := []any{}
	if f.Search != "" {
		args = append(args, searchPattern(strutil.NormalizeSearch(f.Search)))
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR nit ILIKE $%d)", n, n)
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa por id.
func (r *CompanyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

func (r *CompanyRepo) scanOne(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	var addresses, extraFields []byte
	err := row.Scan(
		&c.ID, &c.NIT, &c.Name, &c.ContactNumber, &c.CenterType, &c.OwnershipType,
		&addresses, &extraFields, &c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan company: %w", err)
	}
	if err := fromJSON(addresses, &c.Addresses); err != nil {
		return nil, err
	}
	if err := fromJSON(extraFields, &c.AdditionalAttendanceFields); err != nil {
		return nil, err
	}
	return &c, nil
}
