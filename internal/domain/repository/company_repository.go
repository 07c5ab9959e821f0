package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/asistify/asistencias-api/internal/domain/entity"
)

// CompanyFilter criterios de listado de empresas.
type CompanyFilter struct {
	Search string
	Limit  int
	Offset int
}

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	GetByNIT(ctx context.Context, nit string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, f CompanyFilter) ([]*entity.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
