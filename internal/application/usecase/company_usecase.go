package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/domain"
	"github.com/asistify/asistencias-api/internal/domain/entity"
	"github.com/asistify/asistencias-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas. Crear y borrar son
// operaciones de admin (lo impone el router); leer y actualizar respetan el
// scoping por empresa del principal.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una empresa. Devuelve domain.ErrDuplicate si el NIT ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, p entity.Principal, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByNIT(ctx, in.NIT)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	createdBy := p.ID
	company := &entity.Company{
		ID:                         uuid.New(),
		NIT:                        in.NIT,
		Name:                       in.Name,
		ContactNumber:              in.ContactNumber,
		CenterType:                 in.CenterType,
		OwnershipType:              in.OwnershipType,
		Addresses:                  in.Addresses,
		AdditionalAttendanceFields: in.AdditionalAttendanceFields,
		CreatedBy:                  &createdBy,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List lista empresas (solo admin llega aquí).
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.CompanyResponse, error) {
	page.DefaultPage()
	companies, err := uc.repo.List(ctx, repository.CompanyFilter{
		Search: page.Search,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, toCompanyResponse(c))
	}
	return out, nil
}

// GetByID obtiene una empresa por id dentro del alcance del principal.
// Un mismatch de empresa responde igual que una empresa inexistente.
func (uc *CompanyUseCase) GetByID(ctx context.Context, p entity.Principal, id uuid.UUID) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !companyVisibleTo(p, company) {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// GetByNIT obtiene una empresa por NIT dentro del alcance del principal.
func (uc *CompanyUseCase) GetByNIT(ctx context.Context, p entity.Principal, nit string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByNIT(ctx, nit)
	if err != nil {
		return nil, err
	}
	if !companyVisibleTo(p, company) {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Mine devuelve la empresa propia del principal (GET /companies/me).
// Es también la vía con la que los servicios hermanos verifican la empresa
// de un principal sin permiso de lectura por id.
func (uc *CompanyUseCase) Mine(ctx context.Context, p entity.Principal) (*dto.CompanyResponse, error) {
	if p.CompanyID == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.repo.GetByID(ctx, *p.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// UpdateByNIT modifica una empresa localizada por NIT, dentro del alcance.
func (uc *CompanyUseCase) UpdateByNIT(ctx context.Context, p entity.Principal, nit string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByNIT(ctx, nit)
	if err != nil {
		return nil, err
	}
	if !companyVisibleTo(p, company) {
		return nil, domain.ErrNotFound
	}
	updatedBy := p.ID
	company.NIT = in.NIT
	company.Name = in.Name
	company.ContactNumber = in.ContactNumber
	company.CenterType = in.CenterType
	company.OwnershipType = in.OwnershipType
	company.Addresses = in.Addresses
	company.AdditionalAttendanceFields = in.AdditionalAttendanceFields
	company.UpdatedBy = &updatedBy
	company.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// DeleteByNIT elimina una empresa por NIT (solo admin llega aquí).
// Repetir el borrado da ErrNotFound limpio, sin efectos.
func (uc *CompanyUseCase) DeleteByNIT(ctx context.Context, p entity.Principal, nit string) (*dto.ResourceDelete, error) {
	company, err := uc.repo.GetByNIT(ctx, nit)
	if err != nil {
		return nil, err
	}
	if !companyVisibleTo(p, company) {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, company.ID); err != nil {
		return nil, err
	}
	return &dto.ResourceDelete{UID: company.ID, Deleted: true}, nil
}

func companyVisibleTo(p entity.Principal, c *entity.Company) bool {
	if c == nil {
		return false
	}
	if p.IsAdmin() {
		return true
	}
	return p.SameCompany(c.ID)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		UID:                        c.ID,
		NIT:                        c.NIT,
		Name:                       c.Name,
		ContactNumber:              c.ContactNumber,
		CenterType:                 c.CenterType,
		OwnershipType:              c.OwnershipType,
		Addresses:                  c.Addresses,
		AdditionalAttendanceFields: c.AdditionalAttendanceFields,
		CreatedBy:                  c.CreatedBy,
		UpdatedBy:                  c.UpdatedBy,
		CreatedAt:                  c.CreatedAt,
		UpdatedAt:                  c.UpdatedAt,
	}
}
