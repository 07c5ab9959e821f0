package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/application/ports"
	"github.com/asistify/asistencias-api/internal/domain"
	"github.com/asistify/asistencias-api/internal/domain/entity"
	"github.com/asistify/asistencias-api/internal/domain/repository"
)

// AttendanceUseCase aplica reglas de negocio para asistencias: scoping por
// empresa y verificación remota de la empresa antes de escribir.
type AttendanceUseCase struct {
	repo     repository.AttendanceRepository
	verifier ports.CompanyVerifier
}

// NewAttendanceUseCase construye el caso de uso con sus puertos.
func NewAttendanceUseCase(repo repository.AttendanceRepository, verifier ports.CompanyVerifier) *AttendanceUseCase {
	return &AttendanceUseCase{repo: repo, verifier: verifier}
}

// List lista asistencias visibles para el principal; el filtro de empresa
// va en la query, nunca como post-filtrado.
func (uc *AttendanceUseCase) List(ctx context.Context, p entity.Principal, page dto.PageRequest) ([]*dto.AttendanceResponse, error) {
	companyID, err := scopeCompany(p)
	if err != nil {
		return nil, err
	}
	page.DefaultPage()
	attendances, err := uc.repo.List(ctx, repository.AttendanceFilter{
		CompanyID: companyID,
		Search:    page.Search,
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AttendanceResponse, 0, len(attendances))
	for _, a := range attendances {
		out = append(out, toAttendanceResponse(a))
	}
	return out, nil
}

// GetByID obtiene una asistencia dentro del alcance del principal.
func (uc *AttendanceUseCase) GetByID(ctx context.Context, p entity.Principal, id uuid.UUID) (*dto.AttendanceResponse, error) {
	attendance, err := uc.readScoped(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return toAttendanceResponse(attendance), nil
}

// Create registra una asistencia. La empresa destino se resuelve con la regla
// de override (un no-admin siempre escribe en la suya) y se verifica por
// llamada remota antes del insert; chequeo e insert no son atómicos entre sí.
func (uc *AttendanceUseCase) Create(ctx context.Context, p entity.Principal, in dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	companyID, err := uc.resolveAndVerify(ctx, p, in.CompanyID)
	if err != nil {
		return nil, err
	}
	attendance := newAttendance(p, companyID, in)
	if err := uc.repo.Create(ctx, attendance); err != nil {
		return nil, err
	}
	return toAttendanceResponse(attendance), nil
}

// CreateMultiple inserta un lote completo (importación masiva). La empresa se
// resuelve y verifica una sola vez para todo el lote; el insert es todo-o-nada.
func (uc *AttendanceUseCase) CreateMultiple(ctx context.Context, p entity.Principal, in dto.AttendanceCreateMultiple) (int, error) {
	if err := dto.Validate(in); err != nil {
		return 0, err
	}
	companyID, err := uc.resolveAndVerify(ctx, p, nil)
	if err != nil {
		return 0, err
	}
	batch := make([]*entity.Attendance, 0, len(in.Attendances))
	for _, row := range in.Attendances {
		batch = append(batch, newAttendance(p, companyID, row))
	}
	if err := uc.repo.CreateBatch(ctx, batch); err != nil {
		return 0, err
	}
	return len(batch), nil
}

// Update modifica una asistencia dentro del alcance del principal.
func (uc *AttendanceUseCase) Update(ctx context.Context, p entity.Principal, id uuid.UUID, in dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	attendance, err := uc.readScoped(ctx, p, id)
	if err != nil {
		return nil, err
	}
	updatedBy := p.ID
	attendance.FullName = in.FullName
	attendance.Document = in.Document
	attendance.DocumentType = in.DocumentType
	attendance.Gender = in.Gender
	attendance.BirthDate = in.BirthDate
	attendance.Address = in.Address
	attendance.Reason = in.Reason
	attendance.AdditionalData = in.AdditionalData
	attendance.UpdatedBy = &updatedBy
	attendance.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, attendance); err != nil {
		return nil, err
	}
	return toAttendanceResponse(attendance), nil
}

// Delete elimina una asistencia dentro del alcance. Borrar dos veces el mismo
// id da éxito y luego ErrNotFound, sin efectos secundarios.
func (uc *AttendanceUseCase) Delete(ctx context.Context, p entity.Principal, id uuid.UUID) (*dto.ResourceDelete, error) {
	attendance, err := uc.readScoped(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, attendance.ID); err != nil {
		return nil, err
	}
	return &dto.ResourceDelete{UID: attendance.ID, Deleted: true}, nil
}

// resolveAndVerify decide la empresa destino y confirma contra el servicio de
// empresas que sigue existiendo y es visible. Un admin debe indicar empresa y
// se consulta por id; un no-admin escribe en la suya y se verifica vía
// /companies/me (este rol no puede leer empresas por id río arriba).
func (uc *AttendanceUseCase) resolveAndVerify(ctx context.Context, p entity.Principal, requested *uuid.UUID) (uuid.UUID, error) {
	companyID, err := resolveWriteCompany(p, requested)
	if err != nil {
		return uuid.Nil, err
	}
	if companyID == nil {
		return uuid.Nil, &domain.ValidationError{Field: "company_id", Reason: "es requerido"}
	}
	if p.IsAdmin() {
		if err := uc.verifier.VerifyByID(ctx, p.Token, *companyID); err != nil {
			return uuid.Nil, err
		}
	} else {
		if err := uc.verifier.VerifyOwn(ctx, p.Token, *companyID); err != nil {
			return uuid.Nil, err
		}
	}
	return *companyID, nil
}

func (uc *AttendanceUseCase) readScoped(ctx context.Context, p entity.Principal, id uuid.UUID) (*entity.Attendance, error) {
	if _, err := scopeCompany(p); err != nil {
		return nil, err
	}
	attendance, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if attendance == nil {
		return nil, domain.ErrNotFound
	}
	if !p.IsAdmin() && !p.SameCompany(attendance.CompanyID) {
		return nil, domain.ErrNotFound
	}
	return attendance, nil
}

func newAttendance(p entity.Principal, companyID uuid.UUID, in dto.CreateAttendanceRequest) *entity.Attendance {
	now := time.Now()
	createdBy := p.ID
	return &entity.Attendance{
		ID:             uuid.New(),
		FullName:       in.FullName,
		Document:       in.Document,
		DocumentType:   in.DocumentType,
		Gender:         in.Gender,
		BirthDate:      in.BirthDate,
		Address:        in.Address,
		Reason:         in.Reason,
		AdditionalData: in.AdditionalData,
		CompanyID:      companyID,
		UserID:         p.ID,
		CreatedBy:      &createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func toAttendanceResponse(a *entity.Attendance) *dto.AttendanceResponse {
	if a == nil {
		return nil
	}
	return &dto.AttendanceResponse{
		UID:            a.ID,
		FullName:       a.FullName,
		Document:       a.Document,
		DocumentType:   a.DocumentType,
		Gender:         a.Gender,
		BirthDate:      a.BirthDate,
		Address:        a.Address,
		Reason:         a.Reason,
		AdditionalData: a.AdditionalData,
		CompanyID:      a.CompanyID,
		UserID:         a.UserID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
