package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/asistify/asistencias-api/internal/application/auth"
	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/application/ports"
	"github.com/asistify/asistencias-api/internal/domain"
	"github.com/asistify/asistencias-api/internal/domain/entity"
	"github.com/asistify/asistencias-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios: scoping por empresa,
// asignación de roles acotada y verificación remota de la empresa referenciada.
type UserUseCase struct {
	repo     repository.UserRepository
	verifier ports.CompanyVerifier
}

// NewUserUseCase construye el caso de uso con sus puertos.
func NewUserUseCase(repo repository.UserRepository, verifier ports.CompanyVerifier) *UserUseCase {
	return &UserUseCase{repo: repo, verifier: verifier}
}

// List lista usuarios visibles para el principal. El filtro de empresa se
// aplica en la query, nunca como post-filtrado.
func (uc *UserUseCase) List(ctx context.Context, p entity.Principal, page dto.PageRequest) ([]*dto.UserResponse, error) {
	companyID, err := scopeCompany(p)
	if err != nil {
		return nil, err
	}
	page.DefaultPage()
	users, err := uc.repo.List(ctx, repository.UserFilter{
		CompanyID: companyID,
		Search:    page.Search,
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario dentro del alcance del principal.
func (uc *UserUseCase) GetByID(ctx context.Context, p entity.Principal, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := uc.readScoped(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// GetByUsername obtiene un usuario por username dentro del alcance del principal.
func (uc *UserUseCase) GetByUsername(ctx context.Context, p entity.Principal, username string) (*dto.UserResponse, error) {
	if _, err := scopeCompany(p); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !visibleTo(p, user) {
		// Fuera de alcance e inexistente son indistinguibles a propósito.
		return nil, domain.ErrNotFound
	}
	return auth.ToUserResponse(user), nil
}

// Create crea un usuario. Antes de escribir verifica por llamada remota que
// la empresa referenciada existe y es visible para el llamador; el chequeo y
// el insert no son atómicos entre sí (brecha asumida, sin reintentos).
func (uc *UserUseCase) Create(ctx context.Context, p entity.Principal, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	role := entity.Role(in.Role)
	if !p.IsAdmin() && role != entity.RoleAttendanceOfficer {
		// Un company_manager solo puede crear attendance_officers.
		return nil, domain.ErrForbidden
	}
	companyID, err := resolveWriteCompany(p, in.CompanyID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	if companyID != nil {
		if err := uc.verifyCompany(ctx, p, *companyID); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	createdBy := p.ID
	user := &entity.User{
		ID:           uuid.New(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		Document:     in.Document,
		DocumentType: in.DocumentType,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		BirthDate:    in.BirthDate,
		PhoneNumber:  in.PhoneNumber,
		Role:         role,
		CompanyID:    companyID,
		CreatedBy:    &createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update modifica un usuario dentro del alcance del principal. El password
// solo se rehashea si viene uno nuevo. Un no-admin no puede mover el usuario
// de empresa ni subirlo por encima de attendance_officer.
func (uc *UserUseCase) Update(ctx context.Context, p entity.Principal, id uuid.UUID, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	role := entity.Role(in.Role)
	if !p.IsAdmin() && role != entity.RoleAttendanceOfficer {
		return nil, domain.ErrForbidden
	}
	user, err := uc.readScoped(ctx, p, id)
	if err != nil {
		return nil, err
	}

	// Cambio de empresa: solo un admin puede pedirlo, y se verifica remoto.
	if p.IsAdmin() && in.CompanyID != nil {
		if user.CompanyID == nil || *user.CompanyID != *in.CompanyID {
			if err := uc.verifyCompany(ctx, p, *in.CompanyID); err != nil {
				return nil, err
			}
		}
		user.CompanyID = in.CompanyID
	}

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	updatedBy := p.ID
	user.Email = in.Email
	user.Document = in.Document
	user.DocumentType = in.DocumentType
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.BirthDate = in.BirthDate
	user.PhoneNumber = in.PhoneNumber
	user.Role = role
	user.UpdatedBy = &updatedBy
	user.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario dentro del alcance. Borrar dos veces el mismo id
// da éxito y luego ErrNotFound, nunca un error con efectos secundarios.
func (uc *UserUseCase) Delete(ctx context.Context, p entity.Principal, id uuid.UUID) (*dto.ResourceDelete, error) {
	user, err := uc.readScoped(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, user.ID); err != nil {
		return nil, err
	}
	return &dto.ResourceDelete{UID: user.ID, Deleted: true}, nil
}

func (uc *UserUseCase) readScoped(ctx context.Context, p entity.Principal, id uuid.UUID) (*entity.User, error) {
	if _, err := scopeCompany(p); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !visibleTo(p, user) {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// verifyCompany reenvía el bearer del principal; el servicio de empresas
// aplica su propio scoping (un manager no puede verificar una empresa que
// no ve). Los llamadores de este servicio son company_manager o superior,
// así que la consulta por id siempre está permitida río arriba.
func (uc *UserUseCase) verifyCompany(ctx context.Context, p entity.Principal, companyID uuid.UUID) error {
	return uc.verifier.VerifyByID(ctx, p.Token, companyID)
}

func visibleTo(p entity.Principal, u *entity.User) bool {
	if u == nil {
		return false
	}
	if p.IsAdmin() {
		return true
	}
	return u.CompanyID != nil && p.SameCompany(*u.CompanyID)
}
