package usecase_test

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/asistify/asistencias-api/internal/domain/entity"
	"github.com/asistify/asistencias-api/internal/domain/repository"
)

var (
	companyA = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	companyB = uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000002")
)

func adminPrincipal() entity.Principal {
	return entity.Principal{
		ID:       uuid.MustParse("00000000-0000-0000-0000-0000000000aa"),
		Username: "root",
		Role:     entity.RoleAdmin,
		Token:    "admin-token",
	}
}

func managerPrincipal(companyID uuid.UUID) entity.Principal {
	return entity.Principal{
		ID:        uuid.MustParse("00000000-0000-0000-0000-0000000000bb"),
		Username:  "manager",
		Role:      entity.RoleCompanyManager,
		CompanyID: &companyID,
		Token:     "manager-token",
	}
}

func officerPrincipal(companyID uuid.UUID) entity.Principal {
	return entity.Principal{
		ID:        uuid.MustParse("00000000-0000-0000-0000-0000000000cc"),
		Username:  "officer",
		Role:      entity.RoleAttendanceOfficer,
		CompanyID: &companyID,
		Token:     "officer-token",
	}
}

// ── Fakes de repositorios en memoria ─────────────────────────────────────────

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, f repository.UserFilter) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if f.CompanyID != nil && (u.CompanyID == nil || *u.CompanyID != *f.CompanyID) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

type fakeCompanyRepo struct {
	companies map[uuid.UUID]*entity.Company
}

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{companies: map[uuid.UUID]*entity.Company{}}
	for _, c := range companies {
		r.companies[c.ID] = c
	}
	return r
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) GetByNIT(_ context.Context, nit string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.NIT == nit {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) List(_ context.Context, _ repository.CompanyFilter) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.companies, id)
	return nil
}

type fakeAttendanceRepo struct {
	attendances map[uuid.UUID]*entity.Attendance
	batchErr    error
}

func newFakeAttendanceRepo(attendances ...*entity.Attendance) *fakeAttendanceRepo {
	r := &fakeAttendanceRepo{attendances: map[uuid.UUID]*entity.Attendance{}}
	for _, a := range attendances {
		r.attendances[a.ID] = a
	}
	return r
}

func (r *fakeAttendanceRepo) Create(_ context.Context, a *entity.Attendance) error {
	r.attendances[a.ID] = a
	return nil
}

func (r *fakeAttendanceRepo) CreateBatch(_ context.Context, batch []*entity.Attendance) error {
	if r.batchErr != nil {
		return r.batchErr
	}
	for _, a := range batch {
		r.attendances[a.ID] = a
	}
	return nil
}

func (r *fakeAttendanceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Attendance, error) {
	return r.attendances[id], nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, a *entity.Attendance) error {
	r.attendances[a.ID] = a
	return nil
}

func (r *fakeAttendanceRepo) List(_ context.Context, f repository.AttendanceFilter) ([]*entity.Attendance, error) {
	var out []*entity.Attendance
	for _, a := range r.attendances {
		if f.CompanyID != nil && a.CompanyID != *f.CompanyID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAttendanceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.attendances, id)
	return nil
}

// ── Fake del verificador remoto ──────────────────────────────────────────────

// fakeVerifier registra qué vía de verificación se usó y devuelve el error
// configurado.
type fakeVerifier struct {
	byIDCalls []uuid.UUID
	ownCalls  []uuid.UUID
	err       error
}

func (v *fakeVerifier) VerifyByID(_ context.Context, _ string, id uuid.UUID) error {
	v.byIDCalls = append(v.byIDCalls, id)
	return v.err
}

func (v *fakeVerifier) VerifyOwn(_ context.Context, _ string, id uuid.UUID) error {
	v.ownCalls = append(v.ownCalls, id)
	return v.err
}

// ── Datos de ejemplo ─────────────────────────────────────────────────────────

func sampleUser(companyID uuid.UUID, role entity.Role) *entity.User {
	id := uuid.New()
	cid := companyID
	return &entity.User{
		ID:           id,
		Username:     "user_" + id.String()[:8],
		PasswordHash: "$2a$10$hash",
		Email:        "user@example.com",
		Document:     "123456789",
		DocumentType: entity.DocumentCC,
		FirstName:    "Ana",
		LastName:     "Gómez",
		BirthDate:    time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
		PhoneNumber:  "3001234567",
		Role:         role,
		CompanyID:    &cid,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func sampleCompany(id uuid.UUID, nit string) *entity.Company {
	return &entity.Company{
		ID:            id,
		NIT:           nit,
		Name:          "Clínica del Norte",
		ContactNumber: "6015551234",
		CenterType:    entity.CenterClinic,
		OwnershipType: entity.OwnershipPrivate,
		Addresses:     []string{"Calle 100 #15-20"},
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func sampleAttendance(companyID uuid.UUID) *entity.Attendance {
	return &entity.Attendance{
		ID:           uuid.New(),
		FullName:     "Pedro Martínez",
		Document:     "987654321",
		DocumentType: entity.DocumentCC,
		Gender:       entity.GenderMale,
		BirthDate:    time.Date(1985, 3, 2, 0, 0, 0, 0, time.UTC),
		Address:      "Carrera 7 #45-10",
		Reason:       "consulta general",
		CompanyID:    companyID,
		UserID:       uuid.New(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

var errBoom = errors.New("boom")
