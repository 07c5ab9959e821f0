package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/application/usecase"
	"github.com/asistify/asistencias-api/internal/domain"
	"github.com/asistify/asistencias-api/internal/domain/entity"
)

func validCreateAttendance(companyID *uuid.UUID) dto.CreateAttendanceRequest {
	return dto.CreateAttendanceRequest{
		FullName:     "María Rodríguez",
		Document:     "1122334455",
		DocumentType: entity.DocumentCC,
		Gender:       entity.GenderFemale,
		BirthDate:    time.Date(1995, 11, 23, 0, 0, 0, 0, time.UTC),
		Address:      "Avenida 68 #23-45",
		Reason:       "control prenatal",
		AdditionalData: map[string]any{
			"eps": "Sura",
		},
		CompanyID: companyID,
	}
}

// Un admin indica la empresa destino y se verifica por id.
func TestAttendanceCreate_AdminVerificaPorID(t *testing.T) {
	repo := newFakeAttendanceRepo()
	verifier := &fakeVerifier{}
	uc := usecase.NewAttendanceUseCase(repo, verifier)

	cid := companyA
	out, err := uc.Create(context.Background(), adminPrincipal(), validCreateAttendance(&cid))
	require.NoError(t, err)

	assert.Equal(t, companyA, out.CompanyID)
	assert.Equal(t, []uuid.UUID{companyA}, verifier.byIDCalls)
	assert.Empty(t, verifier.ownCalls)
}

// Un officer no puede leer empresas por id río arriba: su verificación va por
// /companies/me.
func TestAttendanceCreate_OfficerVerificaPorMe(t *testing.T) {
	repo := newFakeAttendanceRepo()
	verifier := &fakeVerifier{}
	uc := usecase.NewAttendanceUseCase(repo, verifier)

	p := officerPrincipal(companyA)
	out, err := uc.Create(context.Background(), p, validCreateAttendance(nil))
	require.NoError(t, err)

	assert.Equal(t, companyA, out.CompanyID)
	assert.Equal(t, p.ID, out.UserID, "la asistencia queda atribuida a quien la registró")
	assert.Equal(t, []uuid.UUID{companyA}, verifier.ownCalls)
	assert.Empty(t, verifier.byIDCalls)
}

func TestAttendanceCreate_AdminSinEmpresaEsValidacion(t *testing.T) {
	uc := usecase.NewAttendanceUseCase(newFakeAttendanceRepo(), &fakeVerifier{})

	_, err := uc.Create(context.Background(), adminPrincipal(), validCreateAttendance(nil))
	assert.ErrorIs(t, err, domain.ErrValidation,
		"un admin debe indicar la empresa destino")
}

func TestAttendanceCreate_RechazoRemotoNoPersiste(t *testing.T) {
	repo := newFakeAttendanceRepo()
	verifier := &fakeVerifier{err: &domain.UpstreamError{StatusCode: http.StatusNotFound, Detail: "empresa no encontrada"}}
	uc := usecase.NewAttendanceUseCase(repo, verifier)

	_, err := uc.Create(context.Background(), officerPrincipal(companyA), validCreateAttendance(nil))

	var uerr *domain.UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Empty(t, repo.attendances, "un rechazo remoto no debe dejar escritura local")
}

func TestAttendanceCreateMultiple_VerificaUnaVezInsertaTodo(t *testing.T) {
	repo := newFakeAttendanceRepo()
	verifier := &fakeVerifier{}
	uc := usecase.NewAttendanceUseCase(repo, verifier)

	in := dto.AttendanceCreateMultiple{Attendances: []dto.CreateAttendanceRequest{
		validCreateAttendance(nil),
		validCreateAttendance(nil),
		validCreateAttendance(nil),
	}}
	inserted, err := uc.CreateMultiple(context.Background(), officerPrincipal(companyA), in)
	require.NoError(t, err)

	assert.Equal(t, 3, inserted)
	assert.Len(t, repo.attendances, 3)
	assert.Len(t, verifier.ownCalls, 1, "la empresa se verifica una sola vez por lote")
}

func TestAttendanceCreateMultiple_LoteVacioEsValidacion(t *testing.T) {
	uc := usecase.NewAttendanceUseCase(newFakeAttendanceRepo(), &fakeVerifier{})

	_, err := uc.CreateMultiple(context.Background(), officerPrincipal(companyA), dto.AttendanceCreateMultiple{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAttendanceCreateMultiple_FallaDeLoteNoInsertaNada(t *testing.T) {
	repo := newFakeAttendanceRepo()
	repo.batchErr = errBoom
	uc := usecase.NewAttendanceUseCase(repo, &fakeVerifier{})

	in := dto.AttendanceCreateMultiple{Attendances: []dto.CreateAttendanceRequest{validCreateAttendance(nil)}}
	_, err := uc.CreateMultiple(context.Background(), officerPrincipal(companyA), in)

	assert.Error(t, err)
	assert.Empty(t, repo.attendances)
}

func TestAttendanceGetByID_OtraEmpresaEsNotFound(t *testing.T) {
	ajena := sampleAttendance(companyB)
	uc := usecase.NewAttendanceUseCase(newFakeAttendanceRepo(ajena), &fakeVerifier{})

	_, err := uc.GetByID(context.Background(), officerPrincipal(companyA), ajena.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.GetByID(context.Background(), adminPrincipal(), ajena.ID)
	require.NoError(t, err)
	assert.Equal(t, ajena.ID, out.UID)
}

func TestAttendanceList_FiltraPorEmpresaDelLlamador(t *testing.T) {
	propia := sampleAttendance(companyA)
	ajena := sampleAttendance(companyB)
	uc := usecase.NewAttendanceUseCase(newFakeAttendanceRepo(propia, ajena), &fakeVerifier{})

	out, err := uc.List(context.Background(), officerPrincipal(companyA), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, propia.ID, out[0].UID)
}

func TestAttendanceDelete_Idempotente(t *testing.T) {
	a := sampleAttendance(companyA)
	uc := usecase.NewAttendanceUseCase(newFakeAttendanceRepo(a), &fakeVerifier{})

	out, err := uc.Delete(context.Background(), officerPrincipal(companyA), a.ID)
	require.NoError(t, err)
	assert.True(t, out.Deleted)

	_, err = uc.Delete(context.Background(), officerPrincipal(companyA), a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttendanceUpdate_ActualizaCampos(t *testing.T) {
	a := sampleAttendance(companyA)
	uc := usecase.NewAttendanceUseCase(newFakeAttendanceRepo(a), &fakeVerifier{})

	in := validCreateAttendance(nil)
	in.Reason = "vacunación"
	out, err := uc.Update(context.Background(), officerPrincipal(companyA), a.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "vacunación", out.Reason)
	assert.Equal(t, a.CompanyID, out.CompanyID, "la empresa de una asistencia no cambia en update")
}
