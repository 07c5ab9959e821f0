package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/asistify/asistencias-api/internal/application/auth"
	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/domain"
	"github.com/asistify/asistencias-api/internal/domain/entity"
	"github.com/asistify/asistencias-api/internal/domain/repository"
	"github.com/asistify/asistencias-api/pkg/token"
)

const testSecret = "test-secret-key-for-unit-tests"

type stubUserRepo struct {
	user *entity.User
}

func (r *stubUserRepo) Create(context.Context, *entity.User) error { return nil }
func (r *stubUserRepo) Update(context.Context, *entity.User) error { return nil }
func (r *stubUserRepo) Delete(context.Context, uuid.UUID) error    { return nil }

func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.user != nil && r.user.Username == username {
		return r.user, nil
	}
	return nil, nil
}

func (r *stubUserRepo) List(context.Context, repository.UserFilter) ([]*entity.User, error) {
	return nil, nil
}

func newAuthUC(user *entity.User) *auth.AuthUseCase {
	return auth.NewAuthUseCase(&stubUserRepo{user: user}, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 30,
		Issuer:     "asistencias-test",
	})
}

func managerUser(password string) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	cid := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	return &entity.User{
		ID:           uuid.New(),
		Username:     "jlopez",
		PasswordHash: string(hash),
		Email:        "jlopez@example.com",
		FirstName:    "Julia",
		LastName:     "López",
		BirthDate:    time.Date(1988, 2, 14, 0, 0, 0, 0, time.UTC),
		Role:         entity.RoleCompanyManager,
		CompanyID:    &cid,
	}
}

func TestLogin_EmiteTokenConIdentidadCompleta(t *testing.T) {
	user := managerUser("secreto-123")
	uc := newAuthUC(user)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jlopez", Password: "secreto-123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)

	// El receptor puede reconstruir la identidad sin consultar de vuelta.
	payload, err := token.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, payload.UserID)
	assert.Equal(t, "jlopez", payload.Username)
	assert.Equal(t, "company_manager", payload.Role)
	require.NotNil(t, payload.CompanyID)
	assert.Equal(t, *user.CompanyID, *payload.CompanyID)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newAuthUC(managerUser("secreto-123"))

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jlopez", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Usuario inexistente y password incorrecto responden igual.
func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "secreto-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestValidateToken(t *testing.T) {
	user := managerUser("secreto-123")
	uc := newAuthUC(user)

	login, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jlopez", Password: "secreto-123"})
	require.NoError(t, err)

	out, err := uc.ValidateToken(login.AccessToken)
	require.NoError(t, err)
	assert.True(t, out.Valid)
	assert.Equal(t, user.ID, out.UserID)
	assert.Equal(t, "company_manager", out.Role)

	_, err = uc.ValidateToken("token.invalido.aqui")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestCurrentUser(t *testing.T) {
	user := managerUser("secreto-123")
	uc := newAuthUC(user)

	login, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jlopez", Password: "secreto-123"})
	require.NoError(t, err)

	out, err := uc.CurrentUser(context.Background(), login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.UID)
	assert.Equal(t, "jlopez", out.Username)
}

// El usuario pudo borrarse después de emitir el token.
func TestCurrentUser_UsuarioBorrado(t *testing.T) {
	user := managerUser("secreto-123")
	login, err := newAuthUC(user).Login(context.Background(), dto.LoginRequest{Username: "jlopez", Password: "secreto-123"})
	require.NoError(t, err)

	uc := newAuthUC(nil)
	_, err = uc.CurrentUser(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
