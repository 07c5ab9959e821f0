package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistify/asistencias-api/pkg/token"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "asistencias-test"
)

func testPayload(companyID *uuid.UUID) token.Payload {
	return token.Payload{
		UserID:    uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Username:  "jperez",
		FirstName: "Juan",
		LastName:  "Pérez",
		Role:      "company_manager",
		CompanyID: companyID,
	}
}

// Ley de ida y vuelta: Parse(Issue(p)) == p antes del vencimiento.
func TestToken_RoundTrip(t *testing.T) {
	companyID := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	in := testPayload(&companyID)

	tok, err := token.Issue(testSecret, testIssuer, in, 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	out, err := token.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, in.UserID, out.UserID)
	assert.Equal(t, in.Username, out.Username)
	assert.Equal(t, in.FirstName, out.FirstName)
	assert.Equal(t, in.LastName, out.LastName)
	assert.Equal(t, in.Role, out.Role)
	require.NotNil(t, out.CompanyID)
	assert.Equal(t, companyID, *out.CompanyID, "company_id debe ir y volver como el mismo UUID")
}

// Un admin global no tiene empresa: company_id ausente debe volver como nil.
func TestToken_RoundTrip_SinCompanyID(t *testing.T) {
	in := testPayload(nil)
	in.Role = "admin"

	tok, err := token.Issue(testSecret, testIssuer, in, 30*time.Minute)
	require.NoError(t, err)

	out, err := token.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Nil(t, out.CompanyID)
	assert.Equal(t, "admin", out.Role)
}

func TestToken_Expirado_RetornaError(t *testing.T) {
	tok, err := token.Issue(testSecret, testIssuer, testPayload(nil), -1*time.Minute)
	require.NoError(t, err)

	_, err = token.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestToken_TTLCero_RetornaError(t *testing.T) {
	tok, err := token.Issue(testSecret, testIssuer, testPayload(nil), 0)
	require.NoError(t, err)

	_, err = token.Parse(testSecret, tok)
	assert.Error(t, err, "ttl cero produce un token ya vencido")
}

func TestToken_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := token.Issue(testSecret, testIssuer, testPayload(nil), 30*time.Minute)
	require.NoError(t, err)

	_, err = token.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestToken_Malformado_RetornaError(t *testing.T) {
	_, err := token.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestToken_SinRol_RetornaError(t *testing.T) {
	p := testPayload(nil)
	p.Role = ""
	tok, err := token.Issue(testSecret, testIssuer, p, 30*time.Minute)
	require.NoError(t, err)

	_, err = token.Parse(testSecret, tok)
	assert.Error(t, err, "token sin rol no produce un principal")
}
