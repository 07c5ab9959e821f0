package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/domain"
	"github.com/asistify/asistencias-api/internal/infrastructure/remote"
)

func sampleBatch() dto.AttendanceCreateMultiple {
	return dto.AttendanceCreateMultiple{Attendances: []dto.CreateAttendanceRequest{
		{
			FullName:     "Laura Sánchez",
			Document:     "1098765432",
			DocumentType: "CC",
			Gender:       "female",
			BirthDate:    time.Date(1993, 4, 18, 0, 0, 0, 0, time.UTC),
			Address:      "Calle 45 #12-34",
			Reason:       "consulta general",
		},
	}}
}

func TestSubmitBatch_EnviaLoteYDevuelveRespuesta(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody dto.AttendanceCreateMultiple
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"inserted": 1}`))
	}))
	defer srv.Close()

	client := remote.NewAttendanceClient(srv.URL, time.Second)
	out, err := client.SubmitBatch(context.Background(), "caller-token", sampleBatch())
	require.NoError(t, err)

	assert.Equal(t, "Bearer caller-token", gotAuth)
	assert.Equal(t, "/attendances/multiple", gotPath)
	require.Len(t, gotBody.Attendances, 1)
	assert.Equal(t, "Laura Sánchez", gotBody.Attendances[0].FullName)
	assert.Equal(t, map[string]any{"inserted": float64(1)}, out)
}

func TestSubmitBatch_RechazoConservaStatusYDetalle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":"VALIDATION","message":"entrada inválida","detail":"document: es requerido"}`))
	}))
	defer srv.Close()

	client := remote.NewAttendanceClient(srv.URL, time.Second)
	_, err := client.SubmitBatch(context.Background(), "caller-token", sampleBatch())

	var uerr *domain.UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, http.StatusUnprocessableEntity, uerr.StatusCode)
	assert.Equal(t, "document: es requerido", uerr.Detail)
}

func TestSubmitBatch_ServidorCaido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := remote.NewAttendanceClient(srv.URL, time.Second)
	_, err := client.SubmitBatch(context.Background(), "caller-token", sampleBatch())

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestSubmitBatch_RespuestaIlegible(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`no-es-json`))
	}))
	defer srv.Close()

	client := remote.NewAttendanceClient(srv.URL, time.Second)
	_, err := client.SubmitBatch(context.Background(), "caller-token", sampleBatch())

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
