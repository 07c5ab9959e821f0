package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/application/ports"
	"github.com/asistify/asistencias-api/internal/domain"
)

var _ ports.CompanyVerifier = (*CompanyClient)(nil)

// maxErrorBody tope de lectura de cuerpos de respuesta remotos.
const maxErrorBody = 64 * 1024

// CompanyClient verificador de referencias contra el servicio de empresas.
// Reenvía el bearer del llamador; el servicio remoto aplica su propio scoping.
// Un solo intento por verificación, sin reintentos.
type CompanyClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCompanyClient construye el cliente con timeout de red acotado.
func NewCompanyClient(baseURL string, timeout time.Duration) *CompanyClient {
	return &CompanyClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// VerifyByID consulta GET /companies/{id}. 200 confirma la referencia; cualquier
// otro estado se propaga como rechazo remoto con su detalle original.
func (c *CompanyClient) VerifyByID(ctx context.Context, bearer string, id uuid.UUID) error {
	resp, err := c.get(ctx, bearer, "/companies/"+id.String())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return upstreamReject(resp)
	}
	return nil
}

// VerifyOwn consulta GET /companies/me y confirma que la empresa propia del
// llamador coincide con el id esperado. Es la vía para roles que no pueden
// leer empresas por id en el servicio remoto.
func (c *CompanyClient) VerifyOwn(ctx context.Context, bearer string, id uuid.UUID) error {
	resp, err := c.get(ctx, bearer, "/companies/me")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return upstreamReject(resp)
	}

	var body struct {
		UID uuid.UUID `json:"uid"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); err != nil {
		return fmt.Errorf("%w: respuesta ilegible de /companies/me: %v", domain.ErrUpstreamUnavailable, err)
	}
	if body.UID != id {
		return &domain.UpstreamError{
			StatusCode: http.StatusNotFound,
			Detail:     "la empresa indicada no corresponde al llamador",
		}
	}
	return nil
}

func (c *CompanyClient) get(ctx context.Context, bearer, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Red caída o timeout: la verificación no se pudo completar.
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	return resp, nil
}

// upstreamReject traduce una respuesta de error remota a UpstreamError,
// conservando el detalle original para el cliente final.
func upstreamReject(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := http.StatusText(resp.StatusCode)
	var body dto.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Detail != "" {
			detail = body.Detail
		} else if body.Message != "" {
			detail = body.Message
		}
	}
	return &domain.UpstreamError{StatusCode: resp.StatusCode, Detail: detail}
}
