package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/application/ports"
	"github.com/asistify/asistencias-api/internal/domain"
)

var _ ports.AttendanceSubmitter = (*AttendanceClient)(nil)

// AttendanceClient envía lotes de asistencias al servicio de asistencias,
// reenviando el bearer del llamador. El importador no persiste nada: el insert
// (todo-o-nada) ocurre en el servicio remoto.
type AttendanceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAttendanceClient construye el cliente con timeout de red acotado.
func NewAttendanceClient(baseURL string, timeout time.Duration) *AttendanceClient {
	return &AttendanceClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SubmitBatch hace POST /attendances/multiple con el lote completo y devuelve
// la respuesta del servicio remoto tal cual.
func (c *AttendanceClient) SubmitBatch(ctx context.Context, bearer string, batch dto.AttendanceCreateMultiple) (map[string]any, error) {
	payload, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("serializar lote: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/attendances/multiple", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstreamReject(resp)
	}

	var insertion map[string]any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&insertion); err != nil {
		return nil, fmt.Errorf("%w: respuesta ilegible del servicio de asistencias: %v", domain.ErrUpstreamUnavailable, err)
	}
	return insertion, nil
}
