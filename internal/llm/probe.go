package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/codeboxhq/codebox/internal/model"
)

// probeTimeout bounds one health-probe round trip.
const probeTimeout = 10 * time.Second

// HealthStatus is the outcome of probing a backend.
type HealthStatus struct {
	Reason    string
	Reachable bool
}

// Probe performs a minimal authenticated GET against the backend's model
// listing endpoint. Any 2xx status counts as reachable; everything else
// collapses to an unreachable status with a short human reason. The reason
// never contains the credential.
func (c *Client) Probe(ctx context.Context, backend model.Backend) HealthStatus {
	if backend.APIKey == "" {
		return HealthStatus{Reason: "API key not configured"}
	}

	base := strings.TrimSpace(backend.BaseURL)
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		return HealthStatus{Reason: "base URL not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/models", nil)
	if err != nil {
		return HealthStatus{Reason: "base URL invalid"}
	}

	if backend.Provider == model.ProviderAnthropic {
		req.Header.Set("x-api-key", backend.APIKey)
		req.Header.Set("anthropic-version", anthropicVersion)
	} else {
		req.Header.Set("Authorization", "Bearer "+backend.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return HealthStatus{Reason: "request timed out"}
		}
		return HealthStatus{Reason: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return HealthStatus{Reachable: true}
	}
	return HealthStatus{Reason: fmt.Sprintf("HTTP %d", resp.StatusCode)}
}
