// Package llm implements the remote recognition tier: provider-specific
// request building, the HTTP round trip, and coercion of the model's
// free-form reply into a structured result.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/codeboxhq/codebox/internal/model"
)

// requestTimeout bounds one recognition round trip.
const requestTimeout = 15 * time.Second

// Client performs recognition calls against configured backends. One round
// trip per call, no retries; safe for concurrent use.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a recognition client with a shared transport.
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		logger: logger,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Recognize sends one recognition request to the backend and coerces the
// response. The backend is used for this call only; its credential is not
// retained.
func (c *Client) Recognize(ctx context.Context, input model.Input, backend model.Backend) (model.RecognitionResult, error) {
	req, err := buildRequest(input, backend)
	if err != nil {
		return model.RecognitionResult{}, err
	}

	jsonBody, err := json.Marshal(req.Body)
	if err != nil {
		return model.RecognitionResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.URL, strings.NewReader(string(jsonBody)))
	if err != nil {
		return model.RecognitionResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	c.logger.Debug("sending recognition request",
		"backend", backend.Name,
		"provider", backend.Provider,
		"image", input.IsImage())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return model.RecognitionResult{}, ErrTimeout
		}
		return model.RecognitionResult{}, &RemoteCallError{Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.RecognitionResult{}, &RemoteCallError{Message: "failed to read response body"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.RecognitionResult{}, &RemoteCallError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	return coerce(body, backend.Provider, input.Text)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
