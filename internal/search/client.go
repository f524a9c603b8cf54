package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the local address the backend listens on.
const DefaultBaseURL = "http://127.0.0.1:8000"

// maxDetailBytes bounds how much of an error body ends up in a BackendError.
const maxDetailBytes = 512

// HTTPClient implements Searcher over JSON POST requests.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPClient creates a client for the backend at baseURL.
// A zero timeout leaves requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// wireResponse mirrors the backend payload before result decoding.
type wireResponse struct {
	Results  []any    `json:"results"`
	Keywords []string `json:"keywords"`
}

// Search posts req to the endpoint selected by mode.
func (c *HTTPClient) Search(ctx context.Context, mode Mode, req Request) (*Response, error) {
	endpoint, err := mode.Endpoint()
	if err != nil {
		return nil, err
	}

	if req.Filters == nil {
		req.Filters = []string{}
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Cause: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("search response",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxDetailBytes))
		return nil, &BackendError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Detail:     errorDetail(body),
		}
	}

	var wire wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, &MalformedResponseError{Endpoint: endpoint, Cause: err}
	}

	results, err := decodeResults(wire.Results)
	if err != nil {
		return nil, &MalformedResponseError{Endpoint: endpoint, Cause: err}
	}

	keywords := wire.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return &Response{Results: results, Keywords: keywords}, nil
}

// errorDetail extracts a readable message from an error body.
// Backends commonly answer {"detail": "..."}; anything else is returned trimmed.
func errorDetail(body []byte) string {
	var structured struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &structured); err == nil {
		if s, ok := structured.Detail.(string); ok && s != "" {
			return s
		}
	}
	return strings.TrimSpace(string(body))
}
