package tokenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/core-coin/tokenforge/internal/models"
	"github.com/core-coin/tokenforge/pkg/logger"
)

const (
	tokensPath = "/tokens"
	// maxErrorBody caps how much of an error response is read for logging.
	maxErrorBody = 4 << 10
)

var errNotConfigured = errors.New("token API URL is not configured")

// Client posts token creation requests to the remote token API.
type Client struct {
	logger  *logger.Logger
	baseURL string
	client  *http.Client
}

// NewClient creates a client for baseURL. An empty baseURL is allowed;
// every call then fails with ErrRequestFailed.
func NewClient(baseURL string, timeout time.Duration, logger *logger.Logger) *Client {
	return &Client{
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreateToken sends one POST <baseURL>/tokens. It never retries.
func (c *Client) CreateToken(ctx context.Context, req models.TokenRequest) (models.TokenResponse, error) {
	if c.baseURL == "" {
		return models.TokenResponse{}, fmt.Errorf("%w: %v", models.ErrRequestFailed, errNotConfigured)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("failed to encode token request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokensPath, bytes.NewReader(body))
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %v", models.ErrRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug("Posting token request", "url", httpReq.URL.String(), "symbol", req.Symbol)
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %v", models.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("Token API returned an error", "status", resp.StatusCode, "body", string(errBody))
		return models.TokenResponse{}, &models.RequestError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	out, err := decodeResponse(resp.Body)
	if err != nil {
		c.logger.Error("Token API returned a malformed response", "error", err)
		return models.TokenResponse{}, fmt.Errorf("%w: %v", models.ErrMalformedResponse, err)
	}

	c.logger.Debug("Token API response", "tokenAddress", out.TokenAddress)
	return out, nil
}

// decodeResponse accepts exactly one JSON object and nothing after it.
func decodeResponse(r io.Reader) (models.TokenResponse, error) {
	dec := json.NewDecoder(r)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return models.TokenResponse{}, err
	}
	if trimmed := bytes.TrimLeft(raw, " \t\r\n"); len(trimmed) == 0 || trimmed[0] != '{' {
		return models.TokenResponse{}, errors.New("response body is not a JSON object")
	}
	if dec.More() {
		return models.TokenResponse{}, errors.New("unexpected data after JSON object")
	}

	var out models.TokenResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return models.TokenResponse{}, err
	}
	return out, nil
}
