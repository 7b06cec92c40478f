package tokenapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/core-coin/tokenforge/internal/models"
	"github.com/core-coin/tokenforge/pkg/logger"
)

func sampleRequest() models.TokenRequest {
	return models.TokenRequest{
		Name:          "Forge",
		Symbol:        "FRG",
		Decimals:      18,
		InitialSupply: 1000,
		OwnerAddress:  "cb0000000000000000000000000000000000000000a1",
	}
}

func TestClient_CreateToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tokens", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "FRG", got["symbol"])
		assert.Equal(t, "cb0000000000000000000000000000000000000000a1", got["ownerAddress"])
		assert.NotContains(t, got, "image")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tokenAddress":"0xABC"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", time.Second, logger.NewNop())
	resp, err := client.CreateToken(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "0xABC", resp.TokenAddress)
}

func TestClient_SuccessWithoutTokenAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"queued"}`))
	}))
	defer server.Close()

	resp, err := NewClient(server.URL, time.Second, logger.NewNop()).CreateToken(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.TokenAddress)
}

func TestClient_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient funds", http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second, logger.NewNop()).CreateToken(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrRequestFailed))

	var reqErr *models.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusBadRequest, reqErr.StatusCode)
}

func TestClient_MalformedResponse(t *testing.T) {
	tests := map[string]string{
		"not json":          `<html>ok</html>`,
		"empty body":        ``,
		"wrong type":        `{"tokenAddress":42}`,
		"array instead obj": `["0xABC"]`,
		"empty array":       `[]`,
		"null":              `null`,
		"bare string":       `"0xABC"`,
		"trailing data":     `{"tokenAddress":"0xABC"} trailing-garbage`,
		"two objects":       `{"tokenAddress":"0xABC"}{"tokenAddress":"0xDEF"}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			_, err := NewClient(server.URL, time.Second, logger.NewNop()).CreateToken(context.Background(), sampleRequest())
			assert.True(t, errors.Is(err, models.ErrMalformedResponse))
			assert.True(t, errors.Is(err, models.ErrRequestFailed))
		})
	}
}

func TestClient_TrailingWhitespaceIsAccepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("  {\"tokenAddress\":\"0xABC\"}\n\n"))
	}))
	defer server.Close()

	resp, err := NewClient(server.URL, time.Second, logger.NewNop()).CreateToken(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "0xABC", resp.TokenAddress)
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url, time.Second, logger.NewNop()).CreateToken(context.Background(), sampleRequest())
	assert.True(t, errors.Is(err, models.ErrRequestFailed))
}

func TestClient_NotConfigured(t *testing.T) {
	_, err := NewClient("", time.Second, logger.NewNop()).CreateToken(context.Background(), sampleRequest())
	assert.True(t, errors.Is(err, models.ErrRequestFailed))
}
