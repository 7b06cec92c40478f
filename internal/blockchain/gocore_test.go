package blockchain

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/core-coin/tokenforge/pkg/logger"
)

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

func newRPCServer(t *testing.T, result interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, accountsMethod, req.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  result,
		})
	}))
}

func TestGocore_RequestAccount(t *testing.T) {
	server := newRPCServer(t, []string{"cb0000000000000000000000000000000000000000a1", "cb0000000000000000000000000000000000000000b2"})
	defer server.Close()

	g := NewGocore(server.URL, logger.NewNop())
	defer g.Close()

	address, err := g.RequestAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cb0000000000000000000000000000000000000000a1", address)
}

func TestGocore_NoAccounts(t *testing.T) {
	server := newRPCServer(t, []string{})
	defer server.Close()

	g := NewGocore(server.URL, logger.NewNop())
	defer g.Close()

	_, err := g.RequestAccount(context.Background())
	assert.True(t, errors.Is(err, ErrNoAccounts))
}

func TestGocore_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	g := NewGocore(server.URL, logger.NewNop())
	defer g.Close()

	_, err := g.RequestAccount(context.Background())
	assert.Error(t, err)
}
