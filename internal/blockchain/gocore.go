package blockchain

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/core-coin/go-core/v2/rpc"

	"github.com/core-coin/tokenforge/pkg/logger"
)

const accountsMethod = "xcb_accounts"

// ErrNoAccounts is returned when the node reports no authorised account.
var ErrNoAccounts = errors.New("no authorised accounts")

// Gocore is a wallet provider backed by a Core node's JSON-RPC endpoint.
// The connection is dialled on first use and reused afterwards.
type Gocore struct {
	logger *logger.Logger
	apiURL string

	mu     sync.Mutex
	client *rpc.Client
}

// NewGocore creates a new Gocore instance.
func NewGocore(apiURL string, logger *logger.Logger) *Gocore {
	return &Gocore{apiURL: apiURL, logger: logger}
}

// RequestAccount returns the first account the node has authorised.
func (g *Gocore) RequestAccount(ctx context.Context) (string, error) {
	client, err := g.connect(ctx)
	if err != nil {
		return "", err
	}

	var accounts []string
	if err := client.CallContext(ctx, &accounts, accountsMethod); err != nil {
		return "", fmt.Errorf("failed to request accounts: %w", err)
	}
	if len(accounts) == 0 {
		return "", ErrNoAccounts
	}

	g.logger.Debug("Wallet provider returned accounts", "count", len(accounts))
	return accounts[0], nil
}

func (g *Gocore) connect(ctx context.Context) (*rpc.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}
	client, err := rpc.DialContext(ctx, g.apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the core RPC server: %w", err)
	}
	g.client = client
	return client, nil
}

func (g *Gocore) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		g.client.Close()
		g.client = nil
	}
	return nil
}
