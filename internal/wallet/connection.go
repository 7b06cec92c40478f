package wallet

import (
	"context"
	"fmt"
	"sync"

	"github.com/core-coin/tokenforge/internal/metrics"
	"github.com/core-coin/tokenforge/internal/models"
	"github.com/core-coin/tokenforge/pkg/logger"
	"github.com/core-coin/tokenforge/pkg/validation"
)

// Connection is the wallet connection state of the token form.
// A nil provider means no wallet is available in this environment.
type Connection struct {
	logger        *logger.Logger
	provider      models.WalletProvider
	notifications models.NotificationService

	mu    sync.RWMutex
	state models.ConnectionState

	onDisconnect func()
}

func NewConnection(provider models.WalletProvider, notifications models.NotificationService, logger *logger.Logger) *Connection {
	return &Connection{
		logger:        logger,
		provider:      provider,
		notifications: notifications,
	}
}

// OnDisconnect registers a hook run after every Disconnect.
func (c *Connection) OnDisconnect(fn func()) {
	c.mu.Lock()
	c.onDisconnect = fn
	c.mu.Unlock()
}

// Connect requests the authorised account from the provider and stores it.
// On failure the previous state is kept.
func (c *Connection) Connect(ctx context.Context) (string, error) {
	if c.provider == nil {
		metrics.RecordWalletConnection("unavailable")
		c.notifications.Push(models.NotificationError, "Wallet provider not found.")
		return "", models.ErrProviderUnavailable
	}

	address, err := c.provider.RequestAccount(ctx)
	if err == nil {
		err = validation.ValidateAddress(address)
	}
	if err != nil {
		metrics.RecordWalletConnection("rejected")
		c.logger.Error("Failed to connect wallet", "error", err)
		c.notifications.Push(models.NotificationError, "Failed to connect to the wallet.")
		return "", fmt.Errorf("%w: %v", models.ErrConnectionRejected, err)
	}

	c.mu.Lock()
	c.state = models.ConnectionState{Connected: true, WalletAddress: address}
	c.mu.Unlock()

	metrics.RecordWalletConnection("connected")
	c.logger.Info("Wallet connected", "address", address, "network", validation.NetworkName(address))
	c.notifications.Push(models.NotificationSuccess, "Connected: "+address)
	return address, nil
}

// Disconnect forgets the connected address. The provider is not contacted.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	c.state = models.ConnectionState{}
	hook := c.onDisconnect
	c.mu.Unlock()

	if hook != nil {
		hook()
	}
	c.notifications.Push(models.NotificationInfo, "Wallet disconnected.")
}

// State returns a snapshot of the connection.
func (c *Connection) State() models.ConnectionState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}
