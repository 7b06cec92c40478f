package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/core-coin/tokenforge/internal/models"
	"github.com/core-coin/tokenforge/internal/notificator"
	"github.com/core-coin/tokenforge/pkg/logger"
)

const testAddress = "cb0000000000000000000000000000000000000000a1"

type fakeProvider struct {
	address string
	err     error
	calls   int
}

func (f *fakeProvider) RequestAccount(context.Context) (string, error) {
	f.calls++
	return f.address, f.err
}

func lastNotification(t *testing.T, n *notificator.Notificator) models.Notification {
	t.Helper()
	recent := n.Recent()
	require.NotEmpty(t, recent)
	return recent[len(recent)-1]
}

func TestConnection_ConnectSuccess(t *testing.T) {
	notes := notificator.NewNotificator(logger.NewNop(), 10)
	conn := NewConnection(&fakeProvider{address: testAddress}, notes, logger.NewNop())

	address, err := conn.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAddress, address)
	assert.Equal(t, models.ConnectionState{Connected: true, WalletAddress: testAddress}, conn.State())

	note := lastNotification(t, notes)
	assert.Equal(t, models.NotificationSuccess, note.Kind)
	assert.Contains(t, note.Message, testAddress)
}

func TestConnection_ProviderUnavailable(t *testing.T) {
	notes := notificator.NewNotificator(logger.NewNop(), 10)
	conn := NewConnection(nil, notes, logger.NewNop())

	_, err := conn.Connect(context.Background())
	assert.True(t, errors.Is(err, models.ErrProviderUnavailable))
	assert.False(t, conn.State().Connected)
	assert.Equal(t, models.NotificationError, lastNotification(t, notes).Kind)
}

func TestConnection_RejectedKeepsPreviousState(t *testing.T) {
	notes := notificator.NewNotificator(logger.NewNop(), 10)
	provider := &fakeProvider{address: testAddress}
	conn := NewConnection(provider, notes, logger.NewNop())

	_, err := conn.Connect(context.Background())
	require.NoError(t, err)

	provider.err = errors.New("user rejected the request")
	_, err = conn.Connect(context.Background())
	assert.True(t, errors.Is(err, models.ErrConnectionRejected))
	assert.Equal(t, models.ConnectionState{Connected: true, WalletAddress: testAddress}, conn.State())
	assert.Equal(t, models.NotificationError, lastNotification(t, notes).Kind)
}

func TestConnection_MalformedAddressIsRejected(t *testing.T) {
	notes := notificator.NewNotificator(logger.NewNop(), 10)
	conn := NewConnection(&fakeProvider{address: "not-an-address"}, notes, logger.NewNop())

	_, err := conn.Connect(context.Background())
	assert.True(t, errors.Is(err, models.ErrConnectionRejected))
	assert.False(t, conn.State().Connected)
}

func TestConnection_Disconnect(t *testing.T) {
	notes := notificator.NewNotificator(logger.NewNop(), 10)
	provider := &fakeProvider{address: testAddress}
	conn := NewConnection(provider, notes, logger.NewNop())

	hookCalled := false
	conn.OnDisconnect(func() { hookCalled = true })

	_, err := conn.Connect(context.Background())
	require.NoError(t, err)
	conn.Disconnect()

	assert.Equal(t, models.ConnectionState{}, conn.State())
	assert.True(t, hookCalled)
	assert.Equal(t, 1, provider.calls, "disconnect must not contact the provider")
	assert.Equal(t, models.NotificationInfo, lastNotification(t, notes).Kind)
}
