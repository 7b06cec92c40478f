package forge

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

const walletAddress = "cb0000000000000000000000000000000000000000a1"

type provider struct{}

func (provider) RequestAccount(context.Context) (string, error) { return walletAddress, nil }

type creator struct {
	calls int
	resp  models.TokenResponse
	err   error
}

func (c *creator) CreateToken(context.Context, models.TokenRequest) (models.TokenResponse, error) {
	c.calls++
	return c.resp, c.err
}

func newForge(p models.WalletProvider, api models.TokenCreator) models.ForgeI {
	log := logger.NewNop()
	return NewForge(p, api, notificator.NewNotificator(log, 20), models.FormVariant{FixedDecimals: true}, 1<<20, log)
}

func TestForge_ItemFlow(t *testing.T) {
	f := newForge(nil, &creator{})

	f.AddItem("A", "B")
	item, ok := f.SubmitItem("C", "D")
	require.True(t, ok)
	assert.Equal(t, int64(2), item.ID)

	_, err := f.EditItem(2)
	require.NoError(t, err)
	f.RemoveItem(2)
	assert.Nil(t, f.ItemsView().Editing)

	name := "A2"
	f.UpdateItem(1, models.ItemPatch{Name: &name})
	assert.Equal(t, []models.Item{{ID: 1, Name: "A2", Description: "B"}}, f.ListItems())
}

func TestForge_TokenFlow(t *testing.T) {
	api := &creator{resp: models.TokenResponse{TokenAddress: "0xABC"}}
	f := newForge(provider{}, api)

	supply := 10.0
	draft := models.TokenDraft{Name: "Forge", Symbol: "FRG", InitialSupply: &supply}

	fields, enabled := f.ValidateToken(draft)
	assert.Empty(t, fields, "decimals are fixed, so omitting them is fine")
	assert.False(t, enabled)

	_, err := f.SubmitToken(context.Background(), draft)
	assert.True(t, errors.Is(err, models.ErrWalletNotConnected))
	assert.Equal(t, 0, api.calls)

	_, err = f.ConnectWallet(context.Background())
	require.NoError(t, err)

	_, enabled = f.ValidateToken(draft)
	assert.True(t, enabled)

	resp, err := f.SubmitToken(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "0xABC", resp.TokenAddress)
	assert.Equal(t, "0xABC", f.TokenForm().TokenAddress)

	kinds := make([]models.NotificationKind, 0)
	for _, n := range f.Notifications() {
		kinds = append(kinds, n.Kind)
	}
	assert.Equal(t, []models.NotificationKind{models.NotificationSuccess, models.NotificationSuccess}, kinds)

	f.DisconnectWallet()
	assert.Empty(t, f.TokenForm().TokenAddress)
}
