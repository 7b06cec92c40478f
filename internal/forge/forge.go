package forge

import (
	"context"

	"github.com/core-coin/tokenforge/internal/items"
	"github.com/core-coin/tokenforge/internal/metrics"
	"github.com/core-coin/tokenforge/internal/models"
	"github.com/core-coin/tokenforge/internal/notificator"
	"github.com/core-coin/tokenforge/internal/tokenform"
	"github.com/core-coin/tokenforge/internal/wallet"
	"github.com/core-coin/tokenforge/pkg/logger"
)

// Forge is the main struct of the application.
// It owns the item collection and the token form and serves all business
// logic; the HTTP layer only translates requests.
type Forge struct {
	logger *logger.Logger

	store         *items.Store
	editor        *items.Editor
	connection    *wallet.Connection
	form          *tokenform.Form
	notifications *notificator.Notificator
}

// NewForge creates a new Forge instance. provider may be nil when no wallet
// is available.
func NewForge(
	provider models.WalletProvider,
	api models.TokenCreator,
	notifications *notificator.Notificator,
	variant models.FormVariant,
	maxImageBytes int64,
	logger *logger.Logger,
) models.ForgeI {
	store := items.NewStore()
	connection := wallet.NewConnection(provider, notifications, logger)
	return &Forge{
		logger:        logger,
		store:         store,
		editor:        items.NewEditor(store),
		connection:    connection,
		form:          tokenform.NewForm(variant, maxImageBytes, connection, api, notifications, logger),
		notifications: notifications,
	}
}

func (f *Forge) ListItems() []models.Item {
	return f.store.List()
}

func (f *Forge) AddItem(name, description string) models.Item {
	item := f.store.Add(name, description)
	f.logger.Debug("Item added", "id", item.ID)
	metrics.SetItems(f.store.Len())
	return item
}

// UpdateItem ignores unknown ids.
func (f *Forge) UpdateItem(id int64, patch models.ItemPatch) {
	f.store.Update(id, patch)
}

// RemoveItem ignores unknown ids and leaves edit mode if the removed item
// was being edited.
func (f *Forge) RemoveItem(id int64) {
	f.editor.Delete(id)
	metrics.SetItems(f.store.Len())
}

func (f *Forge) ItemsView() models.ItemsView {
	return f.editor.View()
}

func (f *Forge) EditItem(id int64) (models.Item, error) {
	return f.editor.Edit(id)
}

func (f *Forge) CancelEdit() {
	f.editor.CancelEdit()
}

func (f *Forge) SubmitItem(name, description string) (models.Item, bool) {
	item, ok := f.editor.Submit(name, description)
	metrics.SetItems(f.store.Len())
	return item, ok
}

func (f *Forge) ConnectWallet(ctx context.Context) (string, error) {
	return f.connection.Connect(ctx)
}

func (f *Forge) DisconnectWallet() {
	f.connection.Disconnect()
}

func (f *Forge) TokenForm() models.TokenFormState {
	return f.form.State()
}

// ValidateToken returns the field errors and whether submit is enabled.
func (f *Forge) ValidateToken(draft models.TokenDraft) (map[string]string, bool) {
	return f.form.Validate(draft), f.form.SubmitEnabled(draft)
}

func (f *Forge) SubmitToken(ctx context.Context, draft models.TokenDraft) (models.TokenResponse, error) {
	return f.form.Submit(ctx, draft)
}

func (f *Forge) SelectImage(filename string, data []byte) (models.ImagePreview, error) {
	return f.form.SelectImage(filename, data)
}

func (f *Forge) ClearImage() {
	f.form.ClearImage()
}

func (f *Forge) ImagePreview(ref string) (models.ImagePreview, []byte, error) {
	return f.form.Preview(ref)
}

func (f *Forge) Notifications() []models.Notification {
	return f.notifications.Recent()
}

func (f *Forge) SubscribeNotifications() (<-chan models.Notification, func()) {
	return f.notifications.Subscribe()
}

func (f *Forge) Close() {
	f.form.Close()
}
