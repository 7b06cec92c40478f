package models

import "context"

// ForgeI is the application served by the HTTP API.
type ForgeI interface {
	// Items
	ListItems() []Item
	AddItem(name, description string) Item
	UpdateItem(id int64, patch ItemPatch)
	RemoveItem(id int64)

	// Item form
	ItemsView() ItemsView
	EditItem(id int64) (Item, error)
	CancelEdit()
	SubmitItem(name, description string) (Item, bool)

	// Wallet
	ConnectWallet(ctx context.Context) (string, error)
	DisconnectWallet()

	// Token form
	TokenForm() TokenFormState
	ValidateToken(draft TokenDraft) (map[string]string, bool)
	SubmitToken(ctx context.Context, draft TokenDraft) (TokenResponse, error)
	SelectImage(filename string, data []byte) (ImagePreview, error)
	ClearImage()
	ImagePreview(ref string) (ImagePreview, []byte, error)

	// Notifications
	Notifications() []Notification
	SubscribeNotifications() (<-chan Notification, func())

	// Close releases resources held by the token form.
	Close()
}
