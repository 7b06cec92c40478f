package models

import "context"

// ConnectionState is the wallet connection owned by the token form.
type ConnectionState struct {
	Connected     bool   `json:"connected"`
	WalletAddress string `json:"walletAddress"`
}

// WalletProvider is the injected capability that returns the currently
// authorised account address.
type WalletProvider interface {
	RequestAccount(ctx context.Context) (string, error)
}
