package models

import "context"

// DefaultDecimals is the decimals value used when the form fixes it.
const DefaultDecimals = 18

// TokenDraft is the user-entered part of a token creation request.
// Decimals and InitialSupply are pointers so an omitted field can be told
// apart from an explicit zero.
type TokenDraft struct {
	Name          string   `json:"name" validate:"required"`
	Symbol        string   `json:"symbol" validate:"required"`
	Decimals      *int     `json:"decimals" validate:"required,min=0"`
	InitialSupply *float64 `json:"initialSupply" validate:"required,min=0"`
	// TotalSupply is accepted as an alias of InitialSupply.
	TotalSupply *float64 `json:"totalSupply,omitempty" validate:"-"`
	Description string   `json:"description,omitempty"`
}

// TokenImage is the image attached to a token request.
type TokenImage struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	// Data is encoded as base64 in JSON.
	Data []byte `json:"data"`
}

// TokenRequest is the JSON body sent to the token creation API.
type TokenRequest struct {
	Name          string      `json:"name"`
	Symbol        string      `json:"symbol"`
	Decimals      int         `json:"decimals"`
	InitialSupply float64     `json:"initialSupply"`
	Description   string      `json:"description,omitempty"`
	Image         *TokenImage `json:"image,omitempty"`
	OwnerAddress  string      `json:"ownerAddress"`
}

// TokenResponse is the success body returned by the token creation API.
type TokenResponse struct {
	// TokenAddress is the address of the deployed token, if the API returns one.
	TokenAddress string `json:"tokenAddress,omitempty"`
}

// ImagePreview describes a live preview reference for the selected image.
type ImagePreview struct {
	Ref         string `json:"ref"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

// FormVariant selects between the observed token form behaviours.
type FormVariant struct {
	FixedDecimals bool `json:"fixedDecimals"`
	ImageRequired bool `json:"imageRequired"`
}

// TokenFormState is a snapshot of the token form.
type TokenFormState struct {
	Connection   ConnectionState `json:"connection"`
	TokenAddress string          `json:"tokenAddress,omitempty"`
	Image        *ImagePreview   `json:"image,omitempty"`
	InFlight     bool            `json:"inFlight"`
	Variant      FormVariant     `json:"variant"`
}

// TokenCreator is the remote service that deploys tokens.
type TokenCreator interface {
	CreateToken(ctx context.Context, req TokenRequest) (TokenResponse, error)
}
