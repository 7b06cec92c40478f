package tokenform

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"github.com/core-coin/tokenforge/internal/metrics"
	"github.com/core-coin/tokenforge/internal/models"
	"github.com/core-coin/tokenforge/pkg/logger"
)

const (
	msgCreating = "Creating token..."
	msgCreated  = "Token created successfully."
	msgFailed   = "Failed to create the token."
)

// ConnectionSource exposes the wallet connection the form submits with.
type ConnectionSource interface {
	State() models.ConnectionState
	OnDisconnect(fn func())
}

type selectedImage struct {
	preview models.ImagePreview
	data    []byte
}

// Form validates token drafts and submits them to the token API.
// At most one submission is in flight at a time.
type Form struct {
	logger        *logger.Logger
	variant       models.FormVariant
	maxImageBytes int64

	connection    ConnectionSource
	api           models.TokenCreator
	notifications models.NotificationService
	previews      *Previews
	validate      *validator.Validate

	mu           sync.Mutex
	tokenAddress string
	image        *selectedImage
	inFlight     bool
}

func NewForm(
	variant models.FormVariant,
	maxImageBytes int64,
	connection ConnectionSource,
	api models.TokenCreator,
	notifications models.NotificationService,
	logger *logger.Logger,
) *Form {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	f := &Form{
		logger:        logger,
		variant:       variant,
		maxImageBytes: maxImageBytes,
		connection:    connection,
		api:           api,
		notifications: notifications,
		previews:      NewPreviews(),
		validate:      validate,
	}
	connection.OnDisconnect(f.clearTokenAddress)
	return f
}

// Validate returns one message per invalid field; an empty map means valid.
func (f *Form) Validate(draft models.TokenDraft) map[string]string {
	_, fields := f.normalize(draft)
	return fields
}

// SubmitEnabled reports whether Submit would reach the token API.
func (f *Form) SubmitEnabled(draft models.TokenDraft) bool {
	if !f.connection.State().Connected || len(f.Validate(draft)) > 0 {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.inFlight
}

// Submit validates draft and posts it with the connected wallet as owner.
// The token API call is not cancelled when ctx is; its outcome always
// resolves the loading notification.
func (f *Form) Submit(ctx context.Context, draft models.TokenDraft) (models.TokenResponse, error) {
	normalized, fields := f.normalize(draft)
	if len(fields) > 0 {
		return models.TokenResponse{}, &models.ValidationError{Fields: fields}
	}

	state := f.connection.State()
	if !state.Connected {
		return models.TokenResponse{}, models.ErrWalletNotConnected
	}

	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return models.TokenResponse{}, models.ErrSubmissionInFlight
	}
	f.inFlight = true
	f.tokenAddress = ""
	req := models.TokenRequest{
		Name:          normalized.Name,
		Symbol:        normalized.Symbol,
		Decimals:      *normalized.Decimals,
		InitialSupply: *normalized.InitialSupply,
		Description:   normalized.Description,
		OwnerAddress:  state.WalletAddress,
	}
	if f.image != nil {
		req.Image = &models.TokenImage{
			Filename:    f.image.preview.Filename,
			ContentType: f.image.preview.ContentType,
			Data:        f.image.data,
		}
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight = false
		f.mu.Unlock()
	}()

	loading := f.notifications.Push(models.NotificationLoading, msgCreating)
	start := time.Now()

	resp, err := f.api.CreateToken(context.WithoutCancel(ctx), req)
	if err != nil {
		metrics.RecordTokenSubmission("failure", time.Since(start))
		f.logger.Error("Token creation failed", "error", err, "symbol", req.Symbol, "owner", req.OwnerAddress)
		f.notifications.Update(loading.ID, models.NotificationError, msgFailed)
		return models.TokenResponse{}, err
	}

	metrics.RecordTokenSubmission("success", time.Since(start))
	// Skip storing when the wallet changed while the call was pending.
	if f.connection.State().WalletAddress == req.OwnerAddress {
		f.mu.Lock()
		f.tokenAddress = resp.TokenAddress
		f.mu.Unlock()
	}

	f.logger.Info("Token created", "symbol", req.Symbol, "owner", req.OwnerAddress, "tokenAddress", resp.TokenAddress)
	f.notifications.Update(loading.ID, models.NotificationSuccess, msgCreated)
	return resp, nil
}

// SelectImage makes data the form's image and replaces any previous
// preview. Only image content is accepted.
func (f *Form) SelectImage(filename string, data []byte) (models.ImagePreview, error) {
	if len(data) == 0 {
		return models.ImagePreview{}, fmt.Errorf("%w: empty file", models.ErrInvalidImage)
	}
	if int64(len(data)) > f.maxImageBytes {
		return models.ImagePreview{}, fmt.Errorf("%w: larger than %d bytes", models.ErrInvalidImage, f.maxImageBytes)
	}
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return models.ImagePreview{}, fmt.Errorf("%w: unsupported content type %s", models.ErrInvalidImage, mime.String())
	}

	// Close takes f.mu too, so a preview is never created after RevokeAll
	// and then left attached to the form.
	f.mu.Lock()
	defer f.mu.Unlock()

	preview := f.previews.Create(filename, mime.String(), data)
	if f.image != nil {
		f.previews.Revoke(f.image.preview.Ref)
	}
	f.image = &selectedImage{preview: preview, data: data}
	return preview, nil
}

// ClearImage drops the selected image and its preview.
func (f *Form) ClearImage() {
	f.mu.Lock()
	previous := f.image
	f.image = nil
	f.mu.Unlock()

	if previous != nil {
		f.previews.Revoke(previous.preview.Ref)
	}
}

// Preview resolves a live preview reference.
func (f *Form) Preview(ref string) (models.ImagePreview, []byte, error) {
	meta, data, ok := f.previews.Get(ref)
	if !ok {
		return models.ImagePreview{}, nil, models.ErrPreviewNotFound
	}
	return meta, data, nil
}

// State returns a snapshot of the form.
func (f *Form) State() models.TokenFormState {
	conn := f.connection.State()

	f.mu.Lock()
	defer f.mu.Unlock()

	state := models.TokenFormState{
		Connection:   conn,
		TokenAddress: f.tokenAddress,
		InFlight:     f.inFlight,
		Variant:      f.variant,
	}
	if f.image != nil {
		preview := f.image.preview
		state.Image = &preview
	}
	return state
}

// Close releases every preview. The form keeps working afterwards but
// starts without an image.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.image = nil
	f.previews.RevokeAll()
}

func (f *Form) clearTokenAddress() {
	f.mu.Lock()
	f.tokenAddress = ""
	f.mu.Unlock()
}

// normalize applies the variant rules and runs the schema.
func (f *Form) normalize(draft models.TokenDraft) (models.TokenDraft, map[string]string) {
	if draft.InitialSupply == nil && draft.TotalSupply != nil {
		draft.InitialSupply = draft.TotalSupply
	}
	fields := make(map[string]string)
	if f.variant.FixedDecimals {
		// The field is read-only: an omitted or valid value becomes 18, a
		// negative one is still an error.
		if draft.Decimals != nil && *draft.Decimals < 0 {
			fields["decimals"] = "decimals must be a non-negative number"
		}
		decimals := models.DefaultDecimals
		draft.Decimals = &decimals
	}

	if err := f.validate.Struct(draft); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			fields["form"] = err.Error()
			return draft, fields
		}
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
	}

	if f.variant.ImageRequired {
		f.mu.Lock()
		missing := f.image == nil
		f.mu.Unlock()
		if missing {
			fields["image"] = "image is required"
		}
	}
	return draft, fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be a non-negative number"
	}
	return fe.Field() + " is invalid"
}
