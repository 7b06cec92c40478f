package tokenform

import (
	"sync"

	"github.com/google/uuid"

	"github.com/core-coin/tokenforge/internal/models"
)

type preview struct {
	meta models.ImagePreview
	data []byte
}

// Previews holds revocable references to in-memory images.
// A reference stays resolvable until it is revoked.
type Previews struct {
	mu    sync.RWMutex
	byRef map[string]preview
}

func NewPreviews() *Previews {
	return &Previews{byRef: make(map[string]preview)}
}

// Create stores data under a fresh reference.
func (p *Previews) Create(filename, contentType string, data []byte) models.ImagePreview {
	meta := models.ImagePreview{
		Ref:         uuid.NewString(),
		Filename:    filename,
		ContentType: contentType,
		Size:        len(data),
	}

	p.mu.Lock()
	p.byRef[meta.Ref] = preview{meta: meta, data: data}
	p.mu.Unlock()
	return meta
}

// Get resolves a reference.
func (p *Previews) Get(ref string) (models.ImagePreview, []byte, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entry, ok := p.byRef[ref]
	return entry.meta, entry.data, ok
}

// Revoke releases a reference. Unknown references are ignored.
func (p *Previews) Revoke(ref string) {
	p.mu.Lock()
	delete(p.byRef, ref)
	p.mu.Unlock()
}

// RevokeAll releases every reference.
func (p *Previews) RevokeAll() {
	p.mu.Lock()
	p.byRef = make(map[string]preview)
	p.mu.Unlock()
}

// Len returns the number of live references.
func (p *Previews) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.byRef)
}
