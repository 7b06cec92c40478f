package items

import (
	"fmt"
	"sync"

	"github.com/core-coin/tokenforge/internal/models"
)

// Editor is the item form. It remembers which item, if any, is being edited
// and turns a submit into either an add or an update.
type Editor struct {
	store models.ItemStore

	mu      sync.Mutex
	editing int64 // 0 means not editing; ids start at 1
}

func NewEditor(store models.ItemStore) *Editor {
	return &Editor{store: store}
}

// Edit enters edit mode for an existing item.
func (e *Editor) Edit(id int64) (models.Item, error) {
	item, ok := e.store.Get(id)
	if !ok {
		return models.Item{}, fmt.Errorf("edit item %d: %w", id, models.ErrItemNotFound)
	}

	e.mu.Lock()
	e.editing = id
	e.mu.Unlock()
	return item, nil
}

// CancelEdit leaves edit mode.
func (e *Editor) CancelEdit() {
	e.mu.Lock()
	e.editing = 0
	e.mu.Unlock()
}

// Submit updates the item being edited and leaves edit mode, or adds a new
// item when nothing is being edited. It reports false when the edited item
// was removed in the meantime, in which case nothing was stored.
func (e *Editor) Submit(name, description string) (models.Item, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.editing != 0 {
		id := e.editing
		e.editing = 0
		e.store.Update(id, models.ItemPatch{Name: &name, Description: &description})
		return e.store.Get(id)
	}
	return e.store.Add(name, description), true
}

// Delete removes an item and leaves edit mode if it was the one being edited.
func (e *Editor) Delete(id int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.store.Remove(id)
	if e.editing == id {
		e.editing = 0
	}
}

// View returns the rows and the prefill for the form.
func (e *Editor) View() models.ItemsView {
	e.mu.Lock()
	editing := e.editing
	e.mu.Unlock()

	v := models.ItemsView{Items: e.store.List()}
	if editing != 0 {
		if item, ok := e.store.Get(editing); ok {
			v.Editing = &item
		}
	}
	return v
}
