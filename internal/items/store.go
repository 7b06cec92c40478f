package items

import (
	"sync"

	"github.com/core-coin/tokenforge/internal/models"
)

// Store is an in-memory item collection. Each Store owns its id counter,
// so separately constructed stores never share ids.
type Store struct {
	mu     sync.RWMutex
	items  []models.Item
	nextID int64
}

// NewStore creates an empty store whose first id is 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// List returns the items in insertion order.
func (s *Store) List() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the item with the given id.
func (s *Store) Get(id int64) (models.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return models.Item{}, false
}

// Add appends a new item under the next unused id.
func (s *Store) Add(name, description string) models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.Item{ID: s.nextID, Name: name, Description: description}
	s.nextID++
	s.items = append(s.items, item)
	return item
}

// Update merges patch into the item with the given id.
func (s *Store) Update(id int64, patch models.ItemPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	if patch.Name != nil {
		s.items[i].Name = *patch.Name
	}
	if patch.Description != nil {
		s.items[i].Description = *patch.Description
	}
}

// Remove deletes the item with the given id.
func (s *Store) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// Len returns the number of items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
