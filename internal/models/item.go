package models

// Item is a user-managed named record.
type Item struct {
	// ID is allocated by the store, starting at 1 and never reused.
	ID int64 `json:"id"`
	// Name is the display name of the item.
	Name string `json:"name"`
	// Description is free text shown next to the name.
	Description string `json:"description"`
}

// ItemPatch carries the fields of an update. Nil fields are left unchanged.
type ItemPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ItemStore is the single source of truth for the item collection.
type ItemStore interface {
	List() []Item
	Get(id int64) (Item, bool)
	Add(name, description string) Item
	// Update merges patch into the item with the given id. Unknown ids are ignored.
	Update(id int64, patch ItemPatch)
	// Remove deletes the item with the given id. Unknown ids are ignored.
	Remove(id int64)
	Len() int
}

// ItemsView is what the item page renders: every row plus the item being edited.
type ItemsView struct {
	Items   []Item `json:"items"`
	Editing *Item  `json:"editing,omitempty"`
}
