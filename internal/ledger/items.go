package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Items returns a copy of the item masters.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.items...)
}

// Item looks up a single item master.
func (s *Store) Item(id string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

// AddItem registers a new item master. A blank id is assigned one.
func (s *Store) AddItem(ctx context.Context, item Item) (Item, error) {
	if strings.TrimSpace(item.Name) == "" {
		return Item{}, fmt.Errorf("%w: item name required", ErrValidation)
	}
	if strings.TrimSpace(item.Code) == "" {
		return Item{}, fmt.Errorf("%w: item code required", ErrValidation)
	}
	if item.GSTRate < 0 || item.GSTRate > 100 {
		return Item{}, fmt.Errorf("%w: gst rate must be between 0 and 100", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	s.items = append(s.items, item)
	return item, s.flush(ctx)
}

// UpdateItem replaces the master fields of an existing item. Stock is owned
// by the transaction and production engines and is left untouched.
func (s *Store) UpdateItem(ctx context.Context, item Item) (Item, error) {
	if item.ID == "" {
		return Item{}, fmt.Errorf("%w: item id required", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			item.Stock = s.items[i].Stock
			s.items[i] = item
			return item, s.flush(ctx)
		}
	}
	return Item{}, ErrNotFound
}
