// Package store owns the canonical packing list. It is the only place the
// list is mutated; everything else reads snapshots from it.
package store

import (
	"slices"

	"github.com/idilsaglam/faraway/internal/debug"
	"github.com/idilsaglam/faraway/internal/model"
)

// Store holds the items in input order and hands out ids.
// It is not safe for concurrent use; one session drives it from one goroutine.
type Store struct {
	items  []model.Item
	lastID int64
}

// New creates a store with an optional initial set. Items repeating an id
// already seen are dropped and quantities below 1 become 1. The id counter
// starts above the largest initial id.
func New(initial ...model.Item) *Store {
	s := &Store{items: make([]model.Item, 0, len(initial))}
	seen := make(map[int64]struct{}, len(initial))
	for _, it := range initial {
		if _, dup := seen[it.ID]; dup {
			debug.Log("store: dropping duplicate initial id=%d", it.ID)
			continue
		}
		seen[it.ID] = struct{}{}
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		s.items = append(s.items, it)
		if it.ID > s.lastID {
			s.lastID = it.ID
		}
	}
	return s
}

// Add appends a new unpacked item and returns it. The caller validates the
// description; quantities below 1 are stored as 1.
func (s *Store) Add(description string, quantity int) model.Item {
	if quantity < 1 {
		quantity = 1
	}
	s.lastID++
	it := model.Item{
		ID:          s.lastID,
		Description: description,
		Quantity:    quantity,
	}
	s.items = append(s.items, it)
	debug.Log("store: add id=%d qty=%d %q", it.ID, it.Quantity, it.Description)
	return it
}

// Delete removes the item with the given id. Unknown ids are ignored.
func (s *Store) Delete(id int64) {
	i := s.index(id)
	if i < 0 {
		debug.Log("store: delete id=%d: not present", id)
		return
	}
	s.items = slices.Delete(s.items, i, i+1)
	debug.Log("store: delete id=%d", id)
}

// Toggle flips the packed flag of the item with the given id. Unknown ids are ignored.
func (s *Store) Toggle(id int64) {
	i := s.index(id)
	if i < 0 {
		debug.Log("store: toggle id=%d: not present", id)
		return
	}
	s.items[i].Packed = !s.items[i].Packed
	debug.Log("store: toggle id=%d packed=%t", id, s.items[i].Packed)
}

// Clear empties the list. Confirmation is the caller's job.
// Ids issued before Clear are still never reissued.
func (s *Store) Clear() {
	debug.Log("store: clear %d items", len(s.items))
	s.items = s.items[:0:0]
}

// Items returns a copy of the list in input order.
func (s *Store) Items() []model.Item {
	return slices.Clone(s.items)
}

// Get looks an item up by id.
func (s *Store) Get(id int64) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

func (s *Store) Len() int { return len(s.items) }

func (s *Store) index(id int64) int {
	return slices.IndexFunc(s.items, func(it model.Item) bool { return it.ID == id })
}
