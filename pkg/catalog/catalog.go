// Package catalog holds the candidate list and its mutations.
package catalog

import (
	"strings"

	"github.com/google/uuid"
)

const (
	MinWeight     = 1
	MaxWeight     = 5
	DefaultWeight = 2
)

// Item is a single lunch candidate. Price is in minor currency units and nil
// when unknown; an unknown price is never excluded by a budget ceiling.
type Item struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Price  *int     `json:"price,omitempty"`
	Tags   []string `json:"tags"`
	Weight int      `json:"weight"`
}

// HasTag reports whether tag is present in the item's tag set.
func (i Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ClampWeight forces w into the [MinWeight, MaxWeight] range.
func ClampWeight(w int) int {
	if w < MinWeight {
		return MinWeight
	}
	if w > MaxWeight {
		return MaxWeight
	}
	return w
}

// Store is the in-memory catalog. Most-recently-added items come first.
type Store struct {
	items []Item
	newID func() string
}

func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// Add creates a new item and prepends it to the catalog. A name that is empty
// after trimming is rejected: the second return value is false and nothing
// changes. Negative prices are stored as unknown.
func (s *Store) Add(name string, price *int, tags []string) (Item, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, false
	}
	if price != nil && *price < 0 {
		price = nil
	}
	if tags == nil {
		tags = []string{}
	}
	item := Item{
		ID:     s.newID(),
		Name:   name,
		Price:  price,
		Tags:   tags,
		Weight: DefaultWeight,
	}
	s.items = append([]Item{item}, s.items...)
	return item, true
}

// Remove deletes the item with the given id. Removing an unknown id is a
// no-op; the return value reports whether anything was deleted.
func (s *Store) Remove(id string) bool {
	for n, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:n], s.items[n+1:]...)
			return true
		}
	}
	return false
}

// SetWeight stores the clamped weight on the item with the given id.
func (s *Store) SetWeight(id string, weight int) bool {
	for n := range s.items {
		if s.items[n].ID == id {
			s.items[n].Weight = ClampWeight(weight)
			return true
		}
	}
	return false
}

// Get returns the item with the given id, if present.
func (s *Store) Get(id string) (Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// List returns a copy of the catalog in display order.
func (s *Store) List() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	return len(s.items)
}

// Replace swaps in a previously persisted catalog.
func (s *Store) Replace(items []Item) {
	s.items = make([]Item, len(items))
	copy(s.items, items)
}
