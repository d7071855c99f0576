package models

import (
	"sort"
	"strings"
)

// Store accumulates properties as an ordered set. Elements are unique
// and iterated ascending by the (city, price, sqm, rooms, genre) tuple,
// so reports are reproducible across runs.
type Store struct {
	items []Property
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add inserts p at its sorted position. Inserting a property whose key
// tuple is already present is a no-op; the return value reports whether
// the property was actually stored.
func (s *Store) Add(p Property) bool {
	i := sort.Search(len(s.items), func(i int) bool {
		return compareProperties(s.items[i], p) >= 0
	})
	if i < len(s.items) && compareProperties(s.items[i], p) == 0 {
		return false
	}
	s.items = append(s.items, nil)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = p
	return true
}

// All returns the stored properties in their deterministic order. The
// returned slice is a copy; mutating it does not affect the store.
func (s *Store) All() []Property {
	out := make([]Property, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of stored properties.
func (s *Store) Len() int { return len(s.items) }

// IsEmpty reports whether the store holds no properties.
func (s *Store) IsEmpty() bool { return len(s.items) == 0 }

// compareProperties orders by the attribute tuple
// (city, price, sqm, rooms, genre), each ascending.
func compareProperties(a, b Property) int {
	x, y := a.Base(), b.Base()
	if c := strings.Compare(x.City, y.City); c != 0 {
		return c
	}
	if x.Price != y.Price {
		if x.Price < y.Price {
			return -1
		}
		return 1
	}
	if x.Sqm != y.Sqm {
		if x.Sqm < y.Sqm {
			return -1
		}
		return 1
	}
	if x.Rooms != y.Rooms {
		if x.Rooms < y.Rooms {
			return -1
		}
		return 1
	}
	return strings.Compare(string(x.Genre), string(y.Genre))
}
