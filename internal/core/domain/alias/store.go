package alias

import (
	"maps"
	"slices"
)

/*
Store maps alias names to commands. Keys are unique and every iteration over
the store follows the canonical order: names sorted lexically by bytes.

The zero value is not usable; create stores with NewStore or StoreFromMap.
*/
type Store struct {
	entries map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]string)}
}

// StoreFromMap returns a store holding a copy of m.
func StoreFromMap(m map[string]string) *Store {
	s := NewStore()
	maps.Copy(s.entries, m)
	return s
}

// Set inserts or overwrites the command for name.
// It reports whether an existing entry was replaced.
func (s *Store) Set(name, command string) (replaced bool) {
	_, replaced = s.entries[name]
	s.entries[name] = command
	return replaced
}

// Delete removes name from the store. Removing an absent name is a no-op.
// It reports whether an entry was removed.
func (s *Store) Delete(name string) (removed bool) {
	if _, ok := s.entries[name]; !ok {
		return false
	}
	delete(s.entries, name)
	return true
}

// Get returns the command stored for name.
func (s *Store) Get(name string) (string, bool) {
	cmd, ok := s.entries[name]
	return cmd, ok
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Names returns all alias names in canonical order.
func (s *Store) Names() []string {
	return slices.Sorted(maps.Keys(s.entries))
}

// Entries returns all aliases in canonical order.
func (s *Store) Entries() []Alias {
	names := s.Names()
	out := make([]Alias, 0, len(names))
	for _, name := range names {
		out = append(out, Alias{Name: name, Command: s.entries[name]})
	}
	return out
}

// ToMap returns a copy of the store contents.
func (s *Store) ToMap() map[string]string {
	return maps.Clone(s.entries)
}

// Equal reports whether both stores hold the same names mapped to the same commands.
func (s *Store) Equal(other *Store) bool {
	if s == nil || other == nil {
		return s == other
	}
	return maps.Equal(s.entries, other.entries)
}
