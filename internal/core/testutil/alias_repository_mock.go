package testutil

import (
	"errors"

	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasdb/internal/core/ports"
)

// MockAliasRepository is a mock implementation of ports.AliasRepository for testing.
type MockAliasRepository struct {
	LoadFunc     func() (*alias.Store, error)
	SaveFunc     func(store *alias.Store) error
	LocationFunc func() string

	// SaveCalls records a copy of every store passed to Save.
	SaveCalls []map[string]string
}

func (m *MockAliasRepository) Load() (*alias.Store, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return nil, errors.New("MockAliasRepository: LoadFunc not implemented")
}

func (m *MockAliasRepository) Save(store *alias.Store) error {
	m.SaveCalls = append(m.SaveCalls, store.ToMap())
	if m.SaveFunc != nil {
		return m.SaveFunc(store)
	}
	return nil
}

func (m *MockAliasRepository) Location() string {
	if m.LocationFunc != nil {
		return m.LocationFunc()
	}
	return "mock://aliases"
}

// NewInMemoryAliasRepository returns a mock whose Load returns a copy of the
// last saved contents, starting from initial.
func NewInMemoryAliasRepository(initial map[string]string) *MockAliasRepository {
	current := alias.StoreFromMap(initial)
	m := &MockAliasRepository{}
	m.LoadFunc = func() (*alias.Store, error) {
		return alias.StoreFromMap(current.ToMap()), nil
	}
	m.SaveFunc = func(store *alias.Store) error {
		current = alias.StoreFromMap(store.ToMap())
		return nil
	}
	return m
}

var _ ports.AliasRepository = (*MockAliasRepository)(nil)
