package ports

import "github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"

/*
AliasRepository defines the interface for loading and persisting an alias
store. This is a driven port, typically implemented by a file-backed adapter.
*/
type AliasRepository interface {
	// Load reads the whole store. A missing backing file yields either an
	// empty store or an error wrapping alias.ErrStoreNotFound, depending on
	// how the repository was configured.
	Load() (*alias.Store, error)

	// Save replaces the persisted store with the given one.
	Save(store *alias.Store) error

	// Location describes where the store lives, for messages to the user.
	Location() string
}
