package ports

import (
	"io"

	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
)

// AliasManagementService defines the contract for managing the alias store.
type AliasManagementService interface {
	// AddAlias inserts or overwrites an alias and persists the store.
	// It returns true if an existing alias with the same name was replaced.
	AddAlias(name, command string) (bool, error)

	// RemoveAlias deletes an alias and persists the store. Removing an alias
	// that does not exist is not an error; it returns false.
	RemoveAlias(name string) (bool, error)

	// GetAlias looks up a single alias by name.
	GetAlias(name string) (alias.Alias, bool, error)

	// ListAliases returns every alias in canonical order.
	ListAliases() ([]alias.Alias, error)

	// RenderScript returns a shell script defining every alias.
	RenderScript() (string, error)

	// RenderAlias returns the shell statement defining a single alias.
	RenderAlias(name string) (string, bool, error)

	// ImportScript reads alias definitions from a shell script and adds them.
	ImportScript(r io.Reader) (int, error)

	// ExportTo writes the whole store into another repository.
	ExportTo(dst AliasRepository) (int, error)
}
