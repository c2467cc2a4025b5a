package ports

import (
	"io"

	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
)

// ShellScript converts alias definitions to and from shell script text.
type ShellScript interface {
	// Render returns one alias statement per entry, in the order given.
	Render(aliases []alias.Alias) string

	// Parse reads the alias statements of a script, in the order they appear.
	Parse(r io.Reader) ([]alias.Alias, error)
}
