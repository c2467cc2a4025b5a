package ports

import (
	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasdb/internal/core/domain/format"
)

/*
StoreCodec converts an alias store to and from one textual document format.
Decode returns an *alias.ParseError for documents that are not a flat mapping
of names to string commands.
*/
type StoreCodec interface {
	Format() format.Format
	Decode(data []byte) (*alias.Store, error)
	Encode(store *alias.Store) ([]byte, error)
}
