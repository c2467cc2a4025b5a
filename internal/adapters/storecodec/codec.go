/*
Package storecodec implements the serialization formats of the alias store.
Each format is a ports.StoreCodec; ForFormat selects one by tag.
*/
package storecodec

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasdb/internal/core/domain/format"
	"github.com/AntonioJCosta/aliasdb/internal/core/ports"
)

var codecs = map[format.Format]ports.StoreCodec{
	format.YAML: NewYAMLCodec(),
	format.JSON: NewJSONCodec(),
}

// ForFormat returns the codec registered for f.
func ForFormat(f format.Format) (ports.StoreCodec, error) {
	c, ok := codecs[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", format.ErrUnknownFormat, f)
	}
	return c, nil
}

// lineAt returns the 1-based line number of a byte offset in data.
func lineAt(data []byte, offset int64) int {
	if offset < 0 {
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

func newParseError(f format.Format, line int, err error) *alias.ParseError {
	return &alias.ParseError{Format: f.String(), Line: line, Err: err}
}

// validateStore rejects entries that could not be written without changing
// them or the meaning of the generated script.
func validateStore(store *alias.Store) error {
	for _, a := range store.Entries() {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("cannot encode alias %q: %w", a.Name, err)
		}
	}
	return nil
}

// invalidUTF8Offset returns the offset of the first byte of data that is not
// part of a valid UTF-8 sequence, or -1.
func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
