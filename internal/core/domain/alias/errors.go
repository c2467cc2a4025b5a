package alias

import (
	"errors"
	"fmt"
)

// ErrStoreNotFound indicates that the alias file does not exist and the
// repository was configured not to treat a missing file as an empty store.
var ErrStoreNotFound = errors.New("alias file not found")

/*
ParseError reports a document that is not a well-formed alias store for its
declared format. Path is empty when the document did not come from a file.
*/
type ParseError struct {
	Path   string
	Format string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	where := "document"
	if e.Path != "" {
		where = e.Path
	}
	if e.Line > 0 {
		return fmt.Sprintf("invalid %s alias file %s (line %d): %v", e.Format, where, e.Line, e.Err)
	}
	return fmt.Sprintf("invalid %s alias file %s: %v", e.Format, where, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
