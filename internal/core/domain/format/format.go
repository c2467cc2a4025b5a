/*
Package format defines the serialization formats an alias store can be
persisted in.
*/
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned when a format name or file extension is not recognised.
var ErrUnknownFormat = errors.New("unknown alias file format")

// Format tags a store serialization syntax.
type Format int

const (
	// YAML is the indentation-based format.
	YAML Format = iota + 1
	// JSON is the brace-delimited format.
	JSON
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// All lists the supported formats.
func All() []Format {
	return []Format{YAML, JSON}
}

// Parse converts a user supplied name ("yaml", "yml", "json") into a Format.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FromPath derives the format from a file extension.
func FromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return Parse(ext)
}
