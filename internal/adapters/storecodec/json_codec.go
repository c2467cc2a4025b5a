package storecodec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasdb/internal/core/domain/format"
	"github.com/tidwall/pretty"
)

var jsonPrettyOptions = &pretty.Options{Width: 80, Indent: "    "}

// JSONCodec stores aliases as a flat JSON object of name to command.
type JSONCodec struct{}

// NewJSONCodec creates a new JSONCodec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

func (c *JSONCodec) Format() format.Format {
	return format.JSON
}

// Decode parses a JSON object. Empty input and a top-level null decode to an
// empty store.
func (c *JSONCodec) Decode(data []byte) (*alias.Store, error) {
	store := alias.NewStore()
	if len(bytes.TrimSpace(data)) == 0 {
		return store, nil
	}

	// encoding/json would silently replace invalid bytes with U+FFFD.
	if offset := invalidUTF8Offset(data); offset >= 0 {
		return nil, newParseError(format.JSON, lineAt(data, int64(offset)), alias.ErrInvalidCommand)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	fail := func(err error) (*alias.Store, error) {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, newParseError(format.JSON, lineAt(data, decoder.InputOffset()), err)
	}

	tok, err := decoder.Token()
	if err != nil {
		return fail(err)
	}
	if tok == nil {
		if err := expectJSONEnd(decoder); err != nil {
			return fail(err)
		}
		return store, nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fail(fmt.Errorf("top level must be an object of alias names to commands, got %s", jsonTokenName(tok)))
	}

	for decoder.More() {
		keyTok, err := decoder.Token()
		if err != nil {
			return fail(err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fail(fmt.Errorf("expected alias name, got %s", jsonTokenName(keyTok)))
		}
		if err := alias.ValidateName(name); err != nil {
			return fail(err)
		}

		valueTok, err := decoder.Token()
		if err != nil {
			return fail(err)
		}
		command, ok := valueTok.(string)
		if !ok {
			return fail(fmt.Errorf("command for alias %q must be a string, got %s", name, jsonTokenName(valueTok)))
		}
		if _, exists := store.Get(name); exists {
			return fail(fmt.Errorf("alias %q is defined more than once", name))
		}
		store.Set(name, command)
	}

	// Closing brace.
	if _, err := decoder.Token(); err != nil {
		return fail(err)
	}
	if err := expectJSONEnd(decoder); err != nil {
		return fail(err)
	}
	return store, nil
}

// Encode writes the store as an indented JSON object in canonical order.
func (c *JSONCodec) Encode(store *alias.Store) ([]byte, error) {
	if err := validateStore(store); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	// encoding/json writes map keys sorted, which is the canonical order.
	if err := encoder.Encode(store.ToMap()); err != nil {
		return nil, fmt.Errorf("encoding json alias store: %w", err)
	}
	return pretty.PrettyOptions(buf.Bytes(), jsonPrettyOptions), nil
}

func expectJSONEnd(decoder *json.Decoder) error {
	tok, err := decoder.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("found %s after the top-level value", jsonTokenName(tok))
}

func jsonTokenName(tok json.Token) string {
	switch v := tok.(type) {
	case nil:
		return "null"
	case json.Delim:
		switch v {
		case '{':
			return "an object"
		case '[':
			return "an array"
		}
		return fmt.Sprintf("%q", v.String())
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case float64, json.Number:
		return "a number"
	}
	return fmt.Sprintf("%T", tok)
}
