package storecodec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasdb/internal/core/domain/format"
	"gopkg.in/yaml.v3"
)

// YAMLCodec stores aliases as a flat YAML mapping:
//
//	lss: ls -lhr --sort size
//	lst: "ls -lhr --sort time"
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAMLCodec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

func (c *YAMLCodec) Format() format.Format {
	return format.YAML
}

// Decode parses a YAML document. An empty document, one holding only
// comments, or an explicit null decodes to an empty store.
func (c *YAMLCodec) Decode(data []byte) (*alias.Store, error) {
	store := alias.NewStore()
	if len(bytes.TrimSpace(data)) == 0 {
		return store, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := decoder.Decode(&doc); err != nil {
		// A document with only comments or "---" has no content.
		if errors.Is(err, io.EOF) {
			return store, nil
		}
		return nil, newParseError(format.YAML, 0, err)
	}

	var extra yaml.Node
	if err := decoder.Decode(&extra); err == nil {
		return nil, newParseError(format.YAML, extra.Line, errors.New("multiple documents are not supported"))
	} else if !errors.Is(err, io.EOF) {
		return nil, newParseError(format.YAML, 0, err)
	}

	if len(doc.Content) == 0 {
		return store, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return store, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, newParseError(format.YAML, root.Line,
			fmt.Errorf("top level must be a mapping of alias names to commands, got %s", yamlKindName(root)))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, newParseError(format.YAML, keyNode.Line,
				fmt.Errorf("alias name must be a scalar, got %s", yamlKindName(keyNode)))
		}
		name := keyNode.Value
		if err := alias.ValidateName(name); err != nil {
			return nil, newParseError(format.YAML, keyNode.Line, err)
		}
		if valueNode.Kind == yaml.AliasNode && valueNode.Alias != nil {
			valueNode = valueNode.Alias
		}
		if valueNode.Kind != yaml.ScalarNode || valueNode.ShortTag() == "!!null" {
			return nil, newParseError(format.YAML, valueNode.Line,
				fmt.Errorf("command for alias %q must be a string, got %s", name, yamlKindName(valueNode)))
		}
		// yaml.v3 writes strings that are not valid UTF-8 as base64 under
		// this tag; taking the text as is would change the command.
		if valueNode.ShortTag() == "!!binary" {
			return nil, newParseError(format.YAML, valueNode.Line,
				fmt.Errorf("command for alias %q: %w", name, alias.ErrInvalidCommand))
		}
		if err := alias.ValidateCommand(valueNode.Value); err != nil {
			return nil, newParseError(format.YAML, valueNode.Line, fmt.Errorf("command for alias %q: %w", name, err))
		}
		if _, exists := store.Get(name); exists {
			return nil, newParseError(format.YAML, keyNode.Line, fmt.Errorf("alias %q is defined more than once", name))
		}
		store.Set(name, valueNode.Value)
	}
	return store, nil
}

// Encode writes the store as a YAML mapping in canonical order. Values that
// would otherwise read back as numbers, booleans or nulls are quoted.
func (c *YAMLCodec) Encode(store *alias.Store) ([]byte, error) {
	if err := validateStore(store); err != nil {
		return nil, err
	}
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, a := range store.Entries() {
		var keyNode, valueNode yaml.Node
		if err := keyNode.Encode(a.Name); err != nil {
			return nil, fmt.Errorf("encoding alias name %q: %w", a.Name, err)
		}
		if err := valueNode.Encode(a.Command); err != nil {
			return nil, fmt.Errorf("encoding command for alias %q: %w", a.Name, err)
		}
		root.Content = append(root.Content, &keyNode, &valueNode)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(4)
	if err := encoder.Encode(root); err != nil {
		return nil, fmt.Errorf("encoding yaml alias store: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml alias store: %w", err)
	}
	return buf.Bytes(), nil
}

func yamlKindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.AliasNode:
		return "an alias"
	case yaml.DocumentNode:
		return "a document"
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return "null"
		}
		return "a scalar"
	}
	return "an unknown node"
}
