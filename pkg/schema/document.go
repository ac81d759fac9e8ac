package schema

import (
	"fmt"

	"github.com/vrclog/logschema/internal/safefile"
	"gopkg.in/yaml.v3"
)

// MaxSchemaFileSize is the maximum allowed size for a schema document (1 MiB).
const MaxSchemaFileSize = 1 * 1024 * 1024

// rawDocument maps each top-level key to its (alias-resolved) value node.
type rawDocument map[string]*yaml.Node

// ParseFile reads and builds the schema at path.
// Read failures are *IOError; everything after the read behaves like ParseBytes.
//
// Example:
//
//	s, err := schema.ParseFile("schema.yaml")
//	if err != nil {
//	    log.Fatalf("failed to load schema: %v", err)
//	}
func ParseFile(path string, opts ...Option) (*ParsedSchema, error) {
	data, err := safefile.ReadRegular(path, MaxSchemaFileSize)
	if err != nil {
		return nil, &IOError{Err: safefile.SanitizePathError(err)}
	}
	return ParseBytes(data, opts...)
}

// ParseString builds a schema from YAML source text.
func ParseString(source string, opts ...Option) (*ParsedSchema, error) {
	return ParseBytes([]byte(source), opts...)
}

// ParseBytes builds a schema from YAML source.
//
// The sections are checked in the order timestamp, variables, delimiters and the
// first problem found is returned. On error the returned schema is nil.
func ParseBytes(data []byte, opts ...Option) (*ParsedSchema, error) {
	cfg := applyParseOptions(opts)

	doc, err := loadDocument(data)
	if err != nil {
		return nil, err
	}
	return build(doc, cfg)
}

// loadDocument runs the YAML parser and indexes the top-level mapping.
func loadDocument(data []byte) (rawDocument, error) {
	if len(data) > MaxSchemaFileSize {
		return nil, &DocumentError{
			Message: fmt.Sprintf("document too large: %d bytes (max %d)", len(data), MaxSchemaFileSize),
		}
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &DocumentError{Message: "invalid YAML", Err: err}
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return nil, &DocumentError{Message: "document is empty"}
	}

	root := resolve(node.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, &DocumentError{Line: root.Line, Message: "top level must be a mapping"}
	}

	doc := make(rawDocument, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k := resolve(root.Content[i])
		if !isString(k) {
			return nil, &DocumentError{Line: k.Line, Message: "top-level keys must be strings"}
		}
		if _, dup := doc[k.Value]; dup {
			return nil, &DocumentError{Line: k.Line, Message: fmt.Sprintf("mapping key %q already defined", k.Value)}
		}
		doc[k.Value] = resolve(root.Content[i+1])
	}
	return doc, nil
}

// requireKey returns the value of a required section.
func requireKey(doc rawDocument, key string) (*yaml.Node, error) {
	v, ok := doc[key]
	if !ok {
		return nil, &MissingKeyError{Key: key}
	}
	return v, nil
}

// resolve follows alias nodes to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// isString reports whether n is a string scalar. yaml.v3 resolves plain date-shaped
// scalars such as 2024-01-01 to !!timestamp; without an explicit tag those are
// strings under the YAML 1.2 core schema, so they count as well.
func isString(n *yaml.Node) bool {
	if n.Kind != yaml.ScalarNode {
		return false
	}
	switch n.ShortTag() {
	case "!!str":
		return true
	case "!!timestamp":
		return n.Style&yaml.TaggedStyle == 0
	}
	return false
}
