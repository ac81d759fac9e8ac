package schema

import (
	"fmt"
	"log/slog"

	"github.com/vrclog/logschema/pkg/regexast"
	"gopkg.in/yaml.v3"
)

// build assembles a ParsedSchema from the three required sections.
// Sections are processed in fixed order and the first error aborts the build.
func build(doc rawDocument, cfg *parseConfig) (*ParsedSchema, error) {
	parser := regexast.LimitLength(cfg.newParser(), cfg.maxPatternLength)
	logger := cfg.logger

	tsNode, err := requireKey(doc, TimestampKey)
	if err != nil {
		return nil, err
	}
	entries, err := buildTimestamps(tsNode, parser)
	if err != nil {
		return nil, err
	}
	timestamps := len(entries)
	logger.Debug("built schema section", slog.String("section", TimestampKey), slog.Int("entries", timestamps))

	varNode, err := requireKey(doc, VariablesKey)
	if err != nil {
		return nil, err
	}
	entries, err = buildVariables(varNode, parser, entries)
	if err != nil {
		return nil, err
	}
	logger.Debug("built schema section", slog.String("section", VariablesKey), slog.Int("entries", len(entries)-timestamps))

	delimNode, err := requireKey(doc, DelimitersKey)
	if err != nil {
		return nil, err
	}
	delimiters, err := buildDelimiters(delimNode)
	if err != nil {
		return nil, err
	}
	logger.Debug("built schema section", slog.String("section", DelimitersKey), slog.Int("delimiters", delimiters.Len()))

	return &ParsedSchema{
		entries:    entries,
		timestamps: timestamps,
		delimiters: delimiters,
	}, nil
}

// buildTimestamps converts the timestamp sequence into entries, keeping source order.
func buildTimestamps(node *yaml.Node, parser regexast.Parser) ([]Entry, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, shapeError(TimestampKey, -1, "", node, "must be a sequence of patterns")
	}

	entries := make([]Entry, 0, len(node.Content))
	for i, item := range node.Content {
		item = resolve(item)
		if !isString(item) {
			return nil, shapeError(TimestampKey, i, "", item, "pattern must be a string")
		}
		ast, err := parser.Parse(item.Value)
		if err != nil {
			return nil, &PatternError{Section: TimestampKey, Index: i, Cause: err}
		}
		entries = append(entries, &TimestampEntry{pattern: item.Value, ast: ast})
	}
	return entries, nil
}

// buildVariables appends one entry per name/pattern pair, in document order.
func buildVariables(node *yaml.Node, parser regexast.Parser, entries []Entry) ([]Entry, error) {
	if node.Kind != yaml.MappingNode {
		return nil, shapeError(VariablesKey, -1, "", node, "must be a mapping of name to pattern")
	}

	seen := make(map[string]int, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := resolve(node.Content[i]), resolve(node.Content[i+1])
		if !isString(k) {
			return nil, shapeError(VariablesKey, -1, "", k, "variable name must be a string")
		}
		name := k.Value
		if prevLine, dup := seen[name]; dup {
			return nil, shapeError(VariablesKey, -1, name, k,
				fmt.Sprintf("duplicate variable name (previously defined at line %d)", prevLine))
		}
		seen[name] = k.Line
		if !isString(v) {
			return nil, shapeError(VariablesKey, -1, name, v, "pattern must be a string")
		}

		ast, err := parser.Parse(v.Value)
		if err != nil {
			return nil, &PatternError{Section: VariablesKey, Index: -1, Name: name, Cause: err}
		}
		entries = append(entries, &VariableEntry{name: name, pattern: v.Value, ast: ast})
	}
	return entries, nil
}

// buildDelimiters converts the delimiter string into a set.
func buildDelimiters(node *yaml.Node) (DelimiterSet, error) {
	if !isString(node) {
		return DelimiterSet{}, shapeError(DelimitersKey, -1, "", node, "must be a string of characters")
	}
	return NewDelimiterSet(node.Value)
}

func shapeError(section string, index int, name string, node *yaml.Node, msg string) *InvalidSchemaError {
	return &InvalidSchemaError{
		Section: section,
		Index:   index,
		Name:    name,
		Line:    node.Line,
		Column:  node.Column,
		Message: msg,
	}
}
