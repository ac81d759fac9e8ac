package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vrclog/logschema/pkg/schema"
)

// ValidFormats lists all valid output formats.
var ValidFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
}

// entryRecord is the JSON Lines form of one schema entry or of the delimiter set.
type entryRecord struct {
	Kind     string   `json:"kind"`
	Index    *int     `json:"index,omitempty"`
	Name     string   `json:"name,omitempty"`
	Pattern  string   `json:"pattern,omitempty"`
	AST      string   `json:"ast,omitempty"`
	Captures []string `json:"captures,omitempty"`
	Chars    *string  `json:"chars,omitempty"`
}

// OutputSchema writes a schema in the specified format to the writer.
func OutputSchema(format string, s *schema.ParsedSchema, out io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(s, out)
	case "pretty":
		return OutputPretty(s, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputJSON writes one JSON object per entry, then one for the delimiters.
func OutputJSON(s *schema.ParsedSchema, out io.Writer) error {
	enc := json.NewEncoder(out)
	for i, e := range s.Entries() {
		rec := entryRecord{
			Kind:     e.Kind().String(),
			Pattern:  e.Pattern(),
			AST:      e.AST().String(),
			Captures: e.AST().CaptureNames(),
		}
		switch e := e.(type) {
		case *schema.TimestampEntry:
			idx := i
			rec.Index = &idx
		case *schema.VariableEntry:
			rec.Name = e.Name()
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}

	chars := string(s.Delimiters().Bytes())
	return enc.Encode(entryRecord{Kind: "delimiters", Chars: &chars})
}

// OutputPretty writes the schema in human-readable form.
func OutputPretty(s *schema.ParsedSchema, out io.Writer) error {
	for i, e := range s.Entries() {
		var err error
		switch e := e.(type) {
		case *schema.TimestampEntry:
			_, err = fmt.Fprintf(out, "timestamp[%d] %s\n", i, quoteIfNeeded(e.Pattern()))
		case *schema.VariableEntry:
			_, err = fmt.Fprintf(out, "variable     %s = %s\n", e.Name(), quoteIfNeeded(e.Pattern()))
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "delimiters   %s\n", quoteIfNeeded(string(s.Delimiters().Bytes())))
	return err
}

// quoteIfNeeded quotes a value if it contains spaces, quotes or control characters.
// Returns the value unchanged if no quoting is needed.
func quoteIfNeeded(v string) string {
	if v == "" {
		return `""`
	}

	needsQuote := false
	for _, c := range v {
		if c == ' ' || c == '"' || c < 0x20 || c == 0x7F {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return v
	}

	// Backslashes are doubled so regex escapes stay readable after unquoting.
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range v {
		switch {
		case c == '\\':
			sb.WriteString(`\\`)
		case c == '"':
			sb.WriteString(`\"`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c < 0x20 || c == 0x7F:
			sb.WriteString(fmt.Sprintf(`\x%02x`, c))
		default:
			sb.WriteRune(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
