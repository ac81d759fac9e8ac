package schema

import "github.com/vrclog/logschema/pkg/regexast"

// Section names. These are fixed; schema documents cannot rename them.
const (
	TimestampKey  = "timestamp"
	VariablesKey  = "variables"
	DelimitersKey = "delimiters"
)

// Kind identifies the variant of an Entry.
type Kind int

const (
	KindTimestamp Kind = iota + 1
	KindVariable
)

func (k Kind) String() string {
	switch k {
	case KindTimestamp:
		return "timestamp"
	case KindVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// Entry is one pattern of a ParsedSchema. The only implementations are
// *TimestampEntry and *VariableEntry; switch on the concrete type to dispatch.
type Entry interface {
	Kind() Kind
	// Pattern returns the source string exactly as written in the document.
	Pattern() string
	// AST returns the parsed form of Pattern.
	AST() regexast.AST

	entry()
}

// TimestampEntry is one accepted timestamp format.
type TimestampEntry struct {
	pattern string
	ast     regexast.AST
}

func (e *TimestampEntry) Kind() Kind        { return KindTimestamp }
func (e *TimestampEntry) Pattern() string   { return e.pattern }
func (e *TimestampEntry) AST() regexast.AST { return e.ast }

func (*TimestampEntry) entry() {}

// VariableEntry is one named field pattern.
type VariableEntry struct {
	name    string
	pattern string
	ast     regexast.AST
}

func (e *VariableEntry) Kind() Kind        { return KindVariable }
func (e *VariableEntry) Name() string      { return e.name }
func (e *VariableEntry) Pattern() string   { return e.pattern }
func (e *VariableEntry) AST() regexast.AST { return e.ast }

func (*VariableEntry) entry() {}

// ParsedSchema is a fully validated schema. It is immutable and safe for concurrent reads.
//
// Entries are ordered: all timestamp entries in document order, then all variable
// entries in document order. The timestamp order is the order in which a matcher
// should try the formats.
type ParsedSchema struct {
	entries    []Entry
	timestamps int
	delimiters DelimiterSet
}

// Entries returns a copy of the entry list.
func (s *ParsedSchema) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *ParsedSchema) Len() int {
	return len(s.entries)
}

// Timestamps returns the timestamp entries in trial order.
func (s *ParsedSchema) Timestamps() []*TimestampEntry {
	out := make([]*TimestampEntry, 0, s.timestamps)
	for _, e := range s.entries {
		if ts, ok := e.(*TimestampEntry); ok {
			out = append(out, ts)
		}
	}
	return out
}

// Variables returns the variable entries in document order.
func (s *ParsedSchema) Variables() []*VariableEntry {
	out := make([]*VariableEntry, 0, len(s.entries)-s.timestamps)
	for _, e := range s.entries {
		if v, ok := e.(*VariableEntry); ok {
			out = append(out, v)
		}
	}
	return out
}

// Variable looks up a variable entry by name.
func (s *ParsedSchema) Variable(name string) (*VariableEntry, bool) {
	for _, v := range s.entries[s.timestamps:] {
		if v, ok := v.(*VariableEntry); ok && v.name == name {
			return v, true
		}
	}
	return nil, false
}

// Delimiters returns the delimiter set.
func (s *ParsedSchema) Delimiters() DelimiterSet {
	return s.delimiters
}

// HasDelimiter reports whether r is a delimiter. Non-ASCII runes are never delimiters.
func (s *ParsedSchema) HasDelimiter(r rune) bool {
	return s.delimiters.Contains(r)
}
