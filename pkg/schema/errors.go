package schema

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the Parse functions matches exactly one of these
// with errors.Is.
var (
	// ErrIO indicates the schema file could not be opened or read.
	ErrIO = errors.New("schema i/o failure")

	// ErrDocumentParsing indicates the source is not a well-formed YAML mapping.
	ErrDocumentParsing = errors.New("schema document parsing error")

	// ErrMissingSchemaKey indicates a required top-level section is absent.
	ErrMissingSchemaKey = errors.New("missing schema key")

	// ErrInvalidSchema indicates a section is present but has the wrong shape.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrNonASCIICharacter indicates a delimiter outside the ASCII range.
	ErrNonASCIICharacter = errors.New("non-ascii delimiter character")

	// ErrPatternSyntax indicates a timestamp or variable pattern failed to parse.
	ErrPatternSyntax = errors.New("pattern syntax error")
)

// IOError wraps a failure to read the schema file. The path is never included.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read schema file: %v", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// DocumentError wraps a YAML-level failure.
type DocumentError struct {
	Line    int // 0 when unknown
	Message string
	Err     error // underlying yaml.v3 error, if any
}

func (e *DocumentError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("failed to parse schema document: line %d: %s", e.Line, msg)
	}
	return fmt.Sprintf("failed to parse schema document: %s", msg)
}

func (e *DocumentError) Unwrap() error { return e.Err }

func (e *DocumentError) Is(target error) bool { return target == ErrDocumentParsing }

// MissingKeyError reports which required section is absent.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing schema key %q", e.Key)
}

func (e *MissingKeyError) Is(target error) bool { return target == ErrMissingSchemaKey }

// InvalidSchemaError reports a shape mismatch inside a section.
type InvalidSchemaError struct {
	Section string
	Index   int    // element index for sequences, -1 otherwise
	Name    string // variable name, if known
	Line    int
	Column  int
	Message string
}

func (e *InvalidSchemaError) Error() string {
	loc := e.Section
	switch {
	case e.Name != "":
		loc = fmt.Sprintf("%s.%s", e.Section, e.Name)
	case e.Index >= 0:
		loc = fmt.Sprintf("%s[%d]", e.Section, e.Index)
	}
	if e.Line > 0 {
		return fmt.Sprintf("invalid schema: %s (line %d, column %d): %s", loc, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("invalid schema: %s: %s", loc, e.Message)
}

func (e *InvalidSchemaError) Is(target error) bool { return target == ErrInvalidSchema }

// NonASCIIError reports the first delimiter character outside the ASCII range.
type NonASCIIError struct {
	Char   rune
	Offset int // byte offset in the delimiter string
}

func (e *NonASCIIError) Error() string {
	return fmt.Sprintf("delimiter %q (U+%04X) at offset %d is not an ASCII character", e.Char, e.Char, e.Offset)
}

func (e *NonASCIIError) Is(target error) bool { return target == ErrNonASCIICharacter }

// PatternError reports a pattern the grammar parser rejected.
// Cause is the grammar parser's error, unchanged.
type PatternError struct {
	Section string
	Index   int    // timestamp index, -1 for variables
	Name    string // variable name, empty for timestamps
	Cause   error
}

func (e *PatternError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %q: %v", e.Section, e.Name, e.Cause)
	}
	return fmt.Sprintf("%s[%d]: %v", e.Section, e.Index, e.Cause)
}

func (e *PatternError) Unwrap() error { return e.Cause }

func (e *PatternError) Is(target error) bool { return target == ErrPatternSyntax }
