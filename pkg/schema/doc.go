// Package schema loads and validates log pattern schemas.
//
// A schema tells a log parser how to recognize timestamps, named variables and
// field delimiters in raw log lines. It is written in YAML with three required
// top-level keys:
//
//	timestamp:
//	  - '\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}'
//	  - '\d{2}/\d{2}/\d{4}'
//	variables:
//	  ip: '\d+\.\d+\.\d+\.\d+'
//	  int: '\-?\d+'
//	delimiters: " \t\r\n:,!;%"
//
// Every pattern is parsed into a syntax tree (see [regexast]) while the schema is
// built, so a *ParsedSchema never holds a pattern that does not parse. Timestamp
// patterns keep their document order, which is the order a matcher should try them.
// Delimiters must be ASCII. Plain scalars that YAML would read as dates, such as
// 2024-01-01, are taken as pattern strings.
//
// Pattern length is not limited by default, since nothing here compiles or runs the
// patterns. Callers that do can pass [WithMaxPatternLength] to reject long ones.
//
// # Errors
//
// Parsing stops at the first problem. Each error matches one of the kinds
// [ErrIO], [ErrDocumentParsing], [ErrMissingSchemaKey], [ErrInvalidSchema],
// [ErrNonASCIICharacter] or [ErrPatternSyntax] with errors.Is, and the typed error
// can be recovered with errors.As for details:
//
//	s, err := schema.ParseFile("schema.yaml")
//	var missing *schema.MissingKeyError
//	if errors.As(err, &missing) {
//	    fmt.Printf("add a %q section\n", missing.Key)
//	}
package schema
