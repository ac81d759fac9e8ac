package schema_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/vrclog/logschema/pkg/schema"
)

// Example builds a schema from in-memory YAML and walks its entries.
func Example() {
	src := `timestamp:
  - '\d{4}-\d{2}-\d{2}'
variables:
  ip: '\d+\.\d+\.\d+\.\d+'
delimiters: ": ,"
`
	s, err := schema.ParseString(src)
	if err != nil {
		log.Fatal(err)
	}

	for _, e := range s.Entries() {
		switch e := e.(type) {
		case *schema.TimestampEntry:
			fmt.Printf("timestamp %s\n", e.Pattern())
		case *schema.VariableEntry:
			fmt.Printf("variable %s = %s\n", e.Name(), e.Pattern())
		}
	}
	fmt.Println("delimiters:", s.Delimiters())
	fmt.Println("has ':'", s.HasDelimiter(':'))
	fmt.Println("has '|'", s.HasDelimiter('|'))

	// Output:
	// timestamp \d{4}-\d{2}-\d{2}
	// variable ip = \d+\.\d+\.\d+\.\d+
	// delimiters: " ,:"
	// has ':' true
	// has '|' false
}

// Example_missingKey shows how to find out which section is absent.
func Example_missingKey() {
	_, err := schema.ParseString("timestamp: []\nvariables: {}\n")

	var missing *schema.MissingKeyError
	if errors.As(err, &missing) {
		fmt.Printf("add a %q section\n", missing.Key)
	}

	// Output:
	// add a "delimiters" section
}

// Example_invalidSchema shows the location carried by a shape error.
func Example_invalidSchema() {
	_, err := schema.ParseString("timestamp: []\nvariables:\n  ip: 123\ndelimiters: ''\n")
	fmt.Println(errors.Is(err, schema.ErrInvalidSchema))
	fmt.Println(err)

	// Output:
	// true
	// invalid schema: variables.ip (line 3, column 7): pattern must be a string
}
