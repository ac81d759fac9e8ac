package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vrclog/logschema/pkg/schema"
)

func mustParse(t *testing.T, src string) *schema.ParsedSchema {
	t.Helper()
	s, err := schema.ParseString(src)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	return s
}

func TestOutputJSON(t *testing.T) {
	s := mustParse(t, `timestamp:
  - '\d{4}'
variables:
  user: '(?P<name>\w+)'
delimiters: "\t:"
`)

	var buf bytes.Buffer
	if err := OutputJSON(s, &buf); err != nil {
		t.Fatalf("OutputJSON() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	var ts entryRecord
	if err := json.Unmarshal([]byte(lines[0]), &ts); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if ts.Kind != "timestamp" || ts.Index == nil || *ts.Index != 0 || ts.Pattern != `\d{4}` {
		t.Errorf("timestamp record = %+v", ts)
	}

	var v entryRecord
	if err := json.Unmarshal([]byte(lines[1]), &v); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if v.Kind != "variable" || v.Name != "user" || len(v.Captures) != 1 || v.Captures[0] != "name" {
		t.Errorf("variable record = %+v", v)
	}

	var d entryRecord
	if err := json.Unmarshal([]byte(lines[2]), &d); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if d.Kind != "delimiters" || d.Chars == nil || *d.Chars != "\t:" {
		t.Errorf("delimiters record = %+v", d)
	}
}

func TestOutputJSON_EmptyDelimiters(t *testing.T) {
	s := mustParse(t, "timestamp: []\nvariables: {}\ndelimiters: ''\n")

	var buf bytes.Buffer
	if err := OutputJSON(s, &buf); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"kind":"delimiters","chars":""}` {
		t.Errorf("output = %s", got)
	}
}

func TestOutputPretty(t *testing.T) {
	s := mustParse(t, `timestamp:
  - '\d{2} \d{2}'
variables:
  ip: '\d+'
delimiters: ": ,"
`)

	var buf bytes.Buffer
	if err := OutputPretty(s, &buf); err != nil {
		t.Fatalf("OutputPretty() error = %v", err)
	}

	want := "timestamp[0] \"\\\\d{2} \\\\d{2}\"\n" +
		"variable     ip = \\d+\n" +
		"delimiters   \" ,:\"\n"
	if buf.String() != want {
		t.Errorf("OutputPretty() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestOutputSchema_UnknownFormat(t *testing.T) {
	s := mustParse(t, "timestamp: []\nvariables: {}\ndelimiters: ''\n")
	err := OutputSchema("xml", s, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("OutputSchema() error = %v", err)
	}
}

func TestQuoteIfNeeded(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{`\d+`, `\d+`},
		{"a b", `"a b"`},
		{`say "hi"`, `"say \"hi\""`},
		{"\t\n", `"\t\n"`},
		{"\x01", `"\x01"`},
		{`\d \w`, `"\\d \\w"`},
	}
	for _, tt := range tests {
		if got := quoteIfNeeded(tt.in); got != tt.want {
			t.Errorf("quoteIfNeeded(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
