package schema

import (
	"errors"
	"testing"
)

func TestNewDelimiterSet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		len   int
	}{
		{"empty", "", "", 0},
		{"single", ",", ",", 1},
		{"dedup", ",,,", ",", 1},
		{"sorted", ":, ", " ,:", 3},
		{"control chars", "\t\n\r", "\t\n\r", 3},
		{"bitmap boundary", "?@\x7f\x00", "\x00?@\x7f", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := NewDelimiterSet(tt.input)
			if err != nil {
				t.Fatalf("NewDelimiterSet(%q) error = %v", tt.input, err)
			}
			if got := string(set.Bytes()); got != tt.want {
				t.Errorf("Bytes() = %q, want %q", got, tt.want)
			}
			if set.Len() != tt.len {
				t.Errorf("Len() = %d, want %d", set.Len(), tt.len)
			}
			for _, c := range tt.input {
				if !set.Contains(c) {
					t.Errorf("Contains(%q) = false, want true", c)
				}
			}
		})
	}
}

func TestNewDelimiterSet_NonASCII(t *testing.T) {
	_, err := NewDelimiterSet("ab\u00a0c")
	var asciiErr *NonASCIIError
	if !errors.As(err, &asciiErr) {
		t.Fatalf("error = %v, want *NonASCIIError", err)
	}
	if asciiErr.Char != '\u00a0' || asciiErr.Offset != 2 {
		t.Errorf("got char %q offset %d, want U+00A0 at 2", asciiErr.Char, asciiErr.Offset)
	}
	if !errors.Is(err, ErrNonASCIICharacter) {
		t.Error("error should match ErrNonASCIICharacter")
	}
}

func TestNewDelimiterSet_InvalidUTF8(t *testing.T) {
	_, err := NewDelimiterSet("a\xff")
	if !errors.Is(err, ErrNonASCIICharacter) {
		t.Errorf("error = %v, want ErrNonASCIICharacter", err)
	}
}

func TestDelimiterSet_Contains(t *testing.T) {
	set, err := NewDelimiterSet(": ,")
	if err != nil {
		t.Fatal(err)
	}

	for c := rune(0); c < 128; c++ {
		want := c == ':' || c == ' ' || c == ','
		if got := set.Contains(c); got != want {
			t.Errorf("Contains(%q) = %v, want %v", c, got, want)
		}
	}
	for _, c := range []rune{128, 'é', '→', 0x10FFFF, -1} {
		if set.Contains(c) {
			t.Errorf("Contains(%q) = true for non-ASCII rune", c)
		}
	}
}

func TestDelimiterSet_String(t *testing.T) {
	set, err := NewDelimiterSet("\t:")
	if err != nil {
		t.Fatal(err)
	}
	if got := set.String(); got != `"\t:"` {
		t.Errorf("String() = %s, want %s", got, `"\t:"`)
	}

	var zero DelimiterSet
	if zero.Len() != 0 || zero.Contains(' ') {
		t.Error("zero DelimiterSet should be empty")
	}
}
