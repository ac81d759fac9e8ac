package schema

import (
	"math/bits"
	"strconv"
	"unicode/utf8"
)

// DelimiterSet is a set of ASCII characters. The zero value is empty.
type DelimiterSet struct {
	lo, hi uint64 // bit c set for c < 64 in lo, c-64 in hi
}

// NewDelimiterSet builds a set from s. The first non-ASCII rune fails the
// whole call with a *NonASCIIError; duplicates are ignored.
func NewDelimiterSet(s string) (DelimiterSet, error) {
	var set DelimiterSet
	for i, r := range s {
		if r >= utf8.RuneSelf {
			return DelimiterSet{}, &NonASCIIError{Char: r, Offset: i}
		}
		set.add(byte(r))
	}
	return set, nil
}

func (d *DelimiterSet) add(c byte) {
	if c < 64 {
		d.lo |= 1 << c
	} else {
		d.hi |= 1 << (c - 64)
	}
}

// Contains reports whether r is in the set. It is false for any non-ASCII rune.
func (d DelimiterSet) Contains(r rune) bool {
	if r < 0 || r >= utf8.RuneSelf {
		return false
	}
	c := byte(r)
	if c < 64 {
		return d.lo&(1<<c) != 0
	}
	return d.hi&(1<<(c-64)) != 0
}

// Len returns the number of distinct delimiters.
func (d DelimiterSet) Len() int {
	return bits.OnesCount64(d.lo) + bits.OnesCount64(d.hi)
}

// Bytes returns the delimiters in ascending order.
func (d DelimiterSet) Bytes() []byte {
	out := make([]byte, 0, d.Len())
	for c := 0; c < utf8.RuneSelf; c++ {
		if d.Contains(rune(c)) {
			out = append(out, byte(c))
		}
	}
	return out
}

// String returns the delimiters in ascending order as a Go-quoted string.
func (d DelimiterSet) String() string {
	return strconv.Quote(string(d.Bytes()))
}
