// Package regexast parses regular expressions into syntax trees without compiling them.
//
// The trees are handed out as an opaque [AST] so the schema layer never depends on the
// shape of the grammar engine behind it. The default engine is regexp/syntax with Perl
// flags, which accepts the RE2 dialect (\d, {n,m}, (?P<name>...), etc.).
//
// Patterns are not length-limited by default. Wrap a Parser with [LimitLength] to
// reject long patterns before they reach the grammar engine.
package regexast

import (
	"errors"
	"fmt"
	"regexp/syntax"
	"strings"
)

// ErrPatternTooLong is the error code reported by a parser wrapped with LimitLength.
const ErrPatternTooLong syntax.ErrorCode = "pattern too long"

// AST is a parsed regular expression. It cannot be modified through this interface.
type AST interface {
	// String returns the canonical form of the tree.
	String() string
	// CaptureNames returns the names of named capture groups in declaration order.
	CaptureNames() []string
	// Syntax returns a copy of the underlying regexp/syntax tree.
	// Changes to the copy do not affect the AST.
	Syntax() *syntax.Regexp
}

// Parser turns a pattern string into an AST.
type Parser interface {
	Parse(pattern string) (AST, error)
}

// SyntaxError reports a pattern the grammar parser rejected.
type SyntaxError struct {
	Pattern string
	Code    syntax.ErrorCode
	Expr    string // offending fragment
	Offset  int    // byte offset of Expr in Pattern, -1 if unknown or ambiguous
	Err     error  // underlying *syntax.Error, nil for length violations
}

func (e *SyntaxError) Error() string {
	switch {
	case e.Offset >= 0:
		return fmt.Sprintf("invalid pattern %q: %s at offset %d: `%s`", e.Pattern, e.Code, e.Offset, e.Expr)
	case e.Expr != "":
		return fmt.Sprintf("invalid pattern %q: %s: `%s`", e.Pattern, e.Code, e.Expr)
	default:
		return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Code)
	}
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// tree is the regexp/syntax backed AST. re is never handed out directly.
type tree struct {
	re *syntax.Regexp
}

func (t *tree) String() string { return t.re.String() }

func (t *tree) Syntax() *syntax.Regexp { return clone(t.re) }

func (t *tree) CaptureNames() []string {
	var names []string
	for _, n := range t.re.CapNames() {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// clone deep-copies re, including rune ranges and sub-expressions.
func clone(re *syntax.Regexp) *syntax.Regexp {
	if re == nil {
		return nil
	}
	cp := *re
	cp.Sub0 = [1]*syntax.Regexp{}
	cp.Rune0 = [2]rune{}
	if re.Rune != nil {
		cp.Rune = append([]rune(nil), re.Rune...)
	}
	if re.Sub != nil {
		cp.Sub = make([]*syntax.Regexp, len(re.Sub))
		for i, sub := range re.Sub {
			cp.Sub[i] = clone(sub)
		}
	}
	return &cp
}

// SyntaxParser is the default Parser.
// The zero value parses with syntax.Perl flags.
type SyntaxParser struct {
	Flags syntax.Flags
}

// NewParser returns a SyntaxParser using Perl flags.
func NewParser() *SyntaxParser {
	return &SyntaxParser{Flags: syntax.Perl}
}

// Parse implements Parser.
func (p *SyntaxParser) Parse(pattern string) (AST, error) {
	flags := p.Flags
	if flags == 0 {
		flags = syntax.Perl
	}

	re, err := syntax.Parse(pattern, flags)
	if err != nil {
		var synErr *syntax.Error
		if errors.As(err, &synErr) {
			return nil, &SyntaxError{
				Pattern: pattern,
				Code:    synErr.Code,
				Expr:    synErr.Expr,
				Offset:  fragmentOffset(pattern, synErr.Expr),
				Err:     synErr,
			}
		}
		return nil, &SyntaxError{Pattern: pattern, Code: syntax.ErrInternalError, Offset: -1, Err: err}
	}
	return &tree{re: re}, nil
}

// fragmentOffset locates expr in pattern. regexp/syntax reports only the text of
// the failing fragment, so an offset is given only when that text occurs once.
func fragmentOffset(pattern, expr string) int {
	if expr == "" || strings.Count(pattern, expr) != 1 {
		return -1
	}
	return strings.Index(pattern, expr)
}

// Parse parses pattern with a fresh default parser.
func Parse(pattern string) (AST, error) {
	return NewParser().Parse(pattern)
}

// lengthLimited rejects patterns longer than limit before delegating.
type lengthLimited struct {
	next  Parser
	limit int
}

// LimitLength wraps p so patterns longer than limit bytes fail with a *SyntaxError
// carrying ErrPatternTooLong. A limit of zero or less returns p unchanged.
func LimitLength(p Parser, limit int) Parser {
	if limit <= 0 {
		return p
	}
	return &lengthLimited{next: p, limit: limit}
}

func (l *lengthLimited) Parse(pattern string) (AST, error) {
	if len(pattern) > l.limit {
		return nil, &SyntaxError{
			Pattern: pattern,
			Code:    ErrPatternTooLong,
			Expr:    fmt.Sprintf("%d bytes (max %d)", len(pattern), l.limit),
			Offset:  -1,
		}
	}
	return l.next.Parse(pattern)
}
