package regexast

import (
	"errors"
	"testing"
)

// FuzzParse checks that Parse never panics and always returns exactly one of
// a tree or a *SyntaxError.
func FuzzParse(f *testing.F) {
	f.Add(`\d{4}-\d{2}-\d{2}`)
	f.Add(`(?P<ip>\d+\.\d+\.\d+\.\d+)`)
	f.Add(`(`)
	f.Add(`[z-a]`)
	f.Add(`a{1001}`)
	f.Add("")
	f.Add(string([]byte{0xff, 0xfe}))

	f.Fuzz(func(t *testing.T, pattern string) {
		ast, err := Parse(pattern)
		if (ast == nil) == (err == nil) {
			t.Fatalf("Parse(%q) inconsistent: ast=%v err=%v", pattern, ast != nil, err)
		}
		if err != nil {
			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("Parse(%q) error %T, want *SyntaxError", pattern, err)
			}
			if synErr.Pattern != pattern {
				t.Errorf("SyntaxError.Pattern = %q, want %q", synErr.Pattern, pattern)
			}
			return
		}
		_ = ast.String()
		_ = ast.CaptureNames()
	})
}
