package schema

import (
	"io"
	"log/slog"

	"github.com/vrclog/logschema/pkg/regexast"
)

// Option configures a Parse call using the functional options pattern.
type Option func(*parseConfig)

// parseConfig holds per-build settings. Each build gets its own.
type parseConfig struct {
	logger           *slog.Logger
	newParser        func() regexast.Parser
	maxPatternLength int // 0 = unlimited
}

func defaultParseConfig() *parseConfig {
	return &parseConfig{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		newParser: func() regexast.Parser { return regexast.NewParser() },
	}
}

func applyParseOptions(opts []Option) *parseConfig {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithLogger sets a logger for debug output during the build.
// Nil keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *parseConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithGrammarParser substitutes the regular expression grammar engine.
// newParser is called once per build; nil keeps the regexp/syntax default.
func WithGrammarParser(newParser func() regexast.Parser) Option {
	return func(c *parseConfig) {
		if newParser != nil {
			c.newParser = newParser
		}
	}
}

// WithMaxPatternLength rejects timestamp and variable patterns longer than n bytes
// with a *PatternError wrapping regexast.ErrPatternTooLong. Zero or less, the
// default, means no limit.
func WithMaxPatternLength(n int) Option {
	return func(c *parseConfig) {
		c.maxPatternLength = n
	}
}
