// Package splitkit splits a string into the tokens between the matches of a delimiter pattern,
// exposed as an iterview.View.
//
// Tokens are produced lazily, one delimiter lookup at a time.
// A subject without any delimiter yields itself as the only token,
// and delimiters at the edges of the subject yield empty tokens:
//
//	splitkit.Strings("::a::", "::") // []string{"", "a", ""}
package splitkit

import (
	"iter"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"go.llib.dev/iterview"
)

type Option interface {
	Configure(*Config)
}

type OptionFunc func(*Config)

func (fn OptionFunc) Configure(c *Config) { fn(c) }

type Config struct {
	// Engine compiles the pattern.
	//
	// default: Regexp2
	Engine Engine
	// Flags are the regexp2 match options.
	// A zero Flags keeps the current options when the Config is used as an Option,
	// use WithFlags(regexp2.None) to select the native syntax.
	//
	// default: regexp2.ECMAScript
	Flags regexp2.RegexOptions
	// MatchTimeout bounds a single delimiter lookup when the engine supports it.
	MatchTimeout time.Duration
	// Limit caps the number of tokens, the last token holds the unsplit remainder.
	// Zero or a negative value means no limit.
	Limit int

	flagsSet bool
}

func (c *Config) Init() {
	c.Engine = Regexp2{}
	c.Flags = regexp2.ECMAScript
}

// Configure applies the non-zero fields of c to t.
func (c Config) Configure(t *Config) {
	if c.Engine != nil {
		t.Engine = c.Engine
	}
	if c.flagsSet || c.Flags != 0 {
		t.Flags = c.Flags
		t.flagsSet = true
	}
	if c.MatchTimeout != 0 {
		t.MatchTimeout = c.MatchTimeout
	}
	if c.Limit != 0 {
		t.Limit = c.Limit
	}
}

func toConfig(opts []Option) Config {
	var c Config
	c.Init()
	for _, opt := range opts {
		opt.Configure(&c)
	}
	return c
}

// WithFlags replaces the default regexp2.ECMAScript match options.
// Passing regexp2.None selects the engine's native .NET style syntax.
func WithFlags(flags regexp2.RegexOptions) Option {
	return OptionFunc(func(c *Config) {
		c.Flags = flags
		c.flagsSet = true
	})
}

func WithEngine(e Engine) Option {
	return OptionFunc(func(c *Config) { c.Engine = e })
}

func WithMatchTimeout(d time.Duration) Option {
	return OptionFunc(func(c *Config) { c.MatchTimeout = d })
}

// WithLimit caps the number of tokens to n, similarly to strings.SplitN.
func WithLimit(n int) Option {
	return OptionFunc(func(c *Config) { c.Limit = n })
}

// Split is a view over the tokens of a subject.
// It owns a copy of the subject, and its compiled pattern is immutable,
// so a Split can be iterated any number of times.
type Split struct {
	subject  string
	pattern  string
	compiled Pattern
}

var _ iterview.View[string, *Cursor] = (*Split)(nil)

// New compiles the pattern and makes a Split for the subject.
// A malformed pattern is reported here, with the engine's error wrapped.
func New(subject, pattern string, opts ...Option) (*Split, error) {
	c := toConfig(opts)
	compiled, err := c.Engine.Compile(pattern, c)
	if err != nil {
		return nil, err
	}
	return &Split{
		subject:  strings.Clone(subject),
		pattern:  pattern,
		compiled: compiled,
	}, nil
}

// Strings collects every token of the subject.
func Strings(subject, pattern string, opts ...Option) ([]string, error) {
	s, err := New(subject, pattern, opts...)
	if err != nil {
		return nil, err
	}
	var tokens []string
	for token, err := range s.IterE() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

func (s *Split) Subject() string { return s.subject }
func (s *Split) Pattern() string { return s.pattern }

// Begin starts a new tokenization of the subject, and positions the cursor on the first token.
func (s *Split) Begin() *Cursor {
	c := &Cursor{tokens: s.compiled.Tokenize(s.subject)}
	c.Next()
	return c
}

func (s *Split) End() *Cursor {
	return &Cursor{done: true}
}

func (s *Split) Iter() iter.Seq[string] {
	return iterview.Iter[string, *Cursor](s)
}

// IterE is like Iter, but it also yields the engine's matching error, after which the iteration ends.
func (s *Split) IterE() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		c, end := s.Begin(), s.End()
		for ; c.NotEqual(end); c.Next() {
			if !yield(c.Value(), nil) {
				return
			}
		}
		if err := c.Err(); err != nil {
			yield("", err)
		}
	}
}

// Cursor is a position in a Split's token sequence.
type Cursor struct {
	tokens Tokenizer
	token  string
	done   bool
}

func (c *Cursor) Value() string { return c.token }

func (c *Cursor) Next() {
	if c.done {
		return
	}
	if c.tokens.Next() {
		c.token = c.tokens.Token()
		return
	}
	c.token = ""
	c.done = true
}

// NotEqual reports whether the cursor still has a token.
// All exhausted cursors are equal to each other.
func (c *Cursor) NotEqual(end *Cursor) bool {
	return c.done != end.done
}

// Err tells if the matching ended with an engine error, such as a match timeout.
func (c *Cursor) Err() error {
	if c.tokens == nil {
		return nil
	}
	return c.tokens.Err()
}
