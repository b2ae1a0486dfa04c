package splitkit

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
)

// Engine compiles a delimiter pattern into a Pattern.
type Engine interface {
	Compile(pattern string, c Config) (Pattern, error)
}

// Pattern is a compiled delimiter pattern, which is safe to reuse for multiple subjects.
type Pattern interface {
	Tokenize(subject string) Tokenizer
}

// Tokenizer produces the tokens of a single subject.
//
// Next advances to the next token and reports false once the end of the input is reached.
// Err tells if the underlying matching engine failed during the matching.
type Tokenizer interface {
	Next() bool
	Token() string
	Err() error
}

// matcher finds the first delimiter match at or after the given byte offset.
type matcher interface {
	find(offset int) (start, end int, found bool, err error)
}

// Regexp2 is the default Engine, backed by github.com/dlclark/regexp2.
// Config.Flags are passed to it as regexp2.RegexOptions.
type Regexp2 struct{}

func (Regexp2) Compile(pattern string, c Config) (Pattern, error) {
	// matching is driven from left to right by the tokenizer
	re, err := regexp2.Compile(pattern, c.Flags&^regexp2.RightToLeft)
	if err != nil {
		return nil, fmt.Errorf("splitkit: invalid pattern %q: %w", pattern, err)
	}
	if 0 < c.MatchTimeout {
		re.MatchTimeout = c.MatchTimeout
	}
	return regexp2Pattern{re: re, limit: c.Limit}, nil
}

type regexp2Pattern struct {
	re    *regexp2.Regexp
	limit int
}

func (p regexp2Pattern) Tokenize(subject string) Tokenizer {
	m := &regexp2Matcher{re: p.re, runes: []rune(subject)}
	m.offsets = make([]int, 0, len(m.runes)+1)
	for i := range subject {
		m.offsets = append(m.offsets, i)
	}
	m.offsets = append(m.offsets, len(subject))
	return newSplitter(subject, m, p.limit)
}

// regexp2Matcher translates between the rune indexes of regexp2 and byte offsets.
type regexp2Matcher struct {
	re      *regexp2.Regexp
	runes   []rune
	offsets []int // rune index -> byte offset
}

func (m *regexp2Matcher) find(offset int) (int, int, bool, error) {
	at := sort.SearchInts(m.offsets, offset)
	match, err := m.re.FindRunesMatchStartingAt(m.runes, at)
	if err != nil {
		return 0, 0, false, err
	}
	if match == nil {
		return 0, 0, false, nil
	}
	return m.offsets[match.Index], m.offsets[match.Index+match.Length], true, nil
}

// RE2 is an Engine backed by the regexp package of the standard library.
// Of the Config.Flags, only IgnoreCase, Multiline and Singleline have an effect.
type RE2 struct{}

func (RE2) Compile(pattern string, c Config) (Pattern, error) {
	re, err := regexp.Compile(re2Flags(c.Flags) + pattern)
	if err != nil {
		return nil, fmt.Errorf("splitkit: invalid pattern %q: %w", pattern, err)
	}
	return re2Pattern{re: re, limit: c.Limit}, nil
}

func re2Flags(flags regexp2.RegexOptions) string {
	var fs string
	if flags&regexp2.IgnoreCase != 0 {
		fs += "i"
	}
	if flags&regexp2.Multiline != 0 {
		fs += "m"
	}
	if flags&regexp2.Singleline != 0 {
		fs += "s"
	}
	if fs == "" {
		return ""
	}
	return "(?" + fs + ")"
}

type re2Pattern struct {
	re    *regexp.Regexp
	limit int
}

func (p re2Pattern) Tokenize(subject string) Tokenizer {
	return newSplitter(subject, &re2Matcher{re: p.re, subject: subject}, p.limit)
}

// re2Matcher resolves the match positions in a single pass on the first lookup,
// since regexp can't resume matching at an offset without losing the text before it,
// which anchors and word boundaries depend on.
type re2Matcher struct {
	re      *regexp.Regexp
	subject string
	matches [][]int
	loaded  bool
}

func (m *re2Matcher) find(offset int) (int, int, bool, error) {
	if !m.loaded {
		m.matches = m.re.FindAllStringIndex(m.subject, -1)
		m.loaded = true
	}
	i := sort.Search(len(m.matches), func(i int) bool {
		return offset <= m.matches[i][0]
	})
	if i == len(m.matches) {
		return 0, 0, false, nil
	}
	return m.matches[i][0], m.matches[i][1], true, nil
}

// Literal is an Engine that treats the pattern as a plain delimiter string.
type Literal struct{}

func (Literal) Compile(pattern string, c Config) (Pattern, error) {
	return literalPattern{sep: pattern, limit: c.Limit}, nil
}

type literalPattern struct {
	sep   string
	limit int
}

func (p literalPattern) Tokenize(subject string) Tokenizer {
	return newSplitter(subject, literalMatcher{subject: subject, sep: p.sep}, p.limit)
}

type literalMatcher struct {
	subject string
	sep     string
}

func (m literalMatcher) find(offset int) (int, int, bool, error) {
	i := strings.Index(m.subject[offset:], m.sep)
	if i < 0 {
		return 0, 0, false, nil
	}
	return offset + i, offset + i + len(m.sep), true, nil
}
