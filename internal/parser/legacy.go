package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"exrun/internal/domain"
)

var (
	// ErrNoTestsCall is returned when the source has no test.tests(...) call
	ErrNoTestsCall = errors.New("no tests(...) call found")
	// ErrUnbalanced is returned when the case array is not closed
	ErrUnbalanced = errors.New("unbalanced brackets in case list")
)

// testsCall matches the head of `test.tests('<location>',` and captures the location
var testsCall = regexp.MustCompile(`\btests\s*\(\s*(?:'([^']*)'|"([^"]*)")\s*,`)

// LegacyParser parses fixture files written as
//
//	var test = require('./test-fw.js');
//	test.tests('/path/to/factorial.js', [{inputs: [4], outputs: [24]}, ...]);
type LegacyParser struct{}

// NewLegacyParser creates a new LegacyParser
func NewLegacyParser() *LegacyParser {
	return &LegacyParser{}
}

// Parse extracts the target location and the case list from a legacy fixture
func (p *LegacyParser) Parse(source string, content []byte) (domain.Suite, error) {
	src := string(content)

	loc := testsCall.FindStringSubmatchIndex(src)
	if loc == nil {
		return domain.Suite{}, fmt.Errorf("%s: %w", source, ErrNoTestsCall)
	}
	var target string
	if loc[2] >= 0 {
		target = src[loc[2]:loc[3]]
	} else {
		target = src[loc[4]:loc[5]]
	}

	start := strings.IndexByte(src[loc[1]:], '[')
	if start < 0 {
		return domain.Suite{}, fmt.Errorf("%s: %w", source, ErrUnbalanced)
	}
	start += loc[1]

	end, err := matchBracket(src, start)
	if err != nil {
		return domain.Suite{}, fmt.Errorf("%s: %w", source, err)
	}

	var cases []domain.TestCase
	if err := yaml.Unmarshal([]byte(normalize(src[start:end+1])), &cases); err != nil {
		return domain.Suite{}, fmt.Errorf("%s: decode cases: %w", source, err)
	}

	return domain.Suite{
		Name:   domain.TargetStem(target),
		Target: target,
		Source: source,
		Cases:  cases,
	}, nil
}

// matchBracket returns the index of the bracket closing the one at start.
// Brackets inside quoted strings and comments are ignored.
func matchBracket(src string, start int) (int, error) {
	depth := 0
	var quote byte
	for i := start; i < len(src); i++ {
		c := src[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		if end, ok := skipComment(src, i); ok {
			i = end - 1
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, ErrUnbalanced
}

// normalize rewrites a JS array literal into YAML flow syntax. Strings
// become YAML double-quoted strings, comments and trailing commas are
// dropped and tabs outside strings become spaces.
func normalize(literal string) string {
	var b strings.Builder
	b.Grow(len(literal))
	for i := 0; i < len(literal); i++ {
		c := literal[i]
		if end, ok := skipComment(literal, i); ok {
			b.WriteByte(' ')
			i = end - 1
			continue
		}
		switch c {
		case '\'', '"':
			i = writeString(&b, literal, i)
			continue
		case '\t':
			c = ' '
		case ',':
			if next := nextSignificant(literal, i+1); next == ']' || next == '}' {
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// writeString copies the JS string starting at start as a YAML
// double-quoted string and returns the index of its closing quote.
func writeString(b *strings.Builder, s string, start int) int {
	quote := s[start]
	b.WriteByte('"')
	for i := start + 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			i++
			if s[i] == '\'' {
				// YAML has no \' escape
				b.WriteByte('\'')
			} else {
				b.WriteByte(c)
				b.WriteByte(s[i])
			}
		case c == quote:
			b.WriteByte('"')
			return i
		case c == '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return len(s) - 1
}

// skipComment reports whether a // or /* */ comment starts at i and
// returns the index just past it.
func skipComment(s string, i int) (int, bool) {
	if s[i] != '/' || i+1 >= len(s) {
		return 0, false
	}
	switch s[i+1] {
	case '/':
		if nl := strings.IndexByte(s[i:], '\n'); nl >= 0 {
			return i + nl, true
		}
		return len(s), true
	case '*':
		if end := strings.Index(s[i+2:], "*/"); end >= 0 {
			return i + 2 + end + 2, true
		}
		return len(s), true
	}
	return 0, false
}

// nextSignificant returns the next byte that is not whitespace or part of a comment
func nextSignificant(s string, from int) byte {
	for i := from; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		}
		if end, ok := skipComment(s, i); ok {
			i = end - 1
			continue
		}
		return s[i]
	}
	return 0
}
