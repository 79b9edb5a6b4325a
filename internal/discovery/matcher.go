package discovery

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"flist/internal/domain"
)

// Matcher decides whether a relative path is selected by include and
// exclude glob patterns
type Matcher struct {
	includes      []string
	excludes      []string
	caseSensitive bool
}

// NewMatcher normalizes and validates the given patterns.
// An empty include list selects every file.
func NewMatcher(includes, excludes []string, caseSensitive bool) (*Matcher, error) {
	inc, err := normalizePatterns("includes", includes, caseSensitive)
	if err != nil {
		return nil, err
	}
	exc, err := normalizePatterns("excludes", excludes, caseSensitive)
	if err != nil {
		return nil, err
	}

	return &Matcher{
		includes:      inc,
		excludes:      exc,
		caseSensitive: caseSensitive,
	}, nil
}

// Match reports whether rel ("/"-separated, relative to the base directory)
// is included and not excluded
func (m *Matcher) Match(rel string) bool {
	if !m.caseSensitive {
		rel = strings.ToLower(rel)
	}

	if len(m.includes) > 0 && !matchAny(m.includes, rel) {
		return false
	}

	return !matchAny(m.excludes, rel)
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		// Patterns were validated in NewMatcher
		if doublestar.MatchUnvalidated(pattern, rel) {
			return true
		}
	}
	return false
}

func normalizePatterns(field string, patterns []string, caseSensitive bool) ([]string, error) {
	var normalized []string

	for _, raw := range patterns {
		pattern := NormalizePattern(raw)
		if pattern == "" {
			continue
		}
		if !caseSensitive {
			pattern = strings.ToLower(pattern)
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, &domain.ConfigurationError{
				Field: field,
				Err:   fmt.Errorf("malformed pattern %q", raw),
			}
		}
		normalized = append(normalized, pattern)
	}

	return normalized, nil
}

// NormalizePattern converts an Ant-style pattern to the form used for
// matching: "/" separators, no leading "./", and a trailing "/" meaning
// everything below that directory. Only "*", "**" and "?" are wildcards;
// brackets and braces match themselves.
func NormalizePattern(pattern string) string {
	pattern = strings.TrimSpace(pattern)
	pattern = strings.ReplaceAll(pattern, `\`, "/")
	pattern = escapeLiterals(pattern)
	for strings.HasPrefix(pattern, "./") {
		pattern = pattern[2:]
	}
	if strings.HasSuffix(pattern, "/") {
		pattern += "**"
	}
	return pattern
}

var literalEscaper = strings.NewReplacer(
	"[", `\[`,
	"]", `\]`,
	"{", `\{`,
	"}", `\}`,
)

// escapeLiterals backslash-escapes the characters doublestar would read as
// character classes or alternatives
func escapeLiterals(pattern string) string {
	return literalEscaper.Replace(pattern)
}
