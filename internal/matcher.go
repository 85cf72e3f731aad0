package internal

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher - fast interface for line match.
type Matcher interface {
	Match(string) bool
	Desc() string // for logs
}

type regexMatcher struct{ re *regexp.Regexp }

func (m *regexMatcher) Match(s string) bool { return m.re.MatchString(s) }
func (m *regexMatcher) Desc() string        { return "re:" + m.re.String() }

type literalMatcher struct {
	query       string
	insensitive bool
}

func (m *literalMatcher) Match(s string) bool {
	if m.insensitive {
		return strings.Contains(strings.ToLower(s), m.query)
	}
	return strings.Contains(s, m.query)
}

func (m *literalMatcher) Desc() string {
	if m.insensitive {
		return "plain:i:" + m.query
	}
	return "plain:" + m.query
}

// NewMatcher builds the active strategy for one search call. Literal
// matchers lowercase the query once here; regex queries are compiled
// with (?i) prepended when ignoreCase is set, so ^ and $ keep their
// line-start/line-end meaning on the per-line input strings.
// An invalid regex is the only error this returns.
func NewMatcher(query string, ignoreCase, useRegex bool) (Matcher, error) {
	if !useRegex {
		if ignoreCase {
			return &literalMatcher{query: strings.ToLower(query), insensitive: true}, nil
		}
		return &literalMatcher{query: query}, nil
	}
	expr := query
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", query, err)
	}
	return &regexMatcher{re: re}, nil
}
