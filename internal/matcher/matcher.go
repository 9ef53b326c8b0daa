// Package matcher selects bird names with glob or regex patterns.
package matcher

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/agentstation/birdmap/pkg/birds"
)

// PatternType represents the type of pattern matching to use.
type PatternType int

const (
	// Glob uses shell-style glob patterns (*, ?, []).
	Glob PatternType = iota
	// Regex uses regular expressions.
	Regex
	// Auto detects the pattern type.
	Auto
)

// String returns a string representation of the PatternType.
func (pt PatternType) String() string {
	switch pt {
	case Glob:
		return "glob"
	case Regex:
		return "regex"
	case Auto:
		return "auto"
	default:
		return fmt.Sprintf("PatternType(%d)", int(pt))
	}
}

// Matcher tests bird names against one pattern. Names and the pattern are
// compared after birds.Key normalization and case folding.
type Matcher struct {
	pattern     string
	patternType PatternType
	glob        string
	re          *regexp.Regexp
}

// New compiles pattern. Auto treats the pattern as a regex when it holds
// regex-only syntax and as a glob otherwise.
func New(patternType PatternType, pattern string) (*Matcher, error) {
	if patternType == Auto {
		patternType = detectPatternType(pattern)
	}
	m := &Matcher{pattern: pattern, patternType: patternType}

	normalized := birds.Key(pattern)
	switch patternType {
	case Glob:
		m.glob = strings.ToLower(normalized)
		if _, err := path.Match(m.glob, ""); err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
	case Regex:
		if !strings.HasPrefix(normalized, "(?i)") {
			normalized = "(?i)" + normalized
		}
		re, err := regexp.Compile(normalized)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		m.re = re
	default:
		return nil, fmt.Errorf("unsupported pattern type: %v", patternType)
	}
	return m, nil
}

// Match reports whether name matches. Globs must match the whole name,
// regexes anywhere in it.
func (m *Matcher) Match(name string) bool {
	key := birds.Key(name)
	if m.re != nil {
		return m.re.MatchString(key)
	}
	ok, _ := path.Match(m.glob, strings.ToLower(key))
	return ok
}

// Filter returns the records whose name matches, in order.
func (m *Matcher) Filter(records birds.Records) birds.Records {
	out := birds.Records{}
	for _, r := range records {
		if m.Match(r.Name()) {
			out = append(out, r)
		}
	}
	return out
}

// Pattern returns the original pattern string.
func (m *Matcher) Pattern() string { return m.pattern }

// Type returns the resolved pattern type.
func (m *Matcher) Type() PatternType { return m.patternType }

func detectPatternType(pattern string) PatternType {
	regexIndicators := []string{
		"^", "$", "\\d", "\\w", "\\s", "\\D", "\\W", "\\S",
		"(?:", "(?i)", "{", "}", "+", "|", "(", ")",
	}
	for _, indicator := range regexIndicators {
		if strings.Contains(pattern, indicator) {
			return Regex
		}
	}
	return Glob
}
