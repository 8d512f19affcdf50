// Package rules holds the fixed built-in filter rule set: keyword and
// pattern tables flagging stream names that are not real events
// (placeholders) or belong to categories the downstream pipeline does not
// handle (unsupported sports). The tables are domain data, not logic;
// callers treat a Set as an opaque predicate.
package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category classifies why a rule flags a stream name.
type Category string

const (
	// CategoryPlaceholder flags template placeholders and offline/no-event
	// markers that providers leave in stream listings.
	CategoryPlaceholder Category = "placeholder"

	// CategoryUnsupportedSport flags events in categories the pipeline
	// has no schedule data for.
	CategoryUnsupportedSport Category = "unsupported_sport"
)

// Rule is one detection rule: a category plus the keywords and regex
// patterns that trigger it. Keywords match case-insensitively as
// substrings; patterns match as compiled regular expressions.
type Rule struct {
	Category Category
	Keywords []string
	Patterns []*regexp.Regexp
}

// Set is an immutable collection of rules, queried per stream name.
// A Set is safe for concurrent use once constructed.
type Set struct {
	rules []Rule
}

// Match returns the category of the first rule flagging name, or false if
// no rule applies. Rules are checked in definition order.
func (s *Set) Match(name string) (Category, bool) {
	lower := strings.ToLower(name)
	trimmed := strings.TrimSpace(lower)
	for _, r := range s.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				return r.Category, true
			}
		}
		for _, re := range r.Patterns {
			if re.MatchString(trimmed) {
				return r.Category, true
			}
		}
	}
	return "", false
}

// Filtered reports whether any rule flags name.
func (s *Set) Filtered(name string) bool {
	_, ok := s.Match(name)
	return ok
}

// Placeholder name shapes: separator-only lines, bracketed template
// slots, and bare dashes providers use for empty channel positions.
var placeholderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[#*=\-_.\s]*$`),
	regexp.MustCompile(`^\{[^}]*\}$`),
	regexp.MustCompile(`^<[^>]*>$`),
	regexp.MustCompile(`^(?:tbd|tba|n/a)\b`),
}

// placeholderKeywords are substrings (lowercase) marking non-event names.
var placeholderKeywords = []string{
	"placeholder",
	"no event",
	"no stream",
	"coming soon",
	"channel offline",
	"stream offline",
	"off air",
	"to be announced",
}

// unsupportedKeywords are substrings (lowercase) for categories without
// schedule support. The list mirrors the keyword library shipped with the
// detection data set.
var unsupportedKeywords = []string{
	"esports",
	"e-sports",
	"virtual sport",
	"greyhound",
	"horse racing",
	"harness racing",
	"sumo",
	"kabaddi",
}

// defaultSet is built once at init; Sets are read-only afterwards.
var defaultSet = &Set{rules: []Rule{
	{Category: CategoryPlaceholder, Keywords: placeholderKeywords, Patterns: placeholderPatterns},
	{Category: CategoryUnsupportedSport, Keywords: unsupportedKeywords},
}}

// Default returns the built-in rule set.
func Default() *Set {
	return defaultSet
}

// file is the YAML representation of a custom rule set.
type file struct {
	Version int `yaml:"version"`
	Rules   []struct {
		Category string   `yaml:"category"`
		Keywords []string `yaml:"keywords,omitempty"`
		Patterns []string `yaml:"patterns,omitempty"`
	} `yaml:"rules"`
}

// LoadBytes parses a custom rule set from YAML. Keywords are lowered at
// load time; patterns are compiled eagerly so a bad rule file fails fast
// instead of silently never matching.
//
// Example:
//
//	version: 1
//	rules:
//	  - category: placeholder
//	    keywords: ["intermission"]
//	    patterns: ['^test(?:ing)? channel']
func LoadBytes(data []byte) (*Set, error) {
	if len(data) == 0 {
		return nil, errors.New("rule file is empty")
	}

	var rf file
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if rf.Version != 1 {
		return nil, fmt.Errorf("unsupported rule file version %d (only version 1 is supported)", rf.Version)
	}
	if len(rf.Rules) == 0 {
		return nil, errors.New("rule file defines no rules")
	}

	set := &Set{rules: make([]Rule, 0, len(rf.Rules))}
	for i, r := range rf.Rules {
		if r.Category == "" {
			return nil, fmt.Errorf("rule[%d]: category is required", i)
		}
		rule := Rule{Category: Category(r.Category)}
		for _, kw := range r.Keywords {
			if kw == "" {
				return nil, fmt.Errorf("rule[%d]: empty keyword", i)
			}
			rule.Keywords = append(rule.Keywords, strings.ToLower(kw))
		}
		for _, p := range r.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("rule[%d]: invalid pattern %q: %w", i, p, err)
			}
			rule.Patterns = append(rule.Patterns, re)
		}
		set.rules = append(set.rules, rule)
	}
	return set, nil
}
