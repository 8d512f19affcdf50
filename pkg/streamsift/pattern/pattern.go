// Package pattern defines the user-supplied pattern configuration for
// stream-name classification. A configuration combines an include filter,
// an exclude filter, and up to five named extraction patterns whose named
// capture groups (?P<name>...) pull semantic fields (teams, date, time,
// league) out of raw stream names.
package pattern

// Recognized extraction field names. A capture group whose name is not in
// this set is ignored during extraction.
const (
	FieldTeam1  = "team1"
	FieldTeam2  = "team2"
	FieldDate   = "date"
	FieldTime   = "time"
	FieldLeague = "league"
)

// FieldNames lists the recognized extraction fields in display order.
var FieldNames = []string{FieldTeam1, FieldTeam2, FieldDate, FieldTime, FieldLeague}

// FieldPattern is one configurable extraction pattern.
// The pattern string may be empty only while Enabled is false.
type FieldPattern struct {
	// Pattern is the regular expression source. Named capture groups
	// (?P<team1>...) etc. mark the spans to extract.
	Pattern string `yaml:"pattern"`

	// Enabled controls whether the pattern participates in extraction.
	Enabled bool `yaml:"enabled"`
}

// Config describes the active classification rules for one batch.
// It is a plain value object: construct it, hand it to the engine, and do
// not mutate it while a batch is running.
//
// Example YAML file:
//
//	version: 1
//	include: 'NBA'
//	exclude: '\(ES\)'
//	skip_builtin_filter: false
//	fields:
//	  team1:
//	    pattern: '^(?P<team1>[A-Z][\w .]+?) (?:vs|at|@) '
//	    enabled: true
//	  team2:
//	    pattern: ' (?:vs|at|@) (?P<team2>[A-Z][\w .]+?)(?: \||$)'
//	    enabled: true
type Config struct {
	// Include, when non-nil, is a containment regex a stream name must
	// match to be classified as matched. Nil means no include filtering.
	Include *string `yaml:"include,omitempty"`

	// Exclude, when non-nil, is a containment regex that removes any
	// matching stream name. Nil means no exclude filtering.
	Exclude *string `yaml:"exclude,omitempty"`

	// Fields maps recognized field names (see FieldNames) to their
	// extraction patterns. Absent keys are treated as disabled.
	Fields map[string]FieldPattern `yaml:"fields,omitempty"`

	// SkipBuiltinFilter disables the fixed built-in rule set (placeholder
	// and unsupported-sport detection) for this batch.
	SkipBuiltinFilter bool `yaml:"skip_builtin_filter"`
}

// Field returns the configured pattern for a recognized field name.
// The zero FieldPattern (disabled) is returned for absent keys.
func (c *Config) Field(name string) FieldPattern {
	if c.Fields == nil {
		return FieldPattern{}
	}
	return c.Fields[name]
}

// IncludeEnabled reports whether an include pattern is configured.
func (c *Config) IncludeEnabled() bool {
	return c.Include != nil
}

// ExcludeEnabled reports whether an exclude pattern is configured.
func (c *Config) ExcludeEnabled() bool {
	return c.Exclude != nil
}
