package streamsift

import (
	"fmt"
	"os"

	"github.com/streamsift/streamsift-go/internal/rules"
)

// RuleSource is the built-in filter predicate: an opaque, read-only
// lookup flagging stream names that are known-bad independent of any
// user-supplied pattern (placeholders, unsupported categories). The
// engine queries it only when the configuration does not skip the
// built-in filter.
//
// Implementations must be safe for concurrent use.
type RuleSource interface {
	Filtered(name string) bool
}

// RuleSourceFunc adapts an ordinary function to a RuleSource.
type RuleSourceFunc func(name string) bool

// Filtered implements the RuleSource interface.
func (f RuleSourceFunc) Filtered(name string) bool {
	return f(name)
}

// DefaultRules returns the built-in rule set: placeholder detection and
// unsupported-sport detection backed by fixed keyword tables.
func DefaultRules() RuleSource {
	return rules.Default()
}

// LoadRules reads a custom rule set from a YAML file. The result can be
// injected with WithRuleSource to replace the default tables, e.g. when
// the keyword library ships updated detection data.
func LoadRules(path string) (RuleSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}
	set, err := rules.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	return set, nil
}
