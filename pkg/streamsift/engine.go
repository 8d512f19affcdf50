package streamsift

import (
	"context"
	"log/slog"
	"regexp"
	"sync"

	"github.com/streamsift/streamsift-go/pkg/streamsift/pattern"
)

// Validation keys for the include/exclude patterns in Engine.Validation.
// Extraction fields are keyed by their field name.
const (
	ValidationInclude = "include"
	ValidationExclude = "exclude"
)

// compiledField is one enabled, valid extraction pattern ready to run.
type compiledField struct {
	field string
	re    *regexp.Regexp
}

// Engine classifies stream names against one immutable pattern
// configuration. All enabled patterns are validated and compiled exactly
// once at construction; per-name classification holds no shared mutable
// state, so an Engine is safe for concurrent use by multiple goroutines.
type Engine struct {
	include    *regexp.Regexp // nil when disabled or invalid
	exclude    *regexp.Regexp
	fields     []compiledField
	validation map[string]pattern.ValidationResult
	rules      RuleSource
	skipRules  bool
	workers    int
	maxName    int
	log        *slog.Logger
}

// recognizedGroup reports whether a capture group name is one of the
// extraction fields. Groups with other names are ignored.
func recognizedGroup(name string) bool {
	switch name {
	case pattern.FieldTeam1, pattern.FieldTeam2, pattern.FieldDate, pattern.FieldTime, pattern.FieldLeague:
		return true
	}
	return false
}

// New builds an Engine from a pattern configuration. Invalid enabled
// patterns are never fatal: they are recorded in Validation(), reported
// as soft warnings through the configured logger, and treated as
// disabled for the batch. The returned error covers only structural
// problems (unknown field names, enabled field without a pattern).
func New(cfg pattern.Config, opts ...Option) (*Engine, error) {
	if err := cfg.ValidateSchema(); err != nil {
		return nil, err
	}

	ec := applyOptions(opts)
	e := &Engine{
		validation: make(map[string]pattern.ValidationResult),
		rules:      ec.rules,
		skipRules:  cfg.SkipBuiltinFilter,
		workers:    ec.workers,
		maxName:    ec.maxNameLength,
		log:        ec.logger,
	}

	e.include = e.compileFilter(ValidationInclude, cfg.Include)
	e.exclude = e.compileFilter(ValidationExclude, cfg.Exclude)

	for _, name := range pattern.FieldNames {
		fp := cfg.Field(name)
		if !fp.Enabled {
			continue
		}
		res := pattern.Validate(fp.Pattern)
		e.validation[name] = res
		if !res.Valid {
			e.log.Warn("extraction pattern disabled", "field", name, "error", res.Error)
			continue
		}
		e.fields = append(e.fields, compiledField{
			field: name,
			re:    regexp.MustCompile(fp.Pattern), // validated above
		})
	}

	return e, nil
}

// compileFilter validates and compiles an optional include/exclude
// pattern, recording the result under key. Returns nil when the pattern
// is absent or invalid.
func (e *Engine) compileFilter(key string, src *string) *regexp.Regexp {
	if src == nil {
		return nil
	}
	res := pattern.Validate(*src)
	e.validation[key] = res
	if !res.Valid {
		e.log.Warn("filter pattern disabled", "pattern", key, "error", res.Error)
		return nil
	}
	return regexp.MustCompile(*src)
}

// Validation returns the per-pattern validation results computed at
// construction, keyed by ValidationInclude, ValidationExclude, and the
// extraction field names. Only configured patterns appear. The map is
// shared and must not be mutated.
func (e *Engine) Validation() map[string]pattern.ValidationResult {
	return e.validation
}

// Extract runs every enabled, valid extraction pattern against name and
// returns one MatchRange per recognized named capture group that
// participated in the pattern's first match. Ranges from different
// fields may overlap or nest; Compose resolves that.
func (e *Engine) Extract(name string) []MatchRange {
	if e.maxName > 0 && len(name) > e.maxName {
		e.log.Warn("stream name exceeds length cap, skipping extraction",
			"length", len(name), "max", e.maxName)
		return nil
	}

	var ranges []MatchRange
	for _, cf := range e.fields {
		// First match only; extraction is not repeated for later
		// occurrences within the same name.
		idx := cf.re.FindStringSubmatchIndex(name)
		if idx == nil {
			continue
		}
		names := cf.re.SubexpNames()
		for i := 1; i < len(names); i++ {
			if !recognizedGroup(names[i]) {
				continue
			}
			lo, hi := idx[2*i], idx[2*i+1]
			if lo < 0 {
				continue // optional group did not participate
			}
			ranges = append(ranges, MatchRange{Start: lo, End: hi, Group: names[i]})
		}
	}
	return ranges
}

// Classify computes the full classification for one stream name:
// extraction ranges composed into segments, the include/exclude/built-in
// filter states, and the final verdict with the fixed precedence
// exclude > built-in > include-miss > matched. Segments are computed
// regardless of verdict so excluded rows can still render highlighted.
func (e *Engine) Classify(name string) Classification {
	c := Classification{
		Name:     name,
		Segments: Compose(name, e.Extract(name)),
	}

	if e.include != nil {
		m := e.include.MatchString(name)
		c.IncludeMatch = &m
	}
	if e.exclude != nil {
		c.ExcludeMatch = e.exclude.MatchString(name)
	}
	if !e.skipRules && e.rules != nil {
		c.BuiltinFiltered = e.rules.Filtered(name)
	}

	switch {
	case c.ExcludeMatch:
		c.Verdict = VerdictExcludedByPattern
	case c.BuiltinFiltered:
		c.Verdict = VerdictExcludedByBuiltin
	case c.IncludeMatch != nil && !*c.IncludeMatch:
		c.Verdict = VerdictFilteredByInclude
	default:
		c.Verdict = VerdictMatched
	}
	return c
}

// ClassifyAll classifies a batch of stream names, returning one result
// per input in input order. With WithWorkers(n>1) the batch is spread
// over a stateless worker pool; results land at their input index, so
// ordering is preserved without coordination.
//
// On context cancellation the partially filled results are returned
// together with the context error; entries not yet classified are zero
// values. Callers should normally discard partial results.
func (e *Engine) ClassifyAll(ctx context.Context, names []string) ([]Classification, error) {
	results := make([]Classification, len(names))

	if e.workers <= 1 {
		for i, name := range names {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			results[i] = e.Classify(name)
		}
		return results, nil
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = e.Classify(names[i])
			}
		}()
	}

	var err error
feed:
	for i := range names {
		select {
		case indexes <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	return results, err
}
