// Package streamsift classifies raw stream names against user-supplied
// regular expression filters and extraction patterns.
//
// This package allows you to:
//   - Validate user-supplied regexes without crashing the host process
//   - Extract semantic fields (teams, date, time, league) via named
//     capture groups
//   - Compose overlapping match ranges into a non-overlapping, labeled
//     segmentation suitable for per-field highlighting
//   - Combine include/exclude/built-in filter outcomes into one verdict
//     with a fixed precedence
//
// # Basic Usage
//
// To classify a batch of stream names:
//
//	team1 := `^(?P<team1>[\w .]+?) (?:vs|at) `
//	cfg := pattern.Config{
//	    Exclude: streamsift.Ptr(`\(ES\)`),
//	    Fields: map[string]pattern.FieldPattern{
//	        pattern.FieldTeam1: {Pattern: team1, Enabled: true},
//	    },
//	}
//
//	engine, err := streamsift.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := engine.ClassifyAll(ctx, names)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    fmt.Println(r.Verdict, r.Name)
//	}
//
// Each Classification carries the labeled segments for rendering and the
// individual filter states for display, alongside the final verdict.
//
// # Pattern Configuration
//
// Configurations can be built in code or loaded from YAML files via the
// [pattern] subpackage. Invalid patterns are reported through
// Engine.Validation and treated as disabled; they never fail a batch.
//
// # Built-in Filter
//
// A fixed rule set flags placeholder names and unsupported categories.
// Replace it with WithRuleSource, or skip it per configuration with
// SkipBuiltinFilter.
//
// # Watching a Stream List
//
// Watcher follows a growing stream-list file and classifies new lines as
// they are appended:
//
//	w := streamsift.NewWatcher(engine, "streams.txt")
//	results, errs, err := w.Watch(ctx)
package streamsift

// Ptr returns a pointer to v. Convenience for the optional include and
// exclude pattern fields.
func Ptr(v string) *string {
	return &v
}
