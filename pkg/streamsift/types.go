package streamsift

// MatchRange is one extracted span within a single stream name, with
// half-open byte offsets into the source string. Ranges are valid only
// for the string they were extracted from.
type MatchRange struct {
	// Start and End are half-open byte offsets, 0 <= Start <= End <= len(name).
	Start int `json:"start"`
	End   int `json:"end"`

	// Group is the extraction field name that produced the range
	// (team1, team2, date, time, league).
	Group string `json:"group"`
}

// Segment is one contiguous slice of a stream name's text, tagged with
// the extraction fields covering it. Concatenating a classification's
// segment texts in order reconstructs the original name byte-for-byte.
type Segment struct {
	Text string `json:"text"`

	// Groups is an ordered, duplicate-free set of field names covering
	// this span. Empty (nil) for plain text. When multiple fields cover
	// the exact same span, all of them are listed; renderers that show a
	// single label should use Groups[0].
	Groups []string `json:"groups,omitempty"`
}

// Verdict is the final classification outcome for one stream name.
type Verdict string

const (
	// VerdictMatched passes all active filters.
	VerdictMatched Verdict = "matched"

	// VerdictExcludedByPattern matched the exclude pattern.
	VerdictExcludedByPattern Verdict = "excluded_by_pattern"

	// VerdictExcludedByBuiltin was flagged by the built-in rule set.
	VerdictExcludedByBuiltin Verdict = "excluded_by_builtin"

	// VerdictFilteredByInclude failed to match the enabled include pattern.
	VerdictFilteredByInclude Verdict = "filtered_by_include"
)

// Classification is the per-name result. All boolean fields are computed
// even when an earlier check already decided the verdict, so callers can
// display the full filter state for every row.
type Classification struct {
	// Name is the stream name the result was computed from.
	Name string `json:"name"`

	// Segments partition Name exactly; see Segment.
	Segments []Segment `json:"segments"`

	// IncludeMatch is nil when no include pattern is enabled ("not
	// applicable", distinct from false).
	IncludeMatch *bool `json:"include_match"`

	// ExcludeMatch reports whether the exclude pattern matched. Always a
	// concrete boolean; false when no exclude pattern is enabled.
	ExcludeMatch bool `json:"exclude_match"`

	// BuiltinFiltered reports whether the built-in rule set flagged the
	// name. False when the built-in filter is skipped.
	BuiltinFiltered bool `json:"builtin_filtered"`

	Verdict Verdict `json:"verdict"`
}

// Summary aggregates verdicts across a batch, for the counting/reporting
// collaborator (e.g., a groups-overview table with a filter breakdown).
type Summary struct {
	Total             int `json:"total"`
	Matched           int `json:"matched"`
	ExcludedByPattern int `json:"excluded_by_pattern"`
	ExcludedByBuiltin int `json:"excluded_by_builtin"`
	FilteredByInclude int `json:"filtered_by_include"`
}

// Summarize counts verdicts over a slice of classifications.
func Summarize(results []Classification) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Verdict {
		case VerdictMatched:
			s.Matched++
		case VerdictExcludedByPattern:
			s.ExcludedByPattern++
		case VerdictExcludedByBuiltin:
			s.ExcludedByBuiltin++
		case VerdictFilteredByInclude:
			s.FilteredByInclude++
		}
	}
	return s
}
