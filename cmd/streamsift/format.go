package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/streamsift/streamsift-go/pkg/streamsift"
)

// ValidFormats lists all valid output formats.
var ValidFormats = map[string]bool{
	"jsonl":     true,
	"pretty":    true,
	"highlight": true,
}

// verdictGlyphs map verdicts to single-character markers for pretty output.
var verdictGlyphs = map[streamsift.Verdict]string{
	streamsift.VerdictMatched:           "+",
	streamsift.VerdictExcludedByPattern: "x",
	streamsift.VerdictExcludedByBuiltin: "b",
	streamsift.VerdictFilteredByInclude: "-",
}

// OutputClassification writes a result in the specified format to the writer.
func OutputClassification(format string, c streamsift.Classification, out io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(c, out)
	case "pretty":
		return OutputPretty(c, out)
	case "highlight":
		return OutputHighlight(c, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputJSON writes a result as JSON Lines format.
func OutputJSON(c streamsift.Classification, out io.Writer) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// OutputPretty writes a result as a single human-readable line:
// verdict glyph, name, and the extracted fields as key=value pairs.
func OutputPretty(c streamsift.Classification, out io.Writer) error {
	fields := extractedFields(c.Segments)
	if fields == "" {
		_, err := fmt.Fprintf(out, "[%s] %s\n", verdictGlyphs[c.Verdict], c.Name)
		return err
	}
	_, err := fmt.Fprintf(out, "[%s] %s | %s\n", verdictGlyphs[c.Verdict], c.Name, fields)
	return err
}

// OutputHighlight writes the segmentation inline, wrapping each labeled
// span as [group:text]. Useful for eyeballing extraction patterns.
func OutputHighlight(c streamsift.Classification, out io.Writer) error {
	var sb strings.Builder
	sb.WriteString(string(c.Verdict))
	sb.WriteString("  ")
	for _, seg := range c.Segments {
		if len(seg.Groups) == 0 {
			sb.WriteString(seg.Text)
			continue
		}
		sb.WriteByte('[')
		sb.WriteString(strings.Join(seg.Groups, "+"))
		sb.WriteByte(':')
		sb.WriteString(seg.Text)
		sb.WriteByte(']')
	}
	_, err := fmt.Fprintln(out, sb.String())
	return err
}

// OutputSummary writes aggregate verdict counts for a batch.
func OutputSummary(s streamsift.Summary, out io.Writer) error {
	_, err := fmt.Fprintf(out,
		"total=%d matched=%d excluded_by_pattern=%d excluded_by_builtin=%d filtered_by_include=%d\n",
		s.Total, s.Matched, s.ExcludedByPattern, s.ExcludedByBuiltin, s.FilteredByInclude)
	return err
}

// extractedFields formats labeled segments as group=text pairs in
// segment order. Spans with multiple labels repeat per label.
func extractedFields(segments []streamsift.Segment) string {
	var parts []string
	for _, seg := range segments {
		for _, g := range seg.Groups {
			parts = append(parts, fmt.Sprintf("%s=%s", g, seg.Text))
		}
	}
	return strings.Join(parts, " ")
}
