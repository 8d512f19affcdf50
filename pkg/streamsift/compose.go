package streamsift

import "sort"

// Compose merges extraction ranges into a single linear, non-overlapping
// segmentation of text. Ranges are processed in order of ascending Start
// (stable, so insertion order breaks ties); where ranges overlap, the
// earlier-sorted range keeps the contested span and the later range is
// clamped to begin where it left off. A later range that is fully
// consumed by clamping is dropped, unless its span exactly coincides with
// the labeled segment just emitted, in which case its group joins that
// segment's group set.
//
// Out-of-bounds offsets are clamped to [0, len(text)] before processing;
// malformed ranges can only come from an extractor bug and are never a
// reason to fail.
func Compose(text string, ranges []MatchRange) []Segment {
	n := len(text)
	if len(ranges) == 0 {
		return []Segment{{Text: text}}
	}

	sorted := make([]MatchRange, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var segs []Segment
	pos := 0
	labeled := -1 // index into segs of the last labeled segment
	labeledStart, labeledEnd := -1, -1

	for _, r := range sorted {
		start, end := clampRange(r.Start, r.End, n)

		if start < pos {
			start = pos
		}
		if end <= start {
			// Fully consumed by an earlier range. Coinciding spans keep
			// their extra labels; everything else is first-sorted-wins.
			s, e := clampRange(r.Start, r.End, n)
			if labeled >= 0 && s == labeledStart && e == labeledEnd {
				segs[labeled].Groups = appendGroup(segs[labeled].Groups, r.Group)
			}
			continue
		}

		if start > pos {
			segs = append(segs, Segment{Text: text[pos:start]})
		}
		segs = append(segs, Segment{Text: text[start:end], Groups: []string{r.Group}})
		labeled = len(segs) - 1
		labeledStart, labeledEnd = start, end
		pos = end
	}

	if pos < n {
		segs = append(segs, Segment{Text: text[pos:]})
	}
	if len(segs) == 0 {
		// Only possible for empty text: keep the whole-text segment so
		// the round-trip property holds trivially.
		segs = append(segs, Segment{Text: text})
	}
	return segs
}

// clampRange confines a half-open range to [0, n] and guarantees
// start <= end.
func clampRange(start, end, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end < start {
		end = start
	}
	if end > n {
		end = n
	}
	return start, end
}

// appendGroup adds g to an ordered set of group names.
func appendGroup(groups []string, g string) []string {
	for _, have := range groups {
		if have == g {
			return groups
		}
	}
	return append(groups, g)
}
