package streamsift_test

import (
	"strings"
	"testing"

	"github.com/streamsift/streamsift-go/pkg/streamsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip asserts the fundamental composer invariants: concatenated
// segment texts reproduce the input exactly, and no segment is empty
// except a lone whole-text segment.
func roundTrip(t *testing.T, text string, segs []streamsift.Segment) {
	t.Helper()
	var sb strings.Builder
	for _, s := range segs {
		sb.WriteString(s.Text)
	}
	require.Equal(t, text, sb.String(), "segments must reconstruct the input")
	if len(segs) > 1 {
		for i, s := range segs {
			assert.NotEmpty(t, s.Text, "segment %d is empty", i)
		}
	}
}

func TestCompose_EmptyRanges(t *testing.T) {
	text := "Lakers at Celtics"
	segs := streamsift.Compose(text, nil)

	require.Len(t, segs, 1)
	assert.Equal(t, text, segs[0].Text)
	assert.Empty(t, segs[0].Groups)
	roundTrip(t, text, segs)
}

func TestCompose_SingleRange(t *testing.T) {
	text := "Lakers at Celtics"
	segs := streamsift.Compose(text, []streamsift.MatchRange{
		{Start: 0, End: 6, Group: "team1"},
	})

	require.Len(t, segs, 2)
	assert.Equal(t, "Lakers", segs[0].Text)
	assert.Equal(t, []string{"team1"}, segs[0].Groups)
	assert.Equal(t, " at Celtics", segs[1].Text)
	assert.Empty(t, segs[1].Groups)
	roundTrip(t, text, segs)
}

func TestCompose_OverlapPrecedence(t *testing.T) {
	// The later-sorted range is clamped to start where the earlier one
	// ended: first-sorted-wins, not longest-wins.
	text := "abcdefghij"
	segs := streamsift.Compose(text, []streamsift.MatchRange{
		{Start: 0, End: 5, Group: "team1"},
		{Start: 3, End: 8, Group: "team2"},
	})

	require.Len(t, segs, 3)
	assert.Equal(t, "abcde", segs[0].Text)
	assert.Equal(t, []string{"team1"}, segs[0].Groups)
	assert.Equal(t, "fgh", segs[1].Text)
	assert.Equal(t, []string{"team2"}, segs[1].Groups)
	assert.Equal(t, "ij", segs[2].Text)
	assert.Empty(t, segs[2].Groups)
	roundTrip(t, text, segs)
}

func TestCompose_NestedRangeConsumed(t *testing.T) {
	// A range fully inside an earlier one disappears.
	text := "abcdefghij"
	segs := streamsift.Compose(text, []streamsift.MatchRange{
		{Start: 0, End: 8, Group: "team1"},
		{Start: 2, End: 5, Group: "date"},
	})

	require.Len(t, segs, 2)
	assert.Equal(t, "abcdefgh", segs[0].Text)
	assert.Equal(t, []string{"team1"}, segs[0].Groups)
	assert.Equal(t, "ij", segs[1].Text)
	roundTrip(t, text, segs)
}

func TestCompose_CoincidentSpansMergeGroups(t *testing.T) {
	// Identical spans keep both labels as an ordered set instead of
	// silently dropping the second.
	text := "NBA 2024-01-15"
	segs := streamsift.Compose(text, []streamsift.MatchRange{
		{Start: 4, End: 14, Group: "date"},
		{Start: 4, End: 14, Group: "time"},
	})

	require.Len(t, segs, 2)
	assert.Equal(t, "NBA ", segs[0].Text)
	assert.Equal(t, "2024-01-15", segs[1].Text)
	assert.Equal(t, []string{"date", "time"}, segs[1].Groups)
	roundTrip(t, text, segs)
}

func TestCompose_CoincidentDuplicateGroupDeduplicated(t *testing.T) {
	text := "abcdef"
	segs := streamsift.Compose(text, []streamsift.MatchRange{
		{Start: 0, End: 3, Group: "team1"},
		{Start: 0, End: 3, Group: "team1"},
	})

	require.Len(t, segs, 2)
	assert.Equal(t, []string{"team1"}, segs[0].Groups)
	roundTrip(t, text, segs)
}

func TestCompose_UnsortedInput(t *testing.T) {
	text := "Lakers vs Celtics | NBA"
	segs := streamsift.Compose(text, []streamsift.MatchRange{
		{Start: 20, End: 23, Group: "league"},
		{Start: 0, End: 6, Group: "team1"},
		{Start: 10, End: 17, Group: "team2"},
	})

	require.Len(t, segs, 5)
	assert.Equal(t, []string{"team1"}, segs[0].Groups)
	assert.Equal(t, " vs ", segs[1].Text)
	assert.Equal(t, []string{"team2"}, segs[2].Groups)
	assert.Equal(t, " | ", segs[3].Text)
	assert.Equal(t, []string{"league"}, segs[4].Groups)
	roundTrip(t, text, segs)
}

func TestCompose_StableTieBreak(t *testing.T) {
	// Equal Start offsets: insertion order wins.
	text := "abcdef"
	segs := streamsift.Compose(text, []streamsift.MatchRange{
		{Start: 0, End: 4, Group: "team2"},
		{Start: 0, End: 6, Group: "team1"},
	})

	require.Len(t, segs, 2)
	assert.Equal(t, "abcd", segs[0].Text)
	assert.Equal(t, []string{"team2"}, segs[0].Groups)
	assert.Equal(t, "ef", segs[1].Text)
	assert.Equal(t, []string{"team1"}, segs[1].Groups)
	roundTrip(t, text, segs)
}

func TestCompose_OutOfBoundsClamped(t *testing.T) {
	text := "short"
	segs := streamsift.Compose(text, []streamsift.MatchRange{
		{Start: -3, End: 2, Group: "team1"},
		{Start: 3, End: 99, Group: "team2"},
	})

	require.Len(t, segs, 3)
	assert.Equal(t, "sh", segs[0].Text)
	assert.Equal(t, []string{"team1"}, segs[0].Groups)
	assert.Equal(t, "o", segs[1].Text)
	assert.Empty(t, segs[1].Groups)
	assert.Equal(t, "rt", segs[2].Text)
	assert.Equal(t, []string{"team2"}, segs[2].Groups)
	roundTrip(t, text, segs)
}

func TestCompose_InvertedRangeSkipped(t *testing.T) {
	text := "abcdef"
	segs := streamsift.Compose(text, []streamsift.MatchRange{
		{Start: 4, End: 2, Group: "team1"},
	})

	require.Len(t, segs, 1)
	assert.Equal(t, text, segs[0].Text)
	assert.Empty(t, segs[0].Groups)
	roundTrip(t, text, segs)
}

func TestCompose_EmptyText(t *testing.T) {
	segs := streamsift.Compose("", []streamsift.MatchRange{
		{Start: 0, End: 5, Group: "team1"},
	})

	require.Len(t, segs, 1)
	assert.Equal(t, "", segs[0].Text)
	roundTrip(t, "", segs)
}

func TestCompose_RangeCoveringWholeText(t *testing.T) {
	text := "NBA"
	segs := streamsift.Compose(text, []streamsift.MatchRange{
		{Start: 0, End: 3, Group: "league"},
	})

	require.Len(t, segs, 1)
	assert.Equal(t, "NBA", segs[0].Text)
	assert.Equal(t, []string{"league"}, segs[0].Groups)
	roundTrip(t, text, segs)
}

func TestCompose_DoesNotMutateInput(t *testing.T) {
	ranges := []streamsift.MatchRange{
		{Start: 7, End: 9, Group: "team2"},
		{Start: 0, End: 3, Group: "team1"},
	}
	streamsift.Compose("abcdefghij", ranges)

	assert.Equal(t, 7, ranges[0].Start, "input slice must stay untouched")
	assert.Equal(t, "team2", ranges[0].Group)
}
