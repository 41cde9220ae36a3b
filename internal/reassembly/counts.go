package reassembly

import "translatesrt/internal/srt"

// LineCounts maps a cue index to the number of lines the cue had before any
// merging took place.
type LineCounts map[int]int

// SnapshotLineCounts records the line count of every cue.
func SnapshotLineCounts(cues []srt.Cue) LineCounts {
	counts := make(LineCounts, len(cues))
	for _, cue := range cues {
		counts[cue.Index] = cue.LineCount()
	}
	return counts
}

// Total returns the sum of all line counts.
func (c LineCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}
