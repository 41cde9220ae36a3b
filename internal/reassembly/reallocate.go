package reassembly

import (
	"sort"
	"strings"

	"translatesrt/internal/srt"
)

// Stats describes how well the translated line supply matched the original
// layout.
type Stats struct {
	// Expected is the number of lines the original cues held.
	Expected int
	// Available is the number of non-empty translated lines.
	Available int
	// ShortCues counts cues that received fewer lines than they originally had.
	ShortCues int
	// MismatchedGroups counts sentence groups whose translation line count
	// differs from their source line count.
	MismatchedGroups int
}

// Mismatch reports whether any line count disagreed.
func (s Stats) Mismatch() bool {
	return s.Expected != s.Available || s.MismatchedGroups > 0
}

// Reallocate assigns flat lines to cues in order with a single cursor: each
// cue takes the next counts[cue.Index] lines. Cues past the end of the supply
// get empty text. Index and timing pass through; the input is not modified.
func Reallocate(cues []srt.Cue, counts LineCounts, flat []string) ([]srt.Cue, Stats) {
	out := srt.Clone(cues)
	stats := Stats{Available: len(flat)}
	cursor := 0
	for i := range out {
		n := counts[out[i].Index]
		stats.Expected += n
		start := min(cursor, len(flat))
		end := min(cursor+n, len(flat))
		out[i].Text = strings.Join(flat[start:end], "\n")
		if end-start < n {
			stats.ShortCues++
		}
		cursor += n
	}
	return out, stats
}

// ReallocateGroups assigns each group's translated lines only to the cues the
// group spans. A group whose translation has the same number of lines as its
// source is sliced exactly; otherwise lines are spread in proportion to the
// original per-cue counts. Every translated line is placed.
func ReallocateGroups(cues []srt.Cue, counts LineCounts, groups []Group) ([]srt.Cue, Stats) {
	out := srt.Clone(cues)
	for i := range out {
		out[i].Text = ""
	}

	var stats Stats
	for _, g := range groups {
		if g.Size <= 0 || g.Position < 0 || g.Position+g.Size > len(out) {
			continue
		}
		span := out[g.Position : g.Position+g.Size]
		weights := make([]int, len(span))
		expected := 0
		for k, cue := range span {
			weights[k] = counts[cue.Index]
			expected += weights[k]
		}

		lines := g.Lines()
		stats.Expected += expected
		stats.Available += len(lines)
		if len(lines) != expected {
			stats.MismatchedGroups++
		}

		shares := distribute(len(lines), weights)
		cursor := 0
		for k := range span {
			span[k].Text = strings.Join(lines[cursor:cursor+shares[k]], "\n")
			cursor += shares[k]
			if shares[k] < weights[k] {
				stats.ShortCues++
			}
		}
	}

	// Cues outside every group held no text; count them so Expected matches
	// the whole file.
	covered := make([]bool, len(out))
	for _, g := range groups {
		for p := g.Position; p < g.Position+g.Size && p < len(out); p++ {
			if p >= 0 {
				covered[p] = true
			}
		}
	}
	for i, cue := range out {
		if !covered[i] {
			n := counts[cue.Index]
			stats.Expected += n
			if n > 0 {
				stats.ShortCues++
			}
		}
	}
	return out, stats
}

// distribute splits available lines across slots in proportion to weights
// using the largest remainder method; ties go to the earlier slot. When the
// weights sum to zero every line goes to the first slot.
func distribute(available int, weights []int) []int {
	shares := make([]int, len(weights))
	if len(weights) == 0 || available <= 0 {
		return shares
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if total == available {
		copy(shares, weights)
		return shares
	}
	if total == 0 {
		shares[0] = available
		return shares
	}

	remainders := make([]int, len(weights))
	assigned := 0
	for k, w := range weights {
		shares[k] = available * w / total
		remainders[k] = available * w % total
		assigned += shares[k]
	}

	order := make([]int, len(weights))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for _, k := range order[:available-assigned] {
		shares[k]++
	}
	return shares
}

// mismatchedGroups counts groups whose translated line count differs from the
// original line count of the cues they span.
func mismatchedGroups(cues []srt.Cue, counts LineCounts, groups []Group) int {
	n := 0
	for _, g := range groups {
		expected := 0
		for p := g.Position; p < g.Position+g.Size && p < len(cues); p++ {
			expected += counts[cues[p].Index]
		}
		if len(g.Lines()) != expected {
			n++
		}
	}
	return n
}
