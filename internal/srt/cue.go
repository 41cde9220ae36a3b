package srt

import (
	"strings"
	"time"
)

// Cue is one timed subtitle entry.
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// Lines splits the cue text into lines. Empty text has no lines.
func (c Cue) Lines() []string {
	return SplitLines(c.Text)
}

// LineCount returns the number of lines in the cue text.
func (c Cue) LineCount() int {
	return len(c.Lines())
}

// SplitLines splits text on newlines. Empty text yields nil rather than a
// single empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// Clone returns a copy of cues so callers can rewrite text without touching
// the source slice.
func Clone(cues []Cue) []Cue {
	out := make([]Cue, len(cues))
	copy(out, cues)
	return out
}
