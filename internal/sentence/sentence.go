package sentence

import "strings"

// delimiters is ordered; the two-character forms are listed after the bare
// period they extend.
var delimiters = []string{".", "!", "?", ".\"", ".)"}

// Delimiters returns the terminal markers recognized by IsComplete.
func Delimiters() []string {
	out := make([]string, len(delimiters))
	copy(out, delimiters)
	return out
}

// IsComplete reports whether text, trimmed of surrounding whitespace, is
// non-empty and ends with a terminal marker.
func IsComplete(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	for _, d := range delimiters {
		if strings.HasSuffix(text, d) {
			return true
		}
	}
	return false
}
