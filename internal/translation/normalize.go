package translation

import "strings"

// Punctuation fixes applied to every backend result, in order. Each pair is
// applied to the output of the previous one.
var normalizeRules = [][2]string{
	{"?", "? "},
	{" -", "-"},
	{" \"", "\""},
	{",\"", ", \""},
	{".(", ". ("},
}

// Normalize applies the punctuation rules to translated text. Line breaks are
// left intact, so the number of lines never changes; spaces the rules leave at
// the end of a line are trimmed.
func Normalize(text string) string {
	for _, rule := range normalizeRules {
		text = strings.ReplaceAll(text, rule[0], rule[1])
	}
	if !strings.Contains(text, " ") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
