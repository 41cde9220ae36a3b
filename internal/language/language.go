package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type entry struct {
	code2 string   // ISO 639-1 (2-letter)
	alt3  string   // ISO 639-2/B bibliographic code (e.g. "fre" vs "fra")
	words []string // Full word forms (e.g. "english")
}

var languages = []entry{
	{"en", "", []string{"english"}},
	{"es", "", []string{"spanish"}},
	{"fr", "fre", []string{"french"}},
	{"de", "ger", []string{"german"}},
	{"it", "", []string{"italian"}},
	{"pt", "", []string{"portuguese"}},
	{"ja", "", []string{"japanese"}},
	{"ko", "", []string{"korean"}},
	{"zh", "chi", []string{"chinese"}},
	{"ru", "", []string{"russian"}},
	{"ar", "", []string{"arabic"}},
	{"hi", "", []string{"hindi"}},
	{"nl", "dut", []string{"dutch"}},
	{"pl", "", []string{"polish"}},
	{"sv", "", []string{"swedish"}},
	{"da", "", []string{"danish"}},
	{"no", "", []string{"norwegian"}},
	{"fi", "", []string{"finnish", "suomi"}},
	{"et", "", []string{"estonian"}},
}

var aliases map[string]string

func init() {
	aliases = make(map[string]string, len(languages)*2)
	for _, e := range languages {
		if e.alt3 != "" {
			aliases[e.alt3] = e.code2
		}
		for _, w := range e.words {
			aliases[w] = e.code2
		}
	}
}

// Normalize returns the canonical tag for a language code, ISO 639-2 code, or
// English language name. Explicit regions are kept ("pt-BR"); inferred ones
// are dropped ("fi", not "fi-FI").
func Normalize(code string) (string, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "", fmt.Errorf("language code is empty")
	}
	if alias, ok := aliases[strings.ToLower(trimmed)]; ok {
		return alias, nil
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", code, err)
	}
	base, confidence := tag.Base()
	if tag.IsRoot() || confidence != language.Exact {
		return "", fmt.Errorf("unknown language %q", code)
	}
	if region, rc := tag.Region(); rc == language.Exact {
		return base.String() + "-" + region.String(), nil
	}
	return base.String(), nil
}

// DisplayName returns the English name of a language code, or the code itself
// when it cannot be resolved.
func DisplayName(code string) string {
	normalized, err := Normalize(code)
	if err != nil {
		return strings.TrimSpace(code)
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return normalized
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return normalized
}
