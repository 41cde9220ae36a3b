package language

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"fi", "fi"},
		{"EN", "en"},
		{" sv ", "sv"},
		// 3-letter codes convert
		{"fin", "fi"},
		{"eng", "en"},
		{"fre", "fr"},
		{"ger", "de"},
		{"dut", "nl"},
		// Word forms
		{"finnish", "fi"},
		{"English", "en"},
		{"SUOMI", "fi"},
		// Regions
		{"pt-BR", "pt-BR"},
		{"zh_cn", "zh-CN"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeRejects(t *testing.T) {
	for _, input := range []string{"", "   ", "not a language", "und", "fi!"} {
		if got, err := Normalize(input); err == nil {
			t.Fatalf("Normalize(%q) = %q, expected error", input, got)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"fi":      "Finnish",
		"english": "English",
		"???":     "???",
	}
	for input, want := range tests {
		if got := DisplayName(input); got != want {
			t.Fatalf("DisplayName(%q) = %q, want %q", input, got, want)
		}
	}
}
