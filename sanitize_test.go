package main

import (
	"strings"
	"testing"
)

func TestSanitizeContent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "Great news for our team!", "Great news for our team!"},
		{"line breaks", "line one\nline two\r\nline three", "line one line two line three"},
		{"curly quotes", "“quoted” and ‘single’", `"quoted" and 'single'`},
		{"backtick", "it`s fine", "it's fine"},
		{"emoji", "We did it \U0001F389\U0001F525 team", "We did it team"},
		{"colored circles", "status \U0001F7E2 green ✅ done", "status green done"},
		{"control chars", "before\x00\x07after", "beforeafter"},
		{"bold markers", "this is **important** news", "this is important news"},
		{"italic markers", "an _emphasized_ word", "an emphasized word"},
		{"bullets", "• first ‣ second", "first second"},
		{"hashtag prefix", "growth hashtag #hiring now", "growth #hiring now"},
		{"hashtag uppercase", "Hashtag#Sales", "#Sales"},
		{"stacked hashtag prefixes", "hashtag hashtag #growth", "#growth"},
		{"joined hashtag prefixes", "hashtaghashtag #go", "#go"},
		{"math symbols", "roughly ≈ 100 ± 5", "roughly 100 5"},
		{"redundant whitespace", "  too   many\t\tspaces  ", "too many spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeContent(tt.input)
			if result != tt.expected {
				t.Errorf("sanitizeContent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSanitizeContentIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"**bold** and _italic_ with \U0001F600",
		"hashtag #go\nsecond line\t\ttabs",
		"hashtag hashtag #growth",
		"hashtaghashtag #x",
		"hashtag hashtag hashtag#stacked three deep",
		"a * b * c",
		strings.Repeat("text • ", 50),
	}

	for _, input := range inputs {
		once := sanitizeContent(input)
		twice := sanitizeContent(once)
		if once != twice {
			t.Errorf("sanitizeContent not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestContentPreview(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 5, "hello..."},
		{"multibyte", "café au lait", 4, "café..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contentPreview(tt.input, tt.max); got != tt.expected {
				t.Errorf("contentPreview(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}
