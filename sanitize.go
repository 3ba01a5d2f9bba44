package main

import (
	"regexp"
	"strings"
)

// Regular expressions used by sanitizeContent. Compiled once; the sanitizer
// runs on every extracted post.
var (
	boldMarkers    = regexp.MustCompile(`\*{1,3}([^*]*)\*{1,3}`)
	italicMarkers  = regexp.MustCompile(`_{1,3}([^_]*)_{1,3}`)
	hashtagPrefix  = regexp.MustCompile(`(?i)(hashtag\s*)+#`)
	redundantSpace = regexp.MustCompile(`\s+`)
	quoteReplacer  = strings.NewReplacer(
		"‘", "'", "’", "'", "‛", "'", "‚", "'",
		"“", `"`, "”", `"`, "„", `"`,
		"`", "'", "´", "'",
	)
)

// symbolRunes are stripped outright: stray math/technical symbols,
// typographic daggers, and bullet characters LinkedIn renders in post text.
var symbolRunes = map[rune]bool{
	'≈': true, '≠': true, '≤': true, '≥': true, '±': true, '×': true,
	'÷': true, '√': true, '∞': true, '∆': true, '∑': true, '∏': true,
	'∫': true, '†': true, '‡': true, '§': true, '¶': true,
	'•': true, '◦': true, '▪': true, '▫': true, '‣': true,
	'~': true,
}

// sanitizeContent normalizes raw post text: line breaks become spaces, curly
// quotes become straight quotes, emoji and control characters are stripped,
// markdown-style emphasis markers are unwrapped, and whitespace is collapsed.
// It is total and idempotent; empty input yields empty output.
func sanitizeContent(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\n", " ")
	content = strings.ReplaceAll(content, "\r", " ")
	content = quoteReplacer.Replace(content)

	var b strings.Builder
	b.Grow(len(content))
	for _, r := range content {
		if isEmoji(r) || isControl(r) || symbolRunes[r] {
			continue
		}
		b.WriteRune(r)
	}
	content = b.String()

	content = boldMarkers.ReplaceAllString(content, "$1")
	content = italicMarkers.ReplaceAllString(content, "$1")
	content = hashtagPrefix.ReplaceAllString(content, "#")
	content = redundantSpace.ReplaceAllString(content, " ")

	return strings.TrimSpace(content)
}

// isEmoji reports whether r falls inside the emoji and pictograph blocks
// LinkedIn posts commonly carry, including variation selectors and the
// misc-symbols-and-arrows block (colored circles, stars).
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF, // misc symbols and pictographs
		r >= 0x1F600 && r <= 0x1F64F, // emoticons
		r >= 0x1F680 && r <= 0x1F6FF, // transport
		r >= 0x1F1E0 && r <= 0x1F1FF, // flags
		r >= 0x1F780 && r <= 0x1F7FF, // geometric shapes extended
		r >= 0x1F800 && r <= 0x1F8FF, // supplemental arrows
		r >= 0x1F900 && r <= 0x1F9FF, // supplemental symbols
		r >= 0x1FA70 && r <= 0x1FAFF, // extended symbols
		r >= 0x2600 && r <= 0x26FF, // miscellaneous symbols
		r >= 0x2700 && r <= 0x27BF, // dingbats
		r >= 0x2B00 && r <= 0x2BFF, // misc symbols and arrows
		r == 0xFE0F, r == 0xFE0E, // variation selectors
		r == 0x200D: // zero-width joiner
		return true
	}
	return false
}

// isControl matches C0 controls and DEL; tabs and newlines are already
// replaced before this runs.
func isControl(r rune) bool {
	return r < 0x20 || r == 0x7F
}

// contentPreview truncates s for log lines.
func contentPreview(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
