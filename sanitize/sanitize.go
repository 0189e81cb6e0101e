// Package sanitize normalizes arbitrary user text into the character set the
// speech-synthesis service accepts.
package sanitize

import (
	"strings"
	"unicode"
)

// Text strips characters the synthesis service cannot handle: anything outside
// the Latin-1 range, typographic quotes and dashes (normalized to their ASCII
// equivalents), and any remaining symbol outside an allow-list of word
// characters, whitespace and common punctuation. It is pure, total and
// idempotent.
func Text(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	for _, r := range input {
		switch r {
		case '‘', '’':
			b.WriteByte('\'')
			continue
		case '“', '”':
			b.WriteByte('"')
			continue
		case '–', '—':
			b.WriteByte('-')
			continue
		}
		if r > 'ÿ' {
			continue
		}
		if allowed(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// IsEmpty reports whether text carries no speakable content once sanitized.
func IsEmpty(text string) bool {
	return strings.TrimSpace(Text(text)) == ""
}

// Filename turns a title into a safe download file name: every run of
// characters outside [a-z0-9] becomes a single underscore.
func Filename(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingSep := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}

	if b.Len() == 0 {
		return "audio"
	}
	return b.String()
}

func allowed(r rune) bool {
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
		return true
	}
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '.', ',', '!', '?', '\'', '"', '(', ')', '-':
		return true
	}
	return false
}
