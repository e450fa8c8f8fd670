package host

import (
	"fmt"
	"unicode/utf8"
)

const charsPerToken = 4

// UtilsCapability exposes pure text helpers to plugins. No external state.
type UtilsCapability struct{}

// EstimateTokens approximates the token count of text.
func (UtilsCapability) EstimateTokens(text string) int { return EstimateTokens(text) }

// TruncateText cuts text to maxBytes on a line boundary with a marker.
func (UtilsCapability) TruncateText(text string, maxBytes int) string {
	return TruncateText(text, maxBytes)
}

// FormatSize renders a byte count for human display.
func (UtilsCapability) FormatSize(n int) string { return FormatSize(n) }

// EstimateTokens approximates the token count of text using a simple
// characters-per-token heuristic, rounding up.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return (len(text) + charsPerToken - 1) / charsPerToken
}

// TruncateText cuts text to at most maxBytes, preferring the last newline
// before the limit so the cut lands on a line boundary, and appends a marker
// describing what was removed. Returns text unchanged when it fits.
func TruncateText(text string, maxBytes int) string {
	if maxBytes <= 0 || len(text) <= maxBytes {
		return text
	}

	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	truncated := text[:cut]

	// Prefer a line boundary when one exists in the back half of the cut.
	for i := cut - 1; i > cut/2; i-- {
		if text[i] == '\n' {
			truncated = text[:i]
			break
		}
	}

	return truncated + fmt.Sprintf("\n[TRUNCATED: original size %s, limit %s]",
		FormatSize(len(text)), FormatSize(maxBytes))
}

// FormatSize renders a byte count as B or KB.
func FormatSize(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%dB", n)
	}
	return fmt.Sprintf("%.1fKB", float64(n)/1024)
}
