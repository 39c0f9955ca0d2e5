package linescan

import "strings"

const (
	maxExcerptRunes = 240
	ellipsis        = "..."
)

// Excerpt trims line and shortens it to at most 240 characters, replacing
// the tail with "..." when it is cut.
func Excerpt(line string) string {
	trimmed := strings.TrimSpace(line)
	runes := []rune(trimmed)
	if len(runes) <= maxExcerptRunes {
		return trimmed
	}
	return string(runes[:maxExcerptRunes-len(ellipsis)]) + ellipsis
}
