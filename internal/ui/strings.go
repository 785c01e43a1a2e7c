package ui

import (
	"strings"
	"unicode/utf8"
)

// truncateMiddle shortens value by dropping runes from the middle so both
// the start and the final path element stay visible.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}

	const ellipsis = "…"
	if limit <= 3 {
		return string(runes[:limit])
	}

	keep := limit - utf8.RuneCountInString(ellipsis)
	suffix := keep / 2
	// Prefer keeping the whole file name when it fits.
	if idx := strings.LastIndexAny(value, `/\`); idx >= 0 {
		base := utf8.RuneCountInString(value[idx:])
		if base < keep {
			suffix = base
		}
	}
	prefix := keep - suffix
	return string(runes[:prefix]) + ellipsis + string(runes[len(runes)-suffix:])
}

// flagLabel turns a snake_case flag name into a display label.
func flagLabel(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		if i == 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
