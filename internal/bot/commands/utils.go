package commands

import (
	"strings"
	"unicode"
)

// splitCommand separates the first whitespace token (lowercased) from the
// rest of the message. The remainder keeps its original casing.
func splitCommand(text string) (word, rest string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ""
	}

	first := strings.Fields(trimmed)[0]
	return strings.ToLower(first), strings.TrimSpace(trimmed[len(first):])
}

// splitOptions splits a comma-separated list, trimming entries and dropping
// empty ones.
func splitOptions(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, field := range fields {
		runes := []rune(strings.ToLower(field))
		runes[0] = unicode.ToUpper(runes[0])
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}
