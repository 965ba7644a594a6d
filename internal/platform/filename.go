package platform

import (
	"strings"
	"unicode"
)

// DefaultFileName is used when a title sanitizes to nothing
const DefaultFileName = "video"

// MaxFileNameLength keeps names below common filesystem limits once an extension is added
const MaxFileNameLength = 200

// invalidFileChars are rejected by at least one of the common desktop filesystems
const invalidFileChars = `/\:*?"<>|`

// SanitizeFilename turns a video title into a safe file base name. Separators,
// reserved characters and control characters become "_", surrounding spaces and
// dots are trimmed, and an empty result falls back to DefaultFileName.
func SanitizeFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		if strings.ContainsRune(invalidFileChars, r) || unicode.IsControl(r) {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(r)
	}

	name := strings.Trim(b.String(), " .")
	if len(name) > MaxFileNameLength {
		name = truncateRunes(name, MaxFileNameLength)
	}
	if name == "" {
		return DefaultFileName
	}
	return name
}

// truncateRunes cuts s to at most n bytes without splitting a rune
func truncateRunes(s string, n int) string {
	cut := 0
	for i := range s {
		if i > n {
			break
		}
		cut = i
	}
	return strings.TrimRight(s[:cut], " .")
}
