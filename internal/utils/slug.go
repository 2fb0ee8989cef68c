package utils

import (
	"strings"
	"unicode"
)

// Slugify derives a URL slug from a title: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens. The result is
// advisory; uniqueness is only enforced by the store.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
