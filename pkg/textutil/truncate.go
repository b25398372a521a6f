// Package textutil holds small string helpers used when rendering records.
package textutil

import "unicode"

const (
	DefaultSize   = 80
	DefaultSuffix = "..."
)

// Truncate shortens text to at most size characters plus suffix. When text is
// longer than size it is cut at the last whitespace inside the first size
// characters, or hard-cut at size when that whitespace is missing or leading.
// Characters are counted as runes; graphemes are not considered.
func Truncate(text string, size int, suffix string) string {
	runes := []rune(text)
	if len(runes) <= size {
		return text
	}
	if size < 0 {
		size = 0
	}
	head := runes[:size]
	cut := -1
	for i := len(head) - 1; i >= 0; i-- {
		if unicode.IsSpace(head[i]) {
			cut = i
			break
		}
	}
	if cut > 0 {
		return string(head[:cut]) + suffix
	}
	return string(head) + suffix
}

// TruncateDefault is Truncate with DefaultSize and DefaultSuffix.
func TruncateDefault(text string) string {
	return Truncate(text, DefaultSize, DefaultSuffix)
}
