package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// invisibleStripper removes zero-width formatting characters that commonly
// leak into copy-pasted questions and defeat literal comparison.
var invisibleStripper = strings.NewReplacer(
	"\u200B", "", // zero width space
	"\u200C", "", // zero width non-joiner
	"\u200D", "", // zero width joiner
	"\uFEFF", "", // byte order mark
)

// Normalize canonicalizes text for comparison: invisible characters are
// stripped, Unicode compatibility forms are unified (NFKC), and case is
// folded. Normalize is idempotent and maps empty input to "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = invisibleStripper.Replace(text)
	text = norm.NFKC.String(text)
	text = cases.Fold().String(text)
	return strings.TrimSpace(text)
}

// RemoveSpaces strips every whitespace rune. It is the second normalization
// stage backing the whitespace-insensitive comparison path.
func RemoveSpaces(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// comparisonKey collapses text into the space-free normalized form used for
// exact comparison and scoring.
func comparisonKey(text string) string {
	return RemoveSpaces(Normalize(text))
}
