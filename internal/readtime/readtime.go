// Package readtime estimates reading time for mixed Japanese/English prose.
//
// Bodies are split by script class rather than tokenized with a general CJK
// segmenter: Japanese prose has no word boundaries, so it is counted per
// character, while everything else is counted per whitespace-delimited word.
package readtime

import (
	"math"
	"strings"
	"unicode"
)

// Reading speeds per minute. Japanese is measured in characters because the
// script is unspaced; the rest is measured in whitespace-delimited words.
const (
	japaneseCharsPerMinute = 400
	otherWordsPerMinute    = 200
)

// Estimate returns the reading time for body in whole minutes, minimum 1.
// The result is deterministic and non-decreasing as content is appended.
func Estimate(body string) int {
	var japanese int
	var rest strings.Builder
	rest.Grow(len(body))

	for _, r := range body {
		if isJapanese(r) {
			japanese++
			continue
		}
		rest.WriteRune(r)
	}

	words := len(strings.Fields(rest.String()))

	minutes := float64(japanese)/japaneseCharsPerMinute + float64(words)/otherWordsPerMinute
	if whole := int(math.Ceil(minutes)); whole > 1 {
		return whole
	}
	return 1
}

// isJapanese reports whether r belongs to the Hiragana, Katakana, or CJK
// Unified Ideograph ranges.
func isJapanese(r rune) bool {
	return unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Han, r)
}
