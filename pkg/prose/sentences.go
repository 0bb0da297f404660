package prose

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviations end in a period that does not end a sentence.
var abbreviations = map[string]bool{
	"e.g.": true,
	"i.e.": true,
	"etc.": true,
	"vs.":  true,
}

// CountSentences counts sentences in plain text.
//
// A sentence ends at '.', '!' or '?' followed by whitespace or the end of
// the text, optionally after closing quotes or brackets. A terminator only
// counts once the sentence holds a letter, so decimals, dotted names and
// stray punctuation never start a new sentence. The abbreviations e.g.,
// i.e., etc. and vs. are not terminators. Trailing text with a letter and
// no terminator is one more sentence.
func CountSentences(s string) int {
	count := 0
	hasLetter := false
	wordStart := 0

	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
			wordStart = i + utf8.RuneLen(r)
		case unicode.IsLetter(r):
			hasLetter = true
		case r == '.' || r == '!' || r == '?':
			if !hasLetter || !endsSentence(s, i+1) {
				continue
			}
			word := strings.TrimLeft(s[wordStart:i+1], `("'[`)
			if r == '.' && abbreviations[strings.ToLower(word)] {
				continue
			}
			count++
			hasLetter = false
		}
	}

	if hasLetter {
		count++
	}
	return count
}

// endsSentence reports whether position i, just after a terminator, is
// followed by whitespace or the end of s, skipping closing punctuation.
func endsSentence(s string, i int) bool {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case strings.ContainsRune(`"')]`+"’”", r):
			i += size
		case r == '.' || r == '!' || r == '?':
			return false
		default:
			return unicode.IsSpace(r)
		}
	}
	return true
}
