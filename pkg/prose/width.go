package prose

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Width returns the width of a prose line: the rune count of its NFC form.
// Trailing whitespace, including the trailing marker, counts toward the
// width, so an accepted line never exceeds the limit as written.
func Width(line string) int {
	return utf8.RuneCountInString(norm.NFC.String(line))
}
