package encoder

import (
	"strings"
	"unicode/utf8"
)

// CollapseRuns replaces every run of identical adjacent runes with a single
// rune. It makes one pass: "kkt" becomes "kt", "ktk" is left alone.
func CollapseRuns(code string) string {
	if code == "" {
		return code
	}

	var b strings.Builder
	b.Grow(len(code))

	prev := utf8.RuneError
	first := true
	for _, r := range code {
		if first || r != prev {
			b.WriteRune(r)
		}
		prev = r
		first = false
	}
	return b.String()
}
