package transliteration

import "strings"

const (
	syllableFirst = 0xAC00
	syllableLast  = 0xD7A3
	finalCount    = 28
	medialCount   = 21
)

// Revised Romanization of Korean, indexed by jamo position.
var (
	initials = [...]string{
		"g", "kk", "n", "d", "tt", "r", "m", "b", "pp",
		"s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h",
	}
	medials = [...]string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
		"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu",
		"eu", "ui", "i",
	}
	finals = [...]string{
		"", "g", "kk", "gs", "n", "nj", "nh", "d", "l", "lg",
		"lm", "lb", "ls", "lt", "lp", "lh", "m", "b", "bs",
		"s", "ss", "ng", "j", "ch", "k", "t", "p", "h",
	}
)

func isSyllable(r rune) bool {
	return r >= syllableFirst && r <= syllableLast
}

// writeSyllable decomposes a precomposed Hangul syllable into its jamo.
func writeSyllable(b *strings.Builder, r rune) {
	offset := int(r - syllableFirst)
	b.WriteString(initials[offset/(finalCount*medialCount)])
	b.WriteString(medials[(offset/finalCount)%medialCount])
	b.WriteString(finals[offset%finalCount])
}
