// Package transliteration romanizes Korean and Chinese names so that they can
// pass through Latin-script rule sets.
package transliteration

import (
	"strings"
	"unicode"

	"github.com/jusunglee/nameencoder/internal/encoder"
	"golang.org/x/text/unicode/norm"
)

// Script is the writing system Detect found in a name.
type Script string

const (
	Latin   Script = "latin"
	Korean  Script = "korean"
	Chinese Script = "chinese"
)

// Detect reports the script a name needs romanizing from. Hangul wins over
// Han; anything else is Latin.
func Detect(name string) Script {
	han := false
	for _, r := range name {
		switch {
		case unicode.Is(unicode.Hangul, r):
			return Korean
		case unicode.Is(unicode.Han, r):
			han = true
		}
	}
	if han {
		return Chinese
	}
	return Latin
}

// Romanize replaces Hangul syllables with their Revised Romanization and Han
// characters with toneless pinyin. Other runes, including bare jamo, are kept.
func Romanize(name string) string {
	if Detect(name) == Latin {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case isSyllable(r):
			writeSyllable(&b, r)
		case unicode.Is(unicode.Han, r):
			writeHan(&b, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalizer composes a name to NFC, so that conjoining jamo become
// syllables, romanizes it and hands it to next. A nil next means
// encoder.DefaultNormalizer.
func Normalizer(next encoder.Normalizer) encoder.Normalizer {
	if next == nil {
		next = encoder.DefaultNormalizer
	}
	return func(name string) string {
		return next(Romanize(norm.NFC.String(name)))
	}
}
