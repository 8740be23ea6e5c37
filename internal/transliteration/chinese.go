package transliteration

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

var pinyinArgs = func() pinyin.Args {
	a := pinyin.NewArgs()
	a.Style = pinyin.Normal
	return a
}()

// writeHan writes the first pinyin reading of r without tone marks. Characters
// without a reading are kept.
func writeHan(b *strings.Builder, r rune) {
	if py := pinyin.SinglePinyin(r, pinyinArgs); len(py) > 0 {
		b.WriteString(py[0])
		return
	}
	b.WriteRune(r)
}
