package encoder

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// umlautPipeline folds ü to i, then ch/ck after a non-"s" to k.
func umlautPipeline(t *testing.T, opts ...Option) *Pipeline {
	t.Helper()
	b := NewBuilder(opts...)
	require.NoError(t, b.AddLiteralLayer([][]string{
		{"ä", "e"},
		{"ö", "o"},
		{"ü", "i"},
		{"ß", "s"},
	}))
	require.NoError(t, b.AddPatternLayer([][]string{
		{"([^s])ch", "$1k"},
		{"([^s])ck", "$1k"},
	}))
	b.BeginLayer()
	return b.Build()
}

func TestEncodeWithoutLayers(t *testing.T) {
	p := NewBuilder().Build()

	for _, word := range []string{"Kind", "Von der Kindt", ""} {
		r := p.Encode(word)
		assert.Equal(t, word, r.Code())
		assert.Equal(t, []string{word}, r.Path())
	}
	assert.False(t, p.IsEncodeEqual("Kind", " Kind "))
}

func TestEncodeUmlautFolding(t *testing.T) {
	p := umlautPipeline(t)

	r := p.Encode("Müller")
	assert.Equal(t, []string{"Müller", "miler", "miler", "miler"}, r.Path())
	assert.Equal(t, "miler", r.Code())
	assert.True(t, p.IsEncodeEqual("Müller", "Miller"))
	assert.True(t, p.IsEncodeEqual("Müller", "MÜLLER"))

	r = p.Encode("Dietrich")
	assert.Equal(t, "dietrik", r.Code())
	assert.Equal(t, "dietrik", p.Encode("Dietrick").Code())
}

func TestEncodePathInvariants(t *testing.T) {
	p := umlautPipeline(t)

	words := []string{"Müller", "Dietrich", "Von der Kindt", "Mühlbauer", "kksssk", "aaab", "x", "123", "+-#*.,<>"}
	for _, word := range words {
		path := p.Encode(word).Path()

		require.Len(t, path, p.Layers()+1, word)
		assert.Equal(t, word, path[0])
		for i, code := range path[1:] {
			assert.Equal(t, CollapseRuns(code), code, "entry %d of %q has adjacent duplicates", i+1, word)
		}
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	p := umlautPipeline(t)
	first := p.Encode("Fuchssche").Path()
	for range 10 {
		assert.Equal(t, first, p.Encode("Fuchssche").Path())
	}
}

func TestEncodeStripsWhitespace(t *testing.T) {
	p := umlautPipeline(t)

	a := p.Encode("Kind")
	b := p.Encode("K i n d")
	c := p.Encode(" Kind\t\n")

	assert.Equal(t, a.Code(), b.Code())
	assert.Equal(t, a.Code(), c.Code())
	assert.Equal(t, "Kind", a.Path()[0])
	assert.Equal(t, "K i n d", b.Path()[0])
	assert.True(t, p.IsEncodeEqual("Müller", "Mü  ller"))
}

func TestEncodeEmptyWord(t *testing.T) {
	called := 0
	b := NewBuilder(WithPreLayer(func(_ int, code string) string {
		called++
		return code
	}))
	require.NoError(t, b.AddLiteralLayer([][]string{{"", "x"}}))
	require.NoError(t, b.AddPatternLayer([][]string{{"", "x"}, {"^", "y"}}))
	b.BeginLayer()
	p := b.Build()

	r := p.Encode("")
	assert.Equal(t, "", r.Code())
	assert.Equal(t, []string{"", "", "", ""}, r.Path())
	assert.Equal(t, 3, called)

	r = p.Encode("   ")
	assert.Equal(t, "", r.Code())
	assert.Equal(t, []string{"   ", "", "", ""}, r.Path())
}

func TestEncodeEqualityContract(t *testing.T) {
	p := umlautPipeline(t)
	words := []string{"Müller", "Miller", "Muller", "Dietrich", "Dietrick", ""}
	for _, a := range words {
		for _, b := range words {
			want := p.Encode(a).Code() == p.Encode(b).Code()
			assert.Equal(t, want, p.IsEncodeEqual(a, b), "%q vs %q", a, b)
		}
	}
}

func TestEncodedName(t *testing.T) {
	p := umlautPipeline(t)
	assert.Equal(t, p.Encode("Müller").Code(), p.EncodedName("Müller"))
}

func TestEncodeComposesDecomposedUmlauts(t *testing.T) {
	p := umlautPipeline(t)
	assert.Equal(t, "miler", p.Encode("Müller").Code())
}

func TestEncodeLocale(t *testing.T) {
	build := func(opts ...Option) *Pipeline {
		b := NewBuilder(opts...)
		b.BeginLayer()
		return b.Build()
	}

	assert.Equal(t, "istanbul", build().Encode("ISTANBUL").Code())
	assert.Equal(t, "ıstanbul", build(WithLocale(language.Turkish)).Encode("ISTANBUL").Code())
	assert.Equal(t, "ISTANBUL", build(WithCaseFolder(nil)).Encode("ISTANBUL").Code())
	assert.Equal(t, "ISTANBUL", build(WithCaseFolder(FoldFunc(strings.ToUpper))).Encode("istanbul").Code())
}

func TestEncodeCustomNormalizer(t *testing.T) {
	b := NewBuilder(WithNormalizer(func(word string) string {
		return strings.ReplaceAll(word, "-", "")
	}))
	b.BeginLayer()
	p := b.Build()

	assert.Equal(t, "mülerlüdenscheidt ", p.Encode("Müller-Lüdenscheidt ").Code())
	assert.Equal(t, "abc", p.Encode("A-B-C").Code())
}

func TestEncodeLayerHooks(t *testing.T) {
	var seen []string
	pre := func(layer int, code string) string {
		seen = append(seen, fmt.Sprintf("%d:%s", layer, code))
		return strings.TrimSuffix(code, "x")
	}
	post := func(_ int, code string) string {
		var b strings.Builder
		for _, r := range code {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String()
	}

	b := NewBuilder(WithPreLayer(pre), WithPostLayer(post))
	require.NoError(t, b.AddLiteralLayer([][]string{{"a", "b"}}))
	require.NoError(t, b.AddLiteralLayer([][]string{{"b", "c"}}))
	p := b.Build()

	r := p.Encode("aax")
	assert.Equal(t, []string{"aax", "b", "c"}, r.Path())
	assert.Equal(t, []string{"0:aax", "1:b"}, seen)
}

func TestEncodeLogsLayers(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := umlautPipeline(t, WithLogger(log))
	p.Encode("Müller")

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, `"msg":"layer applied"`))
	assert.Contains(t, out, `"out":"miler"`)
}

func TestPipelineConcurrentEncode(t *testing.T) {
	p := umlautPipeline(t)
	words := map[string]string{
		"Müller":   "miler",
		"Dietrich": "dietrik",
		"Kind":     "kind",
		"":         "",
	}

	var wg sync.WaitGroup
	for range 8 {
		for word, want := range words {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 50 {
					assert.Equal(t, want, p.Encode(word).Code())
				}
			}()
		}
	}
	wg.Wait()
}

func TestResultPathIsCopy(t *testing.T) {
	p := umlautPipeline(t)
	r := p.Encode("Müller")

	path := r.Path()
	path[0] = "changed"
	assert.Equal(t, "Müller", r.Path()[0])
	assert.Equal(t, "Müller", r.Word())

	var zero Result
	assert.Equal(t, "", zero.Code())
	assert.Equal(t, "", zero.Word())
}
