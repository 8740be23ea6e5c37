package rulesets

// German finds similar German family names. Case folding with the German
// locale happens before the first layer.
var German = Table{
	Name:        "german",
	Description: "German family names",
	Layers: []LayerSpec{
		literal(
			[]string{"ä", "e"},
			[]string{"ö", "o"},
			[]string{"ü", "i"},
			[]string{"ß", "s"},
		),
		literal(
			[]string{"j", "i"},
			[]string{"y", "i"},
			[]string{"z", "s"},
			[]string{"v", "f"},
			[]string{"ph", "f"},
			[]string{"p", "b"},
			[]string{"d", "t"},
			[]string{"x", "chs"},
		),
		pattern(
			[]string{"([^s])ca", "$1ka"},
			[]string{"([^s])ch", "$1k"},
			[]string{"([^s])ck", "$1k"},
			[]string{"([^s])cl", "$1kl"},
			[]string{"([^s])co", "$1ko"},
			[]string{"([^s])cq", "$1k"},
			[]string{"([^s])cr", "$1kr"},
			[]string{"([^s])cu", "$1ku"},
		),
		pattern(
			[]string{"^c", "s"},
		),
		literal(
			[]string{"sc", "s"},
		),
		literal(
			[]string{"c", "s"},
		),
		literal(
			[]string{"h", ""},
		),
		literal(
			[]string{"ae", "e"},
			[]string{"oe", "o"},
			[]string{"ie", "i"},
		),
		pattern(
			[]string{"e$", ""},
			[]string{"er$", "r"},
			[]string{"([bfklmnrstw])er", "$1r"},
			[]string{"el$", "l"},
			[]string{"([bfklmnrstw])el", "$1l"},
			[]string{"ar$", "r"},
			[]string{"([bfklmnrstw])a$", "$1r"},
		),
		literal(
			[]string{"ai", "ei"},
		),
		literal(
			[]string{"gk", "k"},
			[]string{"g", "k"},
			[]string{"qu", "k"},
			[]string{"q", "k"},
			[]string{"ts", "s"},
			[]string{"tk", "s"},
		),
	},
}

// ExtendedGerman adds rules for regional historic spelling variations of
// German family names. The rules serve as an example for a specific region.
var ExtendedGerman = German.Extend("extended-german", "German family names in regional historic spellings",
	pattern(
		[]string{"(e?r)(t|w)", "$1b"},
		[]string{"(se)m", "$1n"},
		[]string{"tke$", "t"},
		[]string{"(in)t(el|er)", "$1s$2"},
		[]string{"(il|ele?r|le?r)$", "l"},
		[]string{"(irm)(il|en|e)", "eren"},
		[]string{"(erm)(il|en|e?l)", "$1"},
		[]string{"kne?r", "kr"},
		[]string{"tle?r", "tel"},
		[]string{"tne?r", "tr"},
		[]string{"sne?r$", "s"},
		[]string{"kt$", "kr"},
		[]string{"([bfklmnrstw])in$", "$1"},
		[]string{"efe?r", "esr"},
		[]string{"(in)(o|us|in)", "$1"},
		[]string{"([aeiou]k)t", "$1"},
		[]string{"(lt)i$", "$1"},
		[]string{"l(e|i|o)t$", "lt"},
		[]string{"(ma)(r|us)", "$1n"},
		[]string{"nstl$", "nsl"},
		[]string{"nft$", "nf"},
		[]string{"^(se)r", "$1"},
		[]string{"rlk$", "lk"},
		[]string{"drik", "s"},
		[]string{"er(ink)", "$1"},
		[]string{"al(i|t|u)(s.+)$", "al${2}"},
		[]string{"s(en|e?r|in)", "s"},
		[]string{"mb", "m"},
		[]string{"et", "es"},
		[]string{"alt", "als"},
		[]string{"tim", "sim"},
		[]string{"tw", "sw"},
		[]string{"ult", "olt"},
		[]string{"rik", "rk"},
		[]string{"ont", "on"},
		[]string{"alk", "lik"},
		[]string{"link", "lik"},
		[]string{"elk", "ilk"},
		[]string{"bok", "buk"},
	),
	pattern(
		[]string{"(f|w)([aeiou])", "b$2"},
		[]string{"([aeiou])(f|w)", "$1b"},
	),
)
