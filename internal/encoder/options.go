package encoder

import (
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// DefaultLocale is the language used for case folding unless configured otherwise.
var DefaultLocale = language.German

// CaseFolder folds a string to the canonical comparison case.
type CaseFolder interface {
	Fold(s string) string
}

// FoldFunc adapts a function to CaseFolder.
type FoldFunc func(string) string

func (f FoldFunc) Fold(s string) string { return f(s) }

// NoFold leaves the case untouched.
var NoFold CaseFolder = FoldFunc(func(s string) string { return s })

// LocaleFolder lower-cases with the rules of a language, e.g. Turkish maps
// "I" to "ı".
type LocaleFolder struct {
	tag language.Tag
}

func NewLocaleFolder(tag language.Tag) LocaleFolder {
	return LocaleFolder{tag: tag}
}

// Fold creates a fresh caser per call; a cases.Caser must not be shared
// between goroutines.
func (f LocaleFolder) Fold(s string) string {
	return cases.Lower(f.tag).String(s)
}

func (f LocaleFolder) Tag() language.Tag { return f.tag }

// Normalizer prepares a raw word before case folding.
type Normalizer func(word string) string

// DefaultNormalizer removes all whitespace and composes the word to NFC so
// that decomposed umlauts match the same rules as precomposed ones.
func DefaultNormalizer(word string) string {
	return norm.NFC.String(StripWhitespace(word))
}

// StripWhitespace removes every Unicode whitespace character.
func StripWhitespace(word string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, word)
}

// LayerHook is called once per layer with the zero-based layer index.
type LayerHook func(layer int, code string) string

func identityHook(_ int, code string) string { return code }

type options struct {
	folder    CaseFolder
	normalize Normalizer
	preLayer  LayerHook
	postLayer LayerHook
	log       *slog.Logger
}

func defaultOptions() options {
	return options{
		folder:    NewLocaleFolder(DefaultLocale),
		normalize: DefaultNormalizer,
		preLayer:  identityHook,
		postLayer: identityHook,
		log:       slog.New(slog.DiscardHandler),
	}
}

// Option configures a pipeline at build time.
type Option func(*options)

// WithCaseFolder replaces the case folding collaborator. A nil folder disables folding.
func WithCaseFolder(f CaseFolder) Option {
	return func(o *options) {
		if f == nil {
			f = NoFold
		}
		o.folder = f
	}
}

// WithLocale folds case with the rules of tag.
func WithLocale(tag language.Tag) Option {
	return WithCaseFolder(NewLocaleFolder(tag))
}

// WithNormalizer replaces the whitespace stripping step. Case folding still
// runs on its result.
func WithNormalizer(n Normalizer) Option {
	return func(o *options) {
		if n != nil {
			o.normalize = n
		}
	}
}

// WithPreLayer sets a hook run on the code before a layer's rules. Its result
// is the input of the first rule.
func WithPreLayer(h LayerHook) Option {
	return func(o *options) {
		if h != nil {
			o.preLayer = h
		}
	}
}

// WithPostLayer sets a hook run on a layer's rule output before adjacent
// duplicates are collapsed.
func WithPostLayer(h LayerHook) Option {
	return func(o *options) {
		if h != nil {
			o.postLayer = h
		}
	}
}

// WithLogger traces every layer transition at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}
