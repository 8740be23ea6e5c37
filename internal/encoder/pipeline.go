// Package encoder turns a personal name into a phonetic code so that spelling
// variants of the same name end up with the same code.
//
// The rules of a concrete encoding are supplied by the caller. They are
// organised in layers; the order of layers and of the rules inside a layer is
// preserved. Encoding takes the normalized name as the start code and steps
// through the layers. Within a layer the output of a rule is the input of the
// next one. After a layer, adjacent duplicate characters are collapsed and the
// result becomes the input of the next layer.
//
// Every intermediate code is recorded in the code path, which starts with the
// raw word and has one entry per layer. It explains surprising codes.
package encoder

import (
	"slices"
)

// Pipeline is an immutable sequence of rule layers. It is safe for concurrent use.
type Pipeline struct {
	layers []*Layer
	opts   options
}

// Layers returns the number of rule layers.
func (p *Pipeline) Layers() int { return len(p.layers) }

// Layer returns a copy of the rules of layer i.
func (p *Pipeline) Layer(i int) []Rule { return p.layers[i].Rules() }

// Encode drives word through every layer and returns the code together with
// its code path.
func (p *Pipeline) Encode(word string) Result {
	path := make([]string, 0, len(p.layers)+1)
	path = append(path, word)

	code := p.opts.folder.Fold(p.opts.normalize(word))

	for i, layer := range p.layers {
		in := code
		code = p.opts.preLayer(i, code)
		code = layer.apply(code)
		code = CollapseRuns(p.opts.postLayer(i, code))
		path = append(path, code)

		p.opts.log.Debug("layer applied", "layer", i+1, "rules", layer.Len(), "in", in, "out", code)
	}

	return Result{path: path}
}

// IsEncodeEqual reports whether both words encode to the same code.
func (p *Pipeline) IsEncodeEqual(word1, word2 string) bool {
	return p.Encode(word1).Code() == p.Encode(word2).Code()
}

// EncodedName encodes word and returns its code.
func (p *Pipeline) EncodedName(word string) string {
	return p.Encode(word).Code()
}

// Result is the outcome of one Encode call.
type Result struct {
	path []string
}

// Word returns the raw word that was encoded.
func (r Result) Word() string {
	if len(r.path) == 0 {
		return ""
	}
	return r.path[0]
}

// Code returns the last entry of the code path. Without layers this is the
// raw word.
func (r Result) Code() string {
	if len(r.path) == 0 {
		return ""
	}
	return r.path[len(r.path)-1]
}

// Path returns a copy of the code path: the raw word followed by the code
// after each layer.
func (r Result) Path() []string {
	return slices.Clone(r.path)
}
