package encoder

import "sync"

// Encoder remembers the result of the last Encode call so the code and code
// path can be read afterwards:
//
//	code, err := enc.Encode("Müller").Code()
//
// Encode and the readers are not synchronized with each other; share an
// Encoder between goroutines only through EncodedName, or use the Pipeline
// directly, whose results are independent values.
type Encoder struct {
	pipeline *Pipeline

	mu   sync.Mutex
	last *Result
}

func NewEncoder(p *Pipeline) *Encoder {
	return &Encoder{pipeline: p}
}

func (e *Encoder) Pipeline() *Pipeline { return e.pipeline }

// Encode replaces the previous code path with the one of word.
func (e *Encoder) Encode(word string) *Encoder {
	r := e.pipeline.Encode(word)
	e.last = &r
	return e
}

// Code returns the code of the last encoded word, or ErrNotEncoded.
func (e *Encoder) Code() (string, error) {
	if e.last == nil {
		return "", ErrNotEncoded
	}
	return e.last.Code(), nil
}

// CodePath returns a copy of the code path of the last encoded word, or ErrNotEncoded.
func (e *Encoder) CodePath() ([]string, error) {
	if e.last == nil {
		return nil, ErrNotEncoded
	}
	return e.last.Path(), nil
}

// IsEncodeEqual encodes both words and compares their codes. The code path of
// word2 is kept.
func (e *Encoder) IsEncodeEqual(word1, word2 string) bool {
	code1, _ := e.Encode(word1).Code()
	code2, _ := e.Encode(word2).Code()
	return code1 == code2
}

// EncodedName encodes word and returns its code as one critical section, so
// concurrent callers each get the code of their own word.
func (e *Encoder) EncodedName(word string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	code, _ := e.Encode(word).Code()
	return code
}
