package multimatch

import (
	"io"
	"iter"
)

// StringSearch is a MultiSearch over the runes of Go strings. Offsets
// and lengths in the resulting matches are counted in runes, not
// bytes.
type StringSearch[T comparable] struct {
	ms *MultiSearch[rune, T]
}

// NewStringSearch creates a StringSearch using the default algorithm.
func NewStringSearch[T comparable]() *StringSearch[T] {
	return &StringSearch[T]{ms: New[rune, T]()}
}

// NewStringSearchWith creates a StringSearch using the given algorithm.
func NewStringSearchWith[T comparable](alg Algorithm) (*StringSearch[T], error) {
	ms, err := NewWith[rune, T](alg)
	if err != nil {
		return nil, err
	}
	return &StringSearch[T]{ms: ms}, nil
}

// Register adds a keyword with the given identifiers.
func (s *StringSearch[T]) Register(keyword string, ids ...T) error {
	return s.ms.Register(Runes(keyword), ids...)
}

// BuildFinder closes registration and compiles the keywords. It may be
// called at most once.
func (s *StringSearch[T]) BuildFinder() (*StringFinder[T], error) {
	f, err := s.ms.BuildFinder()
	if err != nil {
		return nil, err
	}
	return &StringFinder[T]{finder: f}, nil
}

// StringFinder is an immutable string-keyword finder, safe for
// concurrent scans.
type StringFinder[T comparable] struct {
	finder *Finder[rune, T]
}

// Find returns a lazy sequence of every keyword occurrence in text.
// See Finder.Find for ordering and consumption guarantees.
func (f *StringFinder[T]) Find(text string) iter.Seq[Match[T]] {
	return f.finder.Find(Runes(text))
}

// FindReader streams the UTF-8 runes of r through the finder. The
// reader is consumed once, forward only.
func (f *StringFinder[T]) FindReader(r io.Reader) iter.Seq[Match[T]] {
	return f.finder.Find(RuneReader(r))
}

// Contains reports whether text contains at least one registered
// keyword.
func (f *StringFinder[T]) Contains(text string) bool {
	return f.finder.Contains(Runes(text))
}

// Encode writes the finder to w. See Finder.Encode.
func (f *StringFinder[T]) Encode(w io.Writer) error {
	return f.finder.Encode(w)
}

// DecodeStringFinder reads a finder previously written by
// StringFinder.Encode.
func DecodeStringFinder[T comparable](r io.Reader) (*StringFinder[T], error) {
	f, err := DecodeFinder[rune, T](r)
	if err != nil {
		return nil, err
	}
	return &StringFinder[T]{finder: f}, nil
}
