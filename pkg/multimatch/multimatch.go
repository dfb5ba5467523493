// Package multimatch finds every occurrence of a set of registered
// keywords in an input sequence in a single left-to-right pass,
// including overlapping occurrences. Each keyword carries a set of
// opaque identifiers that are reported with each match.
//
// The usage pattern is:
//  1. Create a MultiSearch (New or NewWith)
//  2. Register keywords with Register
//  3. Build the immutable finder with BuildFinder
//  4. Scan inputs with Finder.Find
//
// A MultiSearch is safe for concurrent registration. Once built, a
// Finder is immutable and any number of scans may run over it in
// parallel.
package multimatch

import (
	"fmt"
	"iter"
	"sync"
)

// Algorithm selects the multi-search implementation.
type Algorithm int

const (
	// AlgorithmAhoCorasick is the classic linear-time multi-keyword
	// automaton. It is the default and currently the only algorithm.
	AlgorithmAhoCorasick Algorithm = iota
)

// engine is the capability set a multi-search implementation provides:
// accumulate keywords one at a time, then compile them into a finder
// exactly once.
type engine[C comparable, T comparable] interface {
	// insert adds one keyword with its ids, merging shared prefixes and
	// unioning ids on repeated keywords. It returns the number of
	// symbols consumed; 0 means the keyword was empty and nothing was
	// recorded.
	insert(keyword iter.Seq[C], ids []T) int

	// compile freezes the accumulated keywords into an immutable
	// finder. A second call fails with ErrFinderBuilt.
	compile() (*Finder[C, T], error)
}

// MultiSearch accumulates keywords and their identifiers, then builds
// a Finder. C is the symbol type of the sequences being searched, T is
// the identifier type attached to keywords.
//
// Registration and building are serialized under an internal lock.
// Building is a one-way transition: after BuildFinder succeeds, any
// further Register or BuildFinder call fails with ErrFinderBuilt.
type MultiSearch[C comparable, T comparable] struct {
	mu      sync.Mutex
	usedIDs map[T]struct{}
	open    bool
	eng     engine[C, T]
}

// New creates a MultiSearch using the default algorithm.
func New[C, T comparable]() *MultiSearch[C, T] {
	ms, _ := NewWith[C, T](AlgorithmAhoCorasick)
	return ms
}

// NewWith creates a MultiSearch using the given algorithm.
func NewWith[C, T comparable](alg Algorithm) (*MultiSearch[C, T], error) {
	switch alg {
	case AlgorithmAhoCorasick:
		return &MultiSearch[C, T]{
			usedIDs: make(map[T]struct{}),
			open:    true,
			eng:     newAhoCorasick[C, T](),
		}, nil
	default:
		return nil, fmt.Errorf("unknown multi-search algorithm %d", alg)
	}
}

// Register adds a keyword with the given identifiers.
//
// The keyword sequence is consumed once, in order. Registering the
// same keyword again merges the new ids with the ones already
// recorded for it. Each id value may only be used once per
// MultiSearch; reusing an id from an earlier Register call fails with
// ErrDuplicateKeywordID. Duplicates within a single call are merged
// silently.
func (ms *MultiSearch[C, T]) Register(keyword iter.Seq[C], ids ...T) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if !ms.open {
		return ErrFinderBuilt
	}
	if len(ids) == 0 {
		return ErrNoKeywordIDs
	}
	for _, id := range ids {
		if _, used := ms.usedIDs[id]; used {
			return fmt.Errorf("%w: %v", ErrDuplicateKeywordID, id)
		}
	}

	if ms.eng.insert(keyword, ids) == 0 {
		return ErrEmptyKeyword
	}

	for _, id := range ids {
		ms.usedIDs[id] = struct{}{}
	}
	return nil
}

// BuildFinder closes registration and compiles the keywords into an
// immutable Finder. It may be called at most once.
func (ms *MultiSearch[C, T]) BuildFinder() (*Finder[C, T], error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if !ms.open {
		return nil, ErrFinderBuilt
	}
	ms.open = false
	ms.usedIDs = nil

	return ms.eng.compile()
}
