package multimatch

import (
	"iter"
	"slices"
)

// root is the index of the root vertex in every vertex arena.
const root = 0

// protoVertex is a mutable trie node used while keywords are being
// registered. All links are indices into the owning builder's vertex
// slice, so the builder graph is a plain dense array with no pointer
// cycles.
type protoVertex[C comparable, T comparable] struct {
	// children holds the tree edges only, keyed by symbol.
	children map[C]int

	// parent and parentSym identify the single incoming edge. The root
	// has parent -1.
	parent    int
	parentSym C

	// suffix and endWord are resolved during compile.
	suffix  int
	endWord int

	// ids is non-empty exactly on terminal vertices. length is only
	// meaningful (and only ever read) when the vertex is terminal.
	ids    []T
	length int
}

func (v *protoVertex[C, T]) terminal() bool { return len(v.ids) > 0 }

// ahoCorasick accumulates keywords into a trie and compiles them into
// the classic Aho-Corasick automaton: failure links to the longest
// proper suffix that is itself a trie path, and output links chaining
// every terminal suffix of a vertex's path.
type ahoCorasick[C comparable, T comparable] struct {
	vertices []protoVertex[C, T]
}

func newAhoCorasick[C, T comparable]() *ahoCorasick[C, T] {
	ac := &ahoCorasick[C, T]{}
	ac.addVertex(-1, *new(C)) // root
	return ac
}

func (ac *ahoCorasick[C, T]) addVertex(parent int, sym C) int {
	idx := len(ac.vertices)
	ac.vertices = append(ac.vertices, protoVertex[C, T]{
		children:  make(map[C]int),
		parent:    parent,
		parentSym: sym,
	})
	return idx
}

// insert walks the trie from the root consuming one symbol at a time,
// following existing edges where the keyword shares a prefix with
// earlier keywords and creating vertices for the rest. The ids are
// unioned into the final vertex, so re-inserting a keyword merges its
// ids instead of duplicating anything.
func (ac *ahoCorasick[C, T]) insert(keyword iter.Seq[C], ids []T) int {
	current := root
	length := 0
	for c := range keyword {
		length++
		next, ok := ac.vertices[current].children[c]
		if !ok {
			next = ac.addVertex(current, c)
			ac.vertices[current].children[c] = next
		}
		current = next
	}
	if length == 0 {
		return 0
	}

	v := &ac.vertices[current]
	v.length = length
	for _, id := range ids {
		if !slices.Contains(v.ids, id) {
			v.ids = append(v.ids, id)
		}
	}
	return length
}
