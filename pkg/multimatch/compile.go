package multimatch

// vertex is a frozen automaton node. Links are indices into the
// finder's vertex arena. The root's failure and output links point to
// itself; the output link of any other vertex always references a
// terminal vertex.
type vertex[C comparable, T comparable] struct {
	children map[C]int32
	failure  int32
	output   int32
	ids      []T
	length   int32
}

// Finder is a compiled, immutable keyword automaton. It is safe for
// concurrent use: any number of Find scans may run over the same
// Finder in parallel with no synchronization.
type Finder[C comparable, T comparable] struct {
	vertices []vertex[C, T]
}

// compile resolves failure and output links in breadth-first order and
// freezes the trie into a dense vertex arena. The builder is consumed:
// a second call fails with ErrFinderBuilt.
func (ac *ahoCorasick[C, T]) compile() (*Finder[C, T], error) {
	if ac.vertices == nil {
		return nil, ErrFinderBuilt
	}
	protos := ac.vertices
	ac.vertices = nil

	// Breadth-first from the root: resolving a vertex's failure link
	// walks its parent's failure chain, so parents must be resolved
	// before their children.
	queue := make([]int, 0, len(protos))
	queue = append(queue, root)
	for head := 0; head < len(queue); head++ {
		vi := queue[head]
		linkVertex(protos, vi)
		for _, child := range protos[vi].children {
			queue = append(queue, child)
		}
	}

	vertices := make([]vertex[C, T], len(protos))
	for i := range protos {
		p := &protos[i]
		var children map[C]int32
		if len(p.children) > 0 {
			children = make(map[C]int32, len(p.children))
			for c, idx := range p.children {
				children[c] = int32(idx)
			}
		}
		vertices[i] = vertex[C, T]{
			children: children,
			failure:  int32(p.suffix),
			output:   int32(p.endWord),
			ids:      p.ids,
			length:   int32(p.length),
		}
	}
	return &Finder[C, T]{vertices: vertices}, nil
}

// linkVertex resolves the failure (suffix) and output (endWord) links
// of one vertex, assuming its parent is already resolved.
func linkVertex[C, T comparable](protos []protoVertex[C, T], vi int) {
	v := &protos[vi]

	if vi == root {
		v.suffix = root
		v.endWord = root
		return
	}

	if v.parent == root {
		v.suffix = root
	} else {
		// Walk the parent's failure chain for the nearest vertex that
		// has an edge on v's incoming symbol. That child spells the
		// longest proper suffix of v's path that is itself a trie path.
		candidate := protos[v.parent].suffix
		for {
			if child, ok := protos[candidate].children[v.parentSym]; ok {
				v.suffix = child
				break
			}
			if candidate == root {
				v.suffix = root
				break
			}
			candidate = protos[candidate].suffix
		}
	}

	// The output link chains every terminal suffix of v's path,
	// longest first.
	if v.terminal() {
		v.endWord = vi
	} else {
		v.endWord = protos[v.suffix].endWord
	}
}
