package multimatch

import "iter"

// Find returns a lazy sequence of every keyword occurrence in the
// input, including overlapping ones.
//
// The input is consumed destructively in a single forward pass; the
// returned sequence is single-use and not restartable. Matches come
// out in non-decreasing end-offset order, and when several keywords
// end at the same offset the longest is reported first. No work is
// done until the sequence is pulled, and breaking out of the loop
// stops the scan immediately without reading further input.
func (f *Finder[C, T]) Find(input iter.Seq[C]) iter.Seq[Match[T]] {
	return func(yield func(Match[T]) bool) {
		next, stop := iter.Pull(input)
		defer stop()

		current := int32(root)
		offset := 0
		pending := int32(-1) // -1: no output chain in progress

		for {
			if pending < 0 {
				c, ok := next()
				if !ok {
					return
				}
				// Follow failure links until some vertex has an edge on
				// c; if none does, stay at the root.
				for {
					if child, ok := f.vertices[current].children[c]; ok {
						current = child
						break
					}
					if current == root {
						break
					}
					current = f.vertices[current].failure
				}
				offset++
				pending = current
			}

			// One hop along the output chain. Landing on the root means
			// the chain is exhausted for this offset.
			pending = f.vertices[pending].output
			if pending == root {
				pending = -1
				continue
			}

			w := &f.vertices[pending]
			if !yield(Match[T]{
				Start:  offset - int(w.length),
				Length: int(w.length),
				IDs:    w.ids,
			}) {
				return
			}
			// Resume the chain at the next proper suffix, still at the
			// same offset.
			pending = w.failure
		}
	}
}

// FindSlice scans an in-memory slice. It is shorthand for
// Find(Slice(items)).
func (f *Finder[C, T]) FindSlice(items []C) iter.Seq[Match[T]] {
	return f.Find(Slice(items))
}

// Contains reports whether the input contains at least one registered
// keyword. It stops reading the input as soon as a match is found.
func (f *Finder[C, T]) Contains(input iter.Seq[C]) bool {
	for range f.Find(input) {
		return true
	}
	return false
}
