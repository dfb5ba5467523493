package multimatch

import (
	"encoding/gob"
	"fmt"
	"io"
)

// wireVersion is bumped whenever the persisted layout changes.
const wireVersion = 1

// The wire format is a gob stream of the vertex arena behind a version
// field. Gob requires the symbol and id types to be encodable; that is
// the Go reading of "serializable whenever the id type is".
type wireFinder[C comparable, T comparable] struct {
	Version  int
	Vertices []wireVertex[C, T]
}

type wireVertex[C comparable, T comparable] struct {
	Children map[C]int32
	Failure  int32
	Output   int32
	IDs      []T
	Length   int32
}

// Encode writes the finder to w. A finder decoded from the stream
// behaves identically: same vertices, links, ids and lengths.
func (f *Finder[C, T]) Encode(w io.Writer) error {
	wf := wireFinder[C, T]{
		Version:  wireVersion,
		Vertices: make([]wireVertex[C, T], len(f.vertices)),
	}
	for i, v := range f.vertices {
		wf.Vertices[i] = wireVertex[C, T]{
			Children: v.children,
			Failure:  v.failure,
			Output:   v.output,
			IDs:      v.ids,
			Length:   v.length,
		}
	}
	if err := gob.NewEncoder(w).Encode(wf); err != nil {
		return fmt.Errorf("encode finder: %w", err)
	}
	return nil
}

// DecodeFinder reads a finder previously written by Encode. The type
// parameters must match the ones the finder was encoded with.
func DecodeFinder[C comparable, T comparable](r io.Reader) (*Finder[C, T], error) {
	var wf wireFinder[C, T]
	if err := gob.NewDecoder(r).Decode(&wf); err != nil {
		return nil, fmt.Errorf("decode finder: %w", err)
	}
	if wf.Version != wireVersion {
		return nil, fmt.Errorf("decode finder: unsupported format version %d", wf.Version)
	}
	if len(wf.Vertices) == 0 {
		return nil, fmt.Errorf("decode finder: empty vertex table")
	}

	vertices := make([]vertex[C, T], len(wf.Vertices))
	for i, wv := range wf.Vertices {
		vertices[i] = vertex[C, T]{
			children: wv.Children,
			failure:  wv.Failure,
			output:   wv.Output,
			ids:      wv.IDs,
			length:   wv.Length,
		}
	}
	return &Finder[C, T]{vertices: vertices}, nil
}
