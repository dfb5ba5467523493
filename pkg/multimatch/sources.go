package multimatch

import (
	"bufio"
	"io"
	"iter"
)

// Slice exposes a slice as a symbol sequence.
func Slice[C any](items []C) iter.Seq[C] {
	return func(yield func(C) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Bytes exposes a byte slice as a symbol sequence.
func Bytes(b []byte) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, c := range b {
			if !yield(c) {
				return
			}
		}
	}
}

// Runes yields the runes of s in order.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// ByteReader streams r one byte at a time. The reader is consumed
// destructively and is never rewound; a read error (including io.EOF)
// ends the sequence.
func ByteReader(r io.Reader) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		br := bufio.NewReader(r)
		for {
			b, err := br.ReadByte()
			if err != nil {
				return
			}
			if !yield(b) {
				return
			}
		}
	}
}

// RuneReader streams the UTF-8 runes of r one at a time. The reader is
// consumed destructively; a read error ends the sequence.
func RuneReader(r io.Reader) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		br := bufio.NewReader(r)
		for {
			c, _, err := br.ReadRune()
			if err != nil {
				return
			}
			if !yield(c) {
				return
			}
		}
	}
}
