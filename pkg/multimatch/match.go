package multimatch

// Match is one reported occurrence of a registered keyword.
type Match[T comparable] struct {
	// Start is the symbol offset (inclusive) where the keyword begins.
	Start int

	// Length is the keyword length in symbols.
	Length int

	// IDs are the identifiers registered for the keyword, deduplicated,
	// in registration order. The slice is shared with the finder and
	// must not be modified.
	IDs []T
}

// End returns the offset right after the match.
func (m Match[T]) End() int { return m.Start + m.Length }
