package multimatch

import "errors"

var (
	// ErrEmptyKeyword is returned when registering a keyword that
	// yields no symbols.
	ErrEmptyKeyword = errors.New("cannot register an empty keyword")

	// ErrNoKeywordIDs is returned when registering a keyword without
	// any identifiers.
	ErrNoKeywordIDs = errors.New("no keyword IDs provided")

	// ErrFinderBuilt is returned when registering a keyword or building
	// a finder after BuildFinder has already been called.
	ErrFinderBuilt = errors.New("finder already built")

	// ErrDuplicateKeywordID is returned when an identifier was already
	// used by an earlier Register call on the same MultiSearch.
	ErrDuplicateKeywordID = errors.New("duplicate keyword ID")
)
