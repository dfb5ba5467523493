package multimatch

import (
	"iter"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinder_OverlappingMatches(t *testing.T) {
	f := buildStringFinder(t, map[string][]string{
		"a":  {"one"},
		"aa": {"two"},
	})

	got := slices.Collect(f.Find(Runes("aaa")))
	want := []Match[string]{
		{Start: 0, Length: 1, IDs: []string{"one"}},
		{Start: 0, Length: 2, IDs: []string{"two"}},
		{Start: 1, Length: 1, IDs: []string{"one"}},
		{Start: 1, Length: 2, IDs: []string{"two"}},
		{Start: 2, Length: 1, IDs: []string{"one"}},
	}
	assert.Equal(t, want, got)
}

func TestFinder_LongerKeywordFirstAtSharedEnd(t *testing.T) {
	f := buildStringFinder(t, map[string][]string{
		"she": {"she"},
		"he":  {"he"},
		"e":   {"e"},
	})

	got := slices.Collect(f.Find(Runes("she")))
	want := []Match[string]{
		{Start: 0, Length: 3, IDs: []string{"she"}},
		{Start: 1, Length: 2, IDs: []string{"he"}},
		{Start: 2, Length: 1, IDs: []string{"e"}},
	}
	assert.Equal(t, want, got)
}

func TestFinder_EagerAndIncrementalAgree(t *testing.T) {
	f := buildStringFinder(t, map[string][]string{
		"she": {"she"},
		"he":  {"he"},
		"sea": {"sea"},
		"ash": {"ash"},
	})
	const text = "she sells seashells by the seashore"

	eager := slices.Collect(f.Find(Runes(text)))

	next, stop := iter.Pull(f.Find(Runes(text)))
	defer stop()
	var incremental []Match[string]
	for {
		m, ok := next()
		if !ok {
			break
		}
		incremental = append(incremental, m)
	}

	assert.Equal(t, eager, incremental)
}

// countingRunes yields the runes of s and counts how many were pulled.
func countingRunes(s string, pulled *int) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			*pulled++
			if !yield(r) {
				return
			}
		}
	}
}

func TestFinder_ContainsStopsEarly(t *testing.T) {
	f := buildStringFinder(t, map[string][]string{"she": {"she"}})

	pulled := 0
	assert.True(t, f.Contains(countingRunes("absheXXXXXXXXXX", &pulled)))
	// The match ends at the fifth symbol; nothing past it is read.
	assert.Equal(t, 5, pulled)
}

func TestFinder_ContainsNoMatch(t *testing.T) {
	f := buildStringFinder(t, map[string][]string{"она": {"she"}})

	assert.False(t, f.Contains(Runes("no cyrillic here")))
}

func TestFinder_BreakStopsScan(t *testing.T) {
	f := buildStringFinder(t, map[string][]string{"a": {"a"}})

	pulled := 0
	got := 0
	for range f.Find(countingRunes("aaaaaaaaaa", &pulled)) {
		got++
		if got == 2 {
			break
		}
	}
	assert.Equal(t, 2, got)
	assert.Equal(t, 2, pulled)
}

func TestFinder_ConcurrentScans(t *testing.T) {
	f := buildStringFinder(t, map[string][]string{
		"she": {"she"},
		"he":  {"he"},
		"sea": {"sea"},
		"ash": {"ash"},
	})
	const text = "she sells seashells by the seashore"
	want := slices.Collect(f.Find(Runes(text)))

	const workers = 8
	results := make([][]Match[string], workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = slices.Collect(f.Find(Runes(text)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.Equal(t, want, results[i])
	}
}

func TestFinder_KeywordLongerThanInput(t *testing.T) {
	f := buildStringFinder(t, map[string][]string{"abcdef": {"long"}})

	assert.Empty(t, slices.Collect(f.Find(Runes("abc"))))
}

func TestFinder_MatchEnd(t *testing.T) {
	m := Match[string]{Start: 4, Length: 3, IDs: []string{"x"}}
	assert.Equal(t, 7, m.End())
}
