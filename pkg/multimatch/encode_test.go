package multimatch

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_RoundTrip(t *testing.T) {
	f := buildStringFinder(t, map[string][]string{
		"she": {"she"},
		"he":  {"he"},
		"sea": {"sea"},
		"ash": {"ash"},
	})
	const text = "she sells seashells by the seashore"
	want := slices.Collect(f.Find(Runes(text)))

	var buf bytes.Buffer
	require.NoError(t, f.Encode(&buf))

	decoded, err := DecodeFinder[rune, string](&buf)
	require.NoError(t, err)

	require.Len(t, decoded.vertices, len(f.vertices))
	got := slices.Collect(decoded.Find(Runes(text)))
	assert.Equal(t, want, got)
}

func TestEncode_RoundTripIntIDs(t *testing.T) {
	ms := New[byte, int]()
	require.NoError(t, ms.Register(Bytes([]byte("GET ")), 1))
	require.NoError(t, ms.Register(Bytes([]byte("POST ")), 2))

	f, err := ms.BuildFinder()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Encode(&buf))

	decoded, err := DecodeFinder[byte, int](&buf)
	require.NoError(t, err)

	input := []byte("GET /index POST /form")
	assert.Equal(t,
		slices.Collect(f.FindSlice(input)),
		slices.Collect(decoded.FindSlice(input)))
}

func TestDecodeFinder_Garbage(t *testing.T) {
	_, err := DecodeFinder[rune, string](bytes.NewReader([]byte("not a finder")))
	assert.Error(t, err)
}

func TestDecodeFinder_EmptyStream(t *testing.T) {
	_, err := DecodeFinder[rune, string](bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestStringFinder_EncodeRoundTrip(t *testing.T) {
	search := NewStringSearch[string]()
	require.NoError(t, search.Register("sea", "sea"))
	require.NoError(t, search.Register("ash", "ash"))

	f, err := search.BuildFinder()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Encode(&buf))

	decoded, err := DecodeStringFinder[string](&buf)
	require.NoError(t, err)

	const text = "seashore ashes"
	assert.Equal(t,
		slices.Collect(f.Find(text)),
		slices.Collect(decoded.Find(text)))
}
