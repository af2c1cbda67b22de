package retrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFailureLinkCorrectness(t *testing.T) {
	keys := []string{"a", "ab", "abc", "abd", "abcd", "bbbbac", "bcd", "c", "efgh"}
	tr, err := FromPairs(keyList(keys...))
	require.NoError(t, err)
	tr.LinkNodes()

	node := func(key string) *node[byte, string] {
		n, ok := tr.safeLookupNode([]byte(key))
		require.True(t, ok, key)
		return n
	}

	require.Same(t, tr.root, tr.root.failure, "root fails to itself")
	require.Same(t, node("b"), node("ab").failure)
	require.Same(t, node("bcd"), node("abcd").failure)
	require.Same(t, node("c"), node("bbbbac").failure)
	require.Same(t, tr.root, node("efgh").failure)
}

func TestDictionaryLinkCorrectness(t *testing.T) {
	keys := []string{"a", "ab", "abcd", "ac", "bbac", "bc"}
	tr, err := FromPairs(keyList(keys...))
	require.NoError(t, err)
	tr.LinkNodes()

	node := func(key string) *node[byte, string] {
		n, ok := tr.safeLookupNode([]byte(key))
		require.True(t, ok, key)
		return n
	}

	require.Nil(t, tr.root.dict)
	require.Nil(t, node("ab").dict)
	require.Same(t, node("bc"), node("abc").dict)
	require.Nil(t, node("abcd").dict)
	require.Same(t, node("ac"), node("bbac").dict)
}

func TestLinkedSearchScenario(t *testing.T) {
	keys := []string{"a", "abc", "abd", "abcd", "bcd", "c"}
	tr, err := FromPairs(keyList(keys...))
	require.NoError(t, err)
	tr.LinkNodes()

	type want struct {
		start, end int
		value      string
	}
	expected := []want{
		{0, 1, "a"},
		{2, 3, "a"},
		{2, 5, "abc"},
		{4, 5, "c"},
		{2, 6, "abcd"},
		{3, 6, "bcd"},
		{7, 8, "c"},
	}

	var got []want
	for m := range tr.Search([]byte("ababcdecfgh")) {
		got = append(got, want{m.Start, m.End, m.Value})
	}
	require.Equal(t, expected, got)
}

func TestSearchEmptyTextSentinel(t *testing.T) {
	tr := New[byte, int]()
	require.NoError(t, tr.Insert([]byte("a"), 1))
	tr.LinkNodes()

	var got []Match[int]
	for m := range tr.Search(nil) {
		got = append(got, m)
	}
	require.Len(t, got, 1)
	require.True(t, got[0].Trivial)
	require.Equal(t, 0, got[0].Start)
	require.Equal(t, 0, got[0].End)
}

func TestSearchEmptyTextSentinelUnlinked(t *testing.T) {
	tr := New[byte, int]()
	require.NoError(t, tr.Insert([]byte("a"), 1))

	var got []Match[int]
	for m := range tr.Search(nil) {
		got = append(got, m)
	}
	require.Len(t, got, 1)
	require.True(t, got[0].Trivial)
}

func TestSearchEquivalenceLinkedVsNaive(t *testing.T) {
	keys := []string{"a", "abc", "abd", "abcd", "bcd", "c"}
	text := []byte("ababcdecfgh")

	unlinked, err := FromPairs(keyList(keys...))
	require.NoError(t, err)
	linked, err := FromPairs(keyList(keys...))
	require.NoError(t, err)
	linked.LinkNodes()

	type tuple struct {
		start, end int
		value      string
	}
	collect := func(tr *Trie[byte, string]) map[tuple]int {
		out := map[tuple]int{}
		for m := range tr.Search(text) {
			out[tuple{m.Start, m.End, m.Value}]++
		}
		return out
	}

	require.Equal(t, collect(unlinked), collect(linked))
}

func TestSearchOverlappingMatchesAreNotDeduplicated(t *testing.T) {
	tr := New[byte, int]()
	require.NoError(t, tr.Insert([]byte("a"), 1))
	require.NoError(t, tr.Insert([]byte("aa"), 2))
	tr.LinkNodes()

	var ends []int
	for m := range tr.Search([]byte("aaa")) {
		ends = append(ends, m.End)
	}
	// "a" matches at every position (3), "aa" matches overlapping at two
	// positions (2): 5 total matches over "aaa".
	require.Len(t, ends, 5)
}
