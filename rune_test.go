package retrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Unicode code points as tokens, so a multi-byte rune can never straddle a
// match boundary the way raw bytes could.
func TestRuneKeyedTrie(t *testing.T) {
	tr := New[rune, string]()
	require.NoError(t, tr.Insert([]rune("日本"), "Japan"))
	require.NoError(t, tr.Insert([]rune("日本語"), "Japanese"))
	tr.LinkNodes()

	var got []string
	for m := range tr.Search([]rune("これは日本語です")) {
		got = append(got, m.Value)
	}
	require.Equal(t, []string{"Japan", "Japanese"}, got)
}
