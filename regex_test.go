package retrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToRegex(t *testing.T) {
	cases := []struct {
		keys []string
		want string
	}{
		{[]string{"ab", "ac"}, "a[bc]"},
		{[]string{"abc", "ac"}, "a(?:bc|c)"},
		{[]string{"aabc", "aab", "acd"}, "a(?:ab|cd)"},
		{[]string{"ab", "ac", "de", "f"}, "a[bc]|de|f"},
		{[]string{"ab", "abc", "abcdef", "f"}, "ab|f"},
	}

	for _, tc := range cases {
		tr, err := FromPairs(keyList(tc.keys...))
		require.NoError(t, err)
		require.Equal(t, tc.want, ToRegex(tr), "keys=%v", tc.keys)
	}
}
