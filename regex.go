package retrie

import (
	"sort"
	"strings"
)

// ToRegex compiles the stored key set of a byte-token trie into a minimal
// alternation pattern matching exactly those keys as whole substrings.
// Restricted to Trie[byte, V] since Go can't constrain a method to one
// instantiation of its receiver's type parameter; exposed as a free
// function instead.
//
// Algorithm (post-order): a leaf contributes "", and so does any terminal
// node regardless of its children — a key that is a prefix of another
// absorbs the longer one, since matching the shorter key already satisfies
// "some stored key matches here" (e.g. {ab, abc, abcdef, f} -> "ab|f"; abc
// and abcdef never appear). A node whose children are all leaves
// contributes a character class (or a bare character for exactly one). A
// mixed node groups terminal-sibling characters into that class alongside
// non-terminal siblings' "token + subpattern" alternatives. The root's
// alternatives are joined with "|" in lexicographic order, ungrouped;
// non-root internal nodes group with "(?:...|...)".
func ToRegex[V any](t *Trie[byte, V]) string {
	return regexFor(t.root, true)
}

func regexFor[V any](n *node[byte, V], isRoot bool) string {
	if n.isLeaf() || n.hasValue {
		return ""
	}

	type child struct {
		tok     byte
		pattern string
	}
	children := make([]child, 0, len(n.children))
	for tok, c := range n.children {
		children = append(children, child{tok, regexFor(c, false)})
	}
	sort.Slice(children, func(i, j int) bool { return children[i].tok < children[j].tok })

	var terminalToks []byte
	var innerPatterns []string
	for _, c := range children {
		if c.pattern == "" {
			terminalToks = append(terminalToks, c.tok)
		} else {
			innerPatterns = append(innerPatterns, string(c.tok)+c.pattern)
		}
	}

	switch len(terminalToks) {
	case 0:
	case 1:
		innerPatterns = append(innerPatterns, string(terminalToks[0]))
	default:
		innerPatterns = append(innerPatterns, "["+string(terminalToks)+"]")
	}

	sort.Strings(innerPatterns)
	switch {
	case len(innerPatterns) == 1:
		return innerPatterns[0]
	case isRoot:
		return strings.Join(innerPatterns, "|")
	default:
		return "(?:" + strings.Join(innerPatterns, "|") + ")"
	}
}
