package retrie

import "iter"

// Match is one occurrence reported by Search: the subsequence
// text[Start:End] equals some stored key, whose value is Value. Trivial is
// set only for the empty-text sentinel (Start == End == 0, no Value).
type Match[V any] struct {
	Start   int
	End     int
	Value   V
	Trivial bool
}

// Search finds every occurrence of a stored key in text. On a Linked trie
// it uses the Aho-Corasick automaton (O(len(text) + matches) node visits);
// on an Unlinked trie it falls back to the naive algorithm (O(len(text) *
// longest key)). Both report the same set of matches. The Linked path
// additionally orders results by strictly non-decreasing End, with ties
// broken by current-node-terminal before dictionary-chain terminals (see
// linkedSearch).
//
// Calling Search with an empty text yields exactly one sentinel Match with
// Trivial set, then stops, distinguishing "empty input" from "no matches".
func (t *Trie[T, V]) Search(text []T) iter.Seq[Match[V]] {
	if t.state == Linked {
		return t.linkedSearch(text)
	}
	return t.naiveSearch(text)
}

func (t *Trie[T, V]) linkedSearch(text []T) iter.Seq[Match[V]] {
	return func(yield func(Match[V]) bool) {
		if len(text) == 0 {
			yield(Match[V]{Trivial: true})
			return
		}

		root := t.root
		cur := root
		for i, tok := range text {
			for {
				if _, ok := cur.child(tok); ok || cur == root {
					break
				}
				cur = cur.failure
			}
			if next, ok := cur.child(tok); ok {
				cur = next
			} else {
				cur = root
			}

			if cur.hasValue {
				if !yield(Match[V]{Start: i - cur.depth, End: i + 1, Value: cur.value}) {
					return
				}
			}
			for d := cur.dict; d != nil; d = d.dict {
				if !yield(Match[V]{Start: i - d.depth, End: i + 1, Value: d.value}) {
					return
				}
			}
		}
	}
}

// naiveSearch walks from every starting index and emits every terminal
// encountered on the way, used when the trie is Unlinked.
func (t *Trie[T, V]) naiveSearch(text []T) iter.Seq[Match[V]] {
	return func(yield func(Match[V]) bool) {
		if len(text) == 0 {
			yield(Match[V]{Trivial: true})
			return
		}
		for i := range text {
			cur := t.root
			for j := i; j < len(text); j++ {
				next, ok := cur.child(text[j])
				if !ok {
					break
				}
				cur = next
				if cur.hasValue {
					if !yield(Match[V]{Start: i, End: j + 1, Value: cur.value}) {
						return
					}
				}
			}
		}
	}
}
