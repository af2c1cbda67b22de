package retrie

import "container/list"

// LinkNodes computes the Aho-Corasick failure and dictionary links for
// every node by two breadth-first passes over the trie. The two passes run
// to completion before state flips to Linked, so no observable state
// change is visible unless both succeed.
//
// Calling LinkNodes on an already-Linked trie is a no-op.
func (t *Trie[T, V]) LinkNodes() {
	if t.state == Linked {
		return
	}
	t.linkFailures()
	t.linkDictionaries()
	t.state = Linked

	terminals := t.length
	t.log.Debug("link_nodes", "state", t.state.String(), "terminals", terminals)
}

// UnlinkNodes returns the trie to Unlinked, restoring mutability. Existing
// failure/dictionary link fields are left untouched (not cleared) but are
// disregarded by Search and by the next LinkNodes call, which overwrites
// them from scratch.
func (t *Trie[T, V]) UnlinkNodes() {
	t.state = Unlinked
}

// linkFailures is the classical BFS: depth-1 children of the root fail to
// the root; for a deeper node n = child of parent along token tok, walk
// parent's failure chain for the longest proper suffix of n's path that
// exists in the trie.
func (t *Trie[T, V]) linkFailures() {
	root := t.root
	root.failure = root
	root.depth = -1

	type item struct {
		parent *node[T, V]
		tok    T
		n      *node[T, V]
	}

	l := list.New()
	for tok, c := range root.children {
		c.failure = root
		c.depth = 0
		l.PushBack(item{root, tok, c})
	}

	for l.Len() > 0 {
		front := l.Remove(l.Front()).(item)
		n := front.n

		for tok, child := range n.children {
			child.depth = n.depth + 1
			l.PushBack(item{n, tok, child})

			f := n.failure
			for {
				if cand, ok := f.child(tok); ok && cand != child {
					child.failure = cand
					break
				}
				if f == root {
					child.failure = root
					break
				}
				f = f.failure
			}
		}
	}
}

// linkDictionaries is the second BFS: for every node, walk the failure
// chain until a terminal is found (dictionary) or the root is reached
// (no dictionary link). Chains are monotone (strictly decreasing depth)
// because failure always points to a strictly shallower node.
func (t *Trie[T, V]) linkDictionaries() {
	root := t.root

	l := list.New()
	l.PushBack(root)
	for l.Len() > 0 {
		n := l.Remove(l.Front()).(*node[T, V])

		ref := n.failure
		for ref != root && !ref.hasValue {
			ref = ref.failure
		}
		if ref != root {
			n.dict = ref
		} else {
			n.dict = nil
		}

		for _, child := range n.children {
			l.PushBack(child)
		}
	}
}
