// Package retrie implements a family of in-memory, sequence-indexed
// associative containers: a generic token trie (insert/get/delete/prefix
// enumeration), an Aho-Corasick automaton built in place on top of that
// trie (failure and dictionary suffix links, linear-time multi-pattern
// search), and a regex projector that compiles the stored key set into a
// single alternation pattern.
//
// A Trie starts out Unlinked: children may be inserted and deleted freely,
// and Search falls back to a naive per-position walk. Calling LinkNodes
// computes the Aho-Corasick failure and dictionary links by breadth-first
// traversal and freezes the trie; Insert and Delete then fail with
// ErrFrozenMutation until UnlinkNodes is called.
//
//	t := retrie.New[byte, string]()
//	t.Insert([]byte("he"), "pronoun")
//	t.Insert([]byte("she"), "pronoun")
//	t.Insert([]byte("his"), "possessive")
//	t.LinkNodes()
//	for m := range t.Search([]byte("ushers")) {
//		fmt.Println(m.Start, m.End, m.Value)
//	}
package retrie
