package retrie

import "github.com/inconshreveable/log15"

// Option configures a Trie at construction time.
type Option[T comparable, V any] func(*Trie[T, V])

// WithLogger attaches a log15.Logger used for build/link diagnostics
// (LinkNodes link state and terminal count). It never affects lookup or search
// results.
func WithLogger[T comparable, V any](l log15.Logger) Option[T, V] {
	return func(t *Trie[T, V]) {
		t.log = l
	}
}
