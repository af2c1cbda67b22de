package retrie

import (
	"github.com/inconshreveable/log15"

	"github.com/haldrichardson/retrie/internal/logctx"
)

// State is a trie's link state: it is Unlinked (mutable, naive search)
// until LinkNodes freezes it into Linked (immutable, automaton search).
type State int

const (
	// Unlinked is the initial state: Insert/Delete succeed, Search uses
	// the naive per-position fallback.
	Unlinked State = iota
	// Linked is the frozen state: Insert/Delete fail with
	// ErrFrozenMutation, Search uses the Aho-Corasick automaton.
	Linked
)

func (s State) String() string {
	if s == Linked {
		return "linked"
	}
	return "unlinked"
}

// Trie is a generic, in-memory, sequence-indexed associative container
// keyed by finite sequences of T. The zero value is not usable; construct
// one with New.
type Trie[T comparable, V any] struct {
	root   *node[T, V]
	length int
	state  State
	log    log15.Logger
}

// New constructs an empty, Unlinked trie.
func New[T comparable, V any](opts ...Option[T, V]) *Trie[T, V] {
	t := &Trie[T, V]{
		root: newNode[T, V](),
		log:  logctx.New("retrie"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Pair is one key/value entry, used by FromPairs and Update.
type Pair[T comparable, V any] struct {
	Key   []T
	Value V
}

// FromPairs builds a trie from an initial set of key/value pairs, in the
// order given. Later entries overwrite earlier ones for the same key, just
// like repeated Insert calls would.
func FromPairs[T comparable, V any](pairs []Pair[T, V], opts ...Option[T, V]) (*Trie[T, V], error) {
	t := New(opts...)
	for _, p := range pairs {
		if err := t.Insert(p.Key, p.Value); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// FromStringMap is a convenience constructor for the common case of a
// byte-token (string-keyed) trie.
func FromStringMap[V any](m map[string]V, opts ...Option[byte, V]) (*Trie[byte, V], error) {
	t := New(opts...)
	for k, v := range m {
		if err := t.Insert([]byte(k), v); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// State reports whether the trie is Unlinked or Linked.
func (t *Trie[T, V]) State() State { return t.state }

// Len returns the cached number of terminal (stored) keys.
func (t *Trie[T, V]) Len() int { return t.length }

// Count recomputes the number of terminal keys by scanning the whole trie
// and refreshes the cached counter.
func (t *Trie[T, V]) Count() int {
	n := 0
	var walk func(*node[T, V])
	walk = func(cur *node[T, V]) {
		if cur.hasValue {
			n++
		}
		for _, c := range cur.children {
			walk(c)
		}
	}
	walk(t.root)
	t.length = n
	return n
}

// Insert stores value at key, creating any missing intermediate nodes.
// Re-inserting an existing key overwrites its value without changing Len.
// Fails with ErrInvalidKey for the empty key, or ErrFrozenMutation if the
// trie is Linked.
func (t *Trie[T, V]) Insert(key []T, value V) error {
	if t.state == Linked {
		return frozenMutationf("insert")
	}
	if len(key) == 0 {
		return invalidKeyf("insert")
	}
	cur := t.root
	for _, tok := range key {
		next, ok := cur.child(tok)
		if !ok {
			next = newNode[T, V]()
			cur.setChild(tok, next)
		}
		cur = next
	}
	if !cur.hasValue {
		t.length++
	}
	cur.value = value
	cur.hasValue = true
	return nil
}

// safeLookupNode walks the exact path for key and returns its node, or
// (nil, false) if any token along the way is missing. Used internally by
// Get/Contains/Items and exported indirectly through those.
func (t *Trie[T, V]) safeLookupNode(key []T) (*node[T, V], bool) {
	cur := t.root
	for _, tok := range key {
		next, ok := cur.child(tok)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Get returns the value stored at key, or ErrNotFound if key was never
// inserted (or was deleted).
func (t *Trie[T, V]) Get(key []T) (V, error) {
	var zero V
	n, ok := t.safeLookupNode(key)
	if !ok || !n.hasValue {
		return zero, notFoundf("get %v", key)
	}
	return n.value, nil
}

// GetOrDefault returns the value at key, or def if key is absent.
func (t *Trie[T, V]) GetOrDefault(key []T, def V) V {
	if v, err := t.Get(key); err == nil {
		return v
	}
	return def
}

// Contains reports whether key has a stored value.
func (t *Trie[T, V]) Contains(key []T) bool {
	n, ok := t.safeLookupNode(key)
	return ok && n.hasValue
}

// SetDefault returns the existing value at key if present; otherwise it
// inserts def at key and returns def. The empty-key check only fires when
// SetDefault actually needs to write, via the underlying Insert call.
func (t *Trie[T, V]) SetDefault(key []T, def V) (V, error) {
	if v, err := t.Get(key); err == nil {
		return v, nil
	}
	if err := t.Insert(key, def); err != nil {
		var zero V
		return zero, err
	}
	return def, nil
}

// Pop removes key and returns its value, or ErrNotFound if absent.
func (t *Trie[T, V]) Pop(key []T) (V, error) {
	v, err := t.Get(key)
	if err != nil {
		return v, err
	}
	if err := t.Delete(key); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

// Delete removes the value at key and prunes any interior chain that
// becomes both childless and non-terminal back toward the root. Deleting a
// key whose node exists only as a non-terminal interior path (a prefix of
// other stored keys, but itself unset) is ErrNotFound, same as deleting a
// key that was never inserted.
func (t *Trie[T, V]) Delete(key []T) error {
	if t.state == Linked {
		return frozenMutationf("delete")
	}
	if len(key) == 0 {
		return invalidKeyf("delete")
	}

	path := make([]*node[T, V], 0, len(key)+1)
	path = append(path, t.root)
	cur := t.root
	for _, tok := range key {
		next, ok := cur.child(tok)
		if !ok {
			return notFoundf("delete %v", key)
		}
		path = append(path, next)
		cur = next
	}
	if !cur.hasValue {
		return notFoundf("delete %v", key)
	}

	var zero V
	cur.value = zero
	cur.hasValue = false
	t.length--

	for i := len(path) - 1; i > 0; i-- {
		n := path[i]
		if n.isLeaf() && !n.hasValue {
			delete(path[i-1].children, key[i-1])
		} else {
			break
		}
	}
	return nil
}

// Clear resets the trie to empty and Unlinked.
func (t *Trie[T, V]) Clear() {
	t.root = newNode[T, V]()
	t.length = 0
	t.state = Unlinked
}

// Copy deep-copies the trie's node structure (value objects are shared, a
// shallow copy on values). The copy is always Unlinked regardless of the
// source's state, so it can be mutated and independently linked.
func (t *Trie[T, V]) Copy() *Trie[T, V] {
	return &Trie[T, V]{
		root:   t.root.clone(),
		length: t.length,
		state:  Unlinked,
		log:    t.log,
	}
}

// Update inserts every pair from pairs, in order.
func (t *Trie[T, V]) Update(pairs []Pair[T, V]) error {
	for _, p := range pairs {
		if err := t.Insert(p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether t and other store exactly the same set of keys,
// each mapped to an equal value under eq. Link state is not compared: a
// Linked trie and its Unlinked Copy are Equal.
func (t *Trie[T, V]) Equal(other *Trie[T, V], eq func(a, b V) bool) bool {
	if t.length != other.length {
		return false
	}
	items, err := t.Items(nil)
	if err != nil {
		return false
	}
	for k, v := range items {
		ov, err := other.Get(k)
		if err != nil || !eq(v, ov) {
			return false
		}
	}
	return true
}
