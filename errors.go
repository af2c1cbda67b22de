package retrie

import "golang.org/x/xerrors"

// Sentinel errors. Callers should compare against these with errors.Is;
// wrapped instances below carry the offending key or operation for
// diagnostics.
var (
	// ErrNotFound is returned by Get, Delete, Pop, and Items when the
	// requested key or prefix has no corresponding node in the trie.
	ErrNotFound = xerrors.New("retrie: key not found")

	// ErrInvalidKey is returned by Insert and Delete when given the empty
	// key; a stored key must have length >= 1.
	ErrInvalidKey = xerrors.New("retrie: empty key is not a valid storage key")

	// ErrFrozenMutation is returned by Insert and Delete once the trie has
	// been linked via LinkNodes; call UnlinkNodes to restore mutability.
	ErrFrozenMutation = xerrors.New("retrie: trie is linked; mutations are rejected")
)

func notFoundf(format string, args ...any) error {
	return xerrors.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func invalidKeyf(format string, args ...any) error {
	return xerrors.Errorf(format+": %w", append(args, ErrInvalidKey)...)
}

func frozenMutationf(format string, args ...any) error {
	return xerrors.Errorf(format+": %w", append(args, ErrFrozenMutation)...)
}
