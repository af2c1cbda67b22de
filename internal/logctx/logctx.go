// Package logctx hands out per-subsystem loggers instead of sharing a
// single global logger. It never sits on a data-path decision: every call
// here is diagnostic.
package logctx

import "github.com/inconshreveable/log15"

// New returns a logger tagged with the given subsystem name. Output is
// discarded by default (a bare data structure library has no business
// writing to stderr unless a caller opts in); use SetHandler to attach a
// real log15.Handler.
func New(pkg string) log15.Logger {
	l := log15.New("pkg", pkg)
	l.SetHandler(log15.DiscardHandler())
	return l
}
