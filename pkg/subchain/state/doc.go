// Package state provides stateful bindings over the SubChain API clients.
//
// Each store wraps a resource client with a mutex-guarded snapshot of the
// last fetched data plus loading, mutating, and error flags, so callers can
// render consistent views without tracking request lifecycles themselves.
// Mutations apply the server-returned entity to the local snapshot
// immediately; refetches replace it wholesale and discard results that a
// newer refetch has superseded.
//
// Stores are safe for concurrent use. They never auto-load: call Load (or
// Refetch) explicitly after construction.
package state
