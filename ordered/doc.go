// Package ordered provides owning, allocation-amortized set and map
// containers on top of the intrusive wavl tree core.
//
// The core package only manipulates node headers the caller already owns;
// it never allocates and never compares keys. ordered closes that gap for
// the common case of wanting a conventional, value-oriented container: it
// allocates node storage from a recycled arena, drives comparisons itself,
// and exposes Insert/Delete/Contains/Range style methods instead of
// intrusive link/fixup calls.
package ordered
