// Package secmem provides platform helpers for memory that may hold secrets:
// a zeroing primitive the compiler must not elide, and page locking that keeps
// the bytes out of swap.
package secmem

import "runtime"

// Zero overwrites b with zero bytes. The store is kept alive past the call so
// it cannot be dropped as dead.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	runtime.KeepAlive(b)
}
