// Package testutil holds helpers shared by the bytekit package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/joshuapare/bytekit/pkg/types"
)

// Allocator is a bookkeeping allocator for tests. It counts acquisitions and
// releases, tracks outstanding bytes, and can be told to fail.
//
// Example:
//
//	a := testutil.NewAllocator()
//	a.FailAfter(1) // first Acquire succeeds, the second fails
//	...
//	a.RequireNoLeaks(t)
type Allocator struct {
	acquires    int
	releases    int
	outstanding int
	failAfter   int // successful acquisitions allowed before failing; -1 = never
}

// NewAllocator returns an Allocator that never fails.
func NewAllocator() *Allocator {
	return &Allocator{failAfter: -1}
}

// FailAfter makes every Acquire after the first n successful ones fail.
// n < 0 disables failure injection.
func (a *Allocator) FailAfter(n int) {
	a.failAfter = n
}

// Acquire records a request for size bytes.
func (a *Allocator) Acquire(size int) error {
	if size < 0 {
		return fmt.Errorf("testutil: acquire %d bytes: %w", size, types.ErrInvalidArgument)
	}
	if a.failAfter >= 0 && a.acquires >= a.failAfter {
		return fmt.Errorf("testutil: acquire %d bytes (injected): %w", size, types.ErrOutOfMemory)
	}
	a.acquires++
	a.outstanding += size
	return nil
}

// Release records size bytes being handed back.
func (a *Allocator) Release(size int) {
	a.releases++
	a.outstanding -= size
}

// Acquires reports the number of successful Acquire calls.
func (a *Allocator) Acquires() int { return a.acquires }

// Releases reports the number of Release calls.
func (a *Allocator) Releases() int { return a.releases }

// Outstanding reports bytes acquired but not yet released.
func (a *Allocator) Outstanding() int { return a.outstanding }

// RequireNoLeaks fails the test when bytes are still outstanding.
func (a *Allocator) RequireNoLeaks(t testing.TB) {
	t.Helper()
	if a.outstanding != 0 {
		t.Fatalf("allocator leak: %d bytes outstanding (%d acquires, %d releases)",
			a.outstanding, a.acquires, a.releases)
	}
}
