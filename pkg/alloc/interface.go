package alloc

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/bytekit/internal/buf"
	"github.com/joshuapare/bytekit/pkg/types"
)

// Allocator is the memory capability owning containers draw from.
//
// Implementations must be safe to call with size 0. Release is only ever
// called with a size previously passed to a successful Acquire.
type Allocator interface {
	// Acquire reserves size bytes. It returns an error wrapping
	// types.ErrOutOfMemory when the request cannot be satisfied.
	Acquire(size int) error

	// Release returns size bytes to the allocator.
	Release(size int)
}

// Make acquires room for n values of T from a and returns a zeroed slice with
// len and cap exactly n. n == 0 returns a nil slice without touching a.
func Make[T any](a Allocator, n int) ([]T, error) {
	if a == nil || n < 0 {
		return nil, fmt.Errorf("alloc: make %d items: %w", n, types.ErrInvalidArgument)
	}
	if n == 0 {
		return nil, nil
	}
	size, ok := buf.SizeOf(n, SizeOf[T]())
	if !ok {
		return nil, fmt.Errorf("alloc: make %d items: %w", n, types.ErrOutOfMemory)
	}
	if err := a.Acquire(size); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// Free releases s back to a. The byte count is derived from len(s), which
// must match the n passed to Make.
func Free[T any](a Allocator, s []T) {
	if a == nil || len(s) == 0 {
		return
	}
	a.Release(len(s) * SizeOf[T]())
}

// SizeOf returns the in-memory size of a T in bytes.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
