// Package alloc provides the allocator capability used by every owning
// bytekit container.
//
// # Overview
//
// Owning types (arraylist.List, bytebuf.Buffer) take an Allocator at
// construction and route every acquisition and release through it. A nil
// Allocator on a container means the container does not own its storage:
// static lists and buffers built over caller memory never grow or free.
//
// # Allocator Interface
//
//   - Acquire(size): reserve size bytes, or fail with types.ErrOutOfMemory
//   - Release(size): return size bytes previously acquired
//
// Memory itself comes from the Go heap; the allocator decides whether a
// request may proceed and keeps the books. Make and Free are the typed entry
// points the containers use, so sizing is overflow-checked in one place.
//
// # Implementations
//
// Default: the Go heap with a per-request ceiling (MaxAcquire).
//
// Limited: a byte budget layered over a parent allocator. Accounting uses
// atomics, so one Limited may be shared by containers owned by different
// goroutines. The containers themselves are still single-owner.
//
// # Usage Example
//
//	budget := alloc.NewLimited(1<<20, alloc.Default)
//	var b bytebuf.Buffer
//	if err := b.Init(budget, 4096); err != nil {
//	    return err
//	}
//	defer b.CleanUp()
package alloc
