package alloc

import (
	"fmt"
	"strconv"

	"github.com/joshuapare/bytekit/pkg/types"
)

// MaxAcquire is the largest single request Default accepts (256 GiB on 64-bit
// platforms, 1 GiB on 32-bit). Anything larger is reported as out of memory
// instead of crashing the runtime.
const MaxAcquire = 1 << (strconv.IntSize/4 + 22)

// Default is the Go heap allocator.
var Default Allocator = heapAllocator{}

type heapAllocator struct{}

func (heapAllocator) Acquire(size int) error {
	switch {
	case size < 0:
		return fmt.Errorf("alloc: acquire %d bytes: %w", size, types.ErrInvalidArgument)
	case size > MaxAcquire:
		return fmt.Errorf("alloc: acquire %d bytes: %w", size, types.ErrOutOfMemory)
	}
	return nil
}

func (heapAllocator) Release(int) {}
