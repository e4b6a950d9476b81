package alloc

import (
	"fmt"
	"sync/atomic"

	"github.com/joshuapare/bytekit/pkg/types"
)

// Limited enforces a byte budget on top of a parent allocator.
type Limited struct {
	parent Allocator
	limit  int64
	inUse  atomic.Int64
	peak   atomic.Int64
}

// NewLimited returns an allocator that refuses requests once limit bytes are
// outstanding. A nil parent means Default.
func NewLimited(limit int64, parent Allocator) *Limited {
	if parent == nil {
		parent = Default
	}
	return &Limited{parent: parent, limit: limit}
}

// Acquire reserves size bytes against the budget and then against the parent.
func (l *Limited) Acquire(size int) error {
	if size < 0 {
		return fmt.Errorf("alloc: acquire %d bytes: %w", size, types.ErrInvalidArgument)
	}
	want := int64(size)
	for {
		cur := l.inUse.Load()
		if want > l.limit-cur {
			return fmt.Errorf("alloc: acquire %d bytes with %d of %d in use: %w",
				size, cur, l.limit, types.ErrOutOfMemory)
		}
		if l.inUse.CompareAndSwap(cur, cur+want) {
			l.notePeak(cur + want)
			break
		}
	}
	if err := l.parent.Acquire(size); err != nil {
		l.inUse.Add(-want)
		return err
	}
	return nil
}

// Release returns size bytes to the budget and the parent.
func (l *Limited) Release(size int) {
	if size <= 0 {
		return
	}
	l.parent.Release(size)
	l.inUse.Add(-int64(size))
}

// InUse reports the bytes currently acquired.
func (l *Limited) InUse() int64 { return l.inUse.Load() }

// Peak reports the high-water mark of InUse.
func (l *Limited) Peak() int64 { return l.peak.Load() }

// Limit reports the configured budget.
func (l *Limited) Limit() int64 { return l.limit }

func (l *Limited) notePeak(v int64) {
	for {
		p := l.peak.Load()
		if v <= p || l.peak.CompareAndSwap(p, v) {
			return
		}
	}
}
