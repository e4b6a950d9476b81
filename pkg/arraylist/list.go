package arraylist

import (
	"fmt"
	"iter"
	"slices"

	"github.com/joshuapare/bytekit/internal/buf"
	"github.com/joshuapare/bytekit/pkg/alloc"
	"github.com/joshuapare/bytekit/pkg/types"
)

// List is a growable array of T.
//
// Invariants, whenever ItemSize() > 0:
//   - Len() <= Capacity()
//   - storage is nil iff CurrentSize() == 0
//
// ItemSize() == 0 iff the list is zero or has been cleaned up.
type List[T any] struct {
	alloc    alloc.Allocator // nil for static lists
	data     []T             // len(data) is the slot count
	length   int
	itemSize int
}

// New returns a dynamic list with room for initialItems items.
func New[T any](a alloc.Allocator, initialItems int) (*List[T], error) {
	l := &List[T]{}
	if err := l.Init(a, initialItems); err != nil {
		return nil, err
	}
	return l, nil
}

// NewStatic returns a list over storage. See InitStatic.
func NewStatic[T any](storage []T) (*List[T], error) {
	l := &List[T]{}
	if err := l.InitStatic(storage); err != nil {
		return nil, err
	}
	return l, nil
}

// Init makes l a dynamic list with room for initialItems items acquired from
// a. initialItems == 0 allocates nothing. On failure l is left in the zero
// state.
func (l *List[T]) Init(a alloc.Allocator, initialItems int) error {
	*l = List[T]{}
	itemSize := alloc.SizeOf[T]()
	if a == nil || initialItems < 0 || itemSize == 0 {
		return fmt.Errorf("arraylist: init %d items of %d bytes: %w",
			initialItems, itemSize, types.ErrInvalidArgument)
	}
	if _, ok := buf.SizeOf(initialItems, itemSize); !ok {
		return fmt.Errorf("arraylist: init %d items: %w", initialItems, types.ErrListExceededMaxSize)
	}
	data, err := alloc.Make[T](a, initialItems)
	if err != nil {
		return fmt.Errorf("arraylist: init: %w", err)
	}
	*l = List[T]{alloc: a, data: data, itemSize: itemSize}
	return nil
}

// InitStatic makes l a static list over storage. The capacity is
// len(storage), the length starts at 0, and l never reallocates or frees
// storage.
func (l *List[T]) InitStatic(storage []T) error {
	*l = List[T]{}
	itemSize := alloc.SizeOf[T]()
	if len(storage) == 0 || itemSize == 0 {
		return fmt.Errorf("arraylist: init static: %w", types.ErrInvalidArgument)
	}
	if _, ok := buf.SizeOf(len(storage), itemSize); !ok {
		return fmt.Errorf("arraylist: init static: %w", types.ErrListExceededMaxSize)
	}
	*l = List[T]{data: storage[:len(storage):len(storage)], itemSize: itemSize}
	return nil
}

// CleanUp releases owned storage and resets l to the zero state. It is safe on
// a zero, static, or already cleaned-up list.
func (l *List[T]) CleanUp() {
	if l == nil {
		return
	}
	if l.alloc != nil && l.data != nil {
		alloc.Free(l.alloc, l.data)
	}
	*l = List[T]{}
}

// Len returns the number of live items.
func (l *List[T]) Len() int { return l.length }

// Capacity returns the number of allocated slots.
func (l *List[T]) Capacity() int { return len(l.data) }

// ItemSize returns the size of one item in bytes, or 0 for a zero list.
func (l *List[T]) ItemSize() int { return l.itemSize }

// CurrentSize returns the allocated size in bytes.
func (l *List[T]) CurrentSize() int { return len(l.data) * l.itemSize }

// IsStatic reports whether l wraps caller storage.
func (l *List[T]) IsStatic() bool { return l.itemSize != 0 && l.alloc == nil }

// Allocator returns the allocator l draws from, or nil for static lists.
func (l *List[T]) Allocator() alloc.Allocator { return l.alloc }

// Items returns the live items. The slice aliases l's storage and is
// invalidated by any call that grows, shrinks, or cleans up l.
func (l *List[T]) Items() []T { return l.data[:l.length:l.length] }

// All iterates over the live items in index order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.length; i++ {
			if !yield(i, l.data[i]) {
				return
			}
		}
	}
}

// GetAt returns the item at index.
func (l *List[T]) GetAt(index int) (T, error) {
	var zero T
	if err := l.checkIndex(index); err != nil {
		return zero, fmt.Errorf("arraylist: get %d: %w", index, err)
	}
	return l.data[index], nil
}

// GetAtPtr returns a pointer to the item at index. The pointer is invalidated
// by any call that reallocates l.
func (l *List[T]) GetAtPtr(index int) (*T, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, fmt.Errorf("arraylist: get %d: %w", index, err)
	}
	return &l.data[index], nil
}

// Front returns the first item.
func (l *List[T]) Front() (T, error) {
	return l.GetAt(0)
}

// Back returns the last item.
func (l *List[T]) Back() (T, error) {
	return l.GetAt(l.length - 1)
}

// SetAt stores v at index. An index at or past Len() extends the list to
// index+1 items, growing a dynamic list as needed; the gap is zero-valued.
func (l *List[T]) SetAt(index int, v T) error {
	if l.itemSize == 0 {
		return fmt.Errorf("arraylist: set %d: %w", index, types.ErrInvalidArgument)
	}
	if index < 0 {
		return fmt.Errorf("arraylist: set %d: %w", index, types.ErrOutOfBounds)
	}
	if err := l.ensureCapacity(index); err != nil {
		return fmt.Errorf("arraylist: set %d: %w", index, err)
	}
	l.data[index] = v
	if index >= l.length {
		l.length = index + 1
	}
	return nil
}

// PushBack appends v.
func (l *List[T]) PushBack(v T) error {
	if l.itemSize == 0 {
		return fmt.Errorf("arraylist: push back: %w", types.ErrInvalidArgument)
	}
	if err := l.ensureCapacity(l.length); err != nil {
		return fmt.Errorf("arraylist: push back: %w", err)
	}
	l.data[l.length] = v
	l.length++
	return nil
}

// PushFront inserts v before the first item.
func (l *List[T]) PushFront(v T) error {
	return l.Insert(0, v)
}

// Insert places v at index, shifting later items up. index may equal Len().
func (l *List[T]) Insert(index int, v T) error {
	if l.itemSize == 0 {
		return fmt.Errorf("arraylist: insert %d: %w", index, types.ErrInvalidArgument)
	}
	if index < 0 || index > l.length {
		return fmt.Errorf("arraylist: insert %d into %d items: %w", index, l.length, types.ErrOutOfBounds)
	}
	if err := l.ensureCapacity(l.length); err != nil {
		return fmt.Errorf("arraylist: insert %d: %w", index, err)
	}
	copy(l.data[index+1:l.length+1], l.data[index:l.length])
	l.data[index] = v
	l.length++
	return nil
}

// PopBack removes the last item.
func (l *List[T]) PopBack() error {
	if l.length == 0 {
		return fmt.Errorf("arraylist: pop back: %w", types.ErrOutOfBounds)
	}
	l.length--
	clear(l.data[l.length : l.length+1])
	return nil
}

// PopFront removes the first item.
func (l *List[T]) PopFront() error {
	if l.length == 0 {
		return fmt.Errorf("arraylist: pop front: %w", types.ErrOutOfBounds)
	}
	l.PopFrontN(1)
	return nil
}

// PopFrontN removes up to n leading items, shifting the rest down. Asking for
// more than Len() removes everything.
func (l *List[T]) PopFrontN(n int) {
	if n <= 0 || l.length == 0 {
		return
	}
	if n >= l.length {
		l.Clear()
		return
	}
	copy(l.data, l.data[n:l.length])
	clear(l.data[l.length-n : l.length])
	l.length -= n
}

// Erase removes the item at index, shifting later items down.
func (l *List[T]) Erase(index int) error {
	if err := l.checkIndex(index); err != nil {
		return fmt.Errorf("arraylist: erase %d: %w", index, err)
	}
	copy(l.data[index:], l.data[index+1:l.length])
	l.length--
	clear(l.data[l.length : l.length+1])
	return nil
}

// Clear drops every item but keeps the storage.
func (l *List[T]) Clear() {
	clear(l.data[:l.length])
	l.length = 0
}

// Swap exchanges the items at i and j.
func (l *List[T]) Swap(i, j int) error {
	if err := l.checkIndex(i); err != nil {
		return fmt.Errorf("arraylist: swap %d,%d: %w", i, j, err)
	}
	if err := l.checkIndex(j); err != nil {
		return fmt.Errorf("arraylist: swap %d,%d: %w", i, j, err)
	}
	l.data[i], l.data[j] = l.data[j], l.data[i]
	return nil
}

// SwapContents exchanges the entire state of l and other, allocators included.
func (l *List[T]) SwapContents(other *List[T]) {
	*l, *other = *other, *l
}

// Sort orders the live items by cmp.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	slices.SortFunc(l.data[:l.length], cmp)
}

// Copy replaces dst's items with l's. A dynamic dst that is too small is
// reallocated to exactly l.Len() slots; a static dst that is too small fails
// with types.ErrDestTooSmall and is left unchanged.
func (l *List[T]) Copy(dst *List[T]) error {
	if dst == nil || dst.itemSize == 0 {
		return fmt.Errorf("arraylist: copy: %w", types.ErrInvalidArgument)
	}
	if l.length > len(dst.data) {
		if dst.alloc == nil {
			return fmt.Errorf("arraylist: copy %d items into %d slots: %w",
				l.length, len(dst.data), types.ErrDestTooSmall)
		}
		grown, err := alloc.Make[T](dst.alloc, l.length)
		if err != nil {
			return fmt.Errorf("arraylist: copy: %w", err)
		}
		alloc.Free(dst.alloc, dst.data)
		dst.data = grown
	}
	copy(dst.data, l.data[:l.length])
	if dst.length > l.length {
		clear(dst.data[l.length:dst.length])
	}
	dst.length = l.length
	return nil
}

// ShrinkToFit reallocates storage to exactly Len() slots. An empty list ends
// up with no storage at all. On allocation failure l is unchanged. Static
// lists cannot shrink.
func (l *List[T]) ShrinkToFit() error {
	if l.itemSize == 0 {
		return fmt.Errorf("arraylist: shrink: %w", types.ErrInvalidArgument)
	}
	if l.alloc == nil {
		return fmt.Errorf("arraylist: shrink static list: %w", types.ErrFixedCapacity)
	}
	if l.length == len(l.data) {
		return nil
	}
	if l.length == 0 {
		alloc.Free(l.alloc, l.data)
		l.data = nil
		return nil
	}
	shrunk, err := alloc.Make[T](l.alloc, l.length)
	if err != nil {
		return fmt.Errorf("arraylist: shrink: %w", err)
	}
	copy(shrunk, l.data[:l.length])
	alloc.Free(l.alloc, l.data)
	l.data = shrunk
	return nil
}

func (l *List[T]) checkIndex(index int) error {
	if index < 0 || index >= l.length {
		return types.New(types.ErrKindOutOfBounds,
			fmt.Sprintf("index %d out of bounds for length %d", index, l.length))
	}
	return nil
}

// ensureCapacity makes slot index addressable. Dynamic lists double their
// slot count, or jump straight to index+1 when that is larger.
func (l *List[T]) ensureCapacity(index int) error {
	need, ok := buf.AddOverflowSafe(index, 1)
	if !ok {
		return types.ErrListExceededMaxSize
	}
	if need <= len(l.data) {
		return nil
	}
	if l.alloc == nil {
		return types.New(types.ErrKindFixedCapacity,
			fmt.Sprintf("static list holds %d items", len(l.data)))
	}
	if _, ok := buf.SizeOf(need, l.itemSize); !ok {
		return types.ErrListExceededMaxSize
	}
	slots := need
	if doubled, ok := buf.MulOverflowSafe(len(l.data), 2); ok && doubled > need {
		if _, ok := buf.SizeOf(doubled, l.itemSize); ok {
			slots = doubled
		}
	}
	grown, err := alloc.Make[T](l.alloc, slots)
	if err != nil {
		return err
	}
	copy(grown, l.data[:l.length])
	alloc.Free(l.alloc, l.data)
	l.data = grown
	return nil
}
