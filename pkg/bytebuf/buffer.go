package bytebuf

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/bytekit/internal/buf"
	"github.com/joshuapare/bytekit/internal/secmem"
	"github.com/joshuapare/bytekit/pkg/alloc"
	"github.com/joshuapare/bytekit/pkg/types"
)

// Page locking hooks, swapped out in tests.
var (
	lockPages   = secmem.Lock
	unlockPages = secmem.Unlock
)

// Buffer is an append-only byte container. Writes never grow it; Reserve is
// the explicit way to make room.
//
// Invariants: Len() <= Cap(); storage is nil iff Cap() == 0. The zero Buffer
// is empty and owns nothing.
type Buffer struct {
	data   []byte // len(data) is the capacity
	n      int    // bytes written
	alloc  alloc.Allocator
	locked bool
}

// NewBuffer returns a buffer with capacity bytes acquired from a.
func NewBuffer(a alloc.Allocator, capacity int) (*Buffer, error) {
	b := &Buffer{}
	if err := b.Init(a, capacity); err != nil {
		return nil, err
	}
	return b, nil
}

// BufferFromArray wraps mem as a full, non-owning buffer: Len() and Cap() are
// both len(mem).
func BufferFromArray(mem []byte) Buffer {
	if len(mem) == 0 {
		return Buffer{}
	}
	return Buffer{data: mem[:len(mem):len(mem)], n: len(mem)}
}

// BufferFromEmptyArray wraps mem as an empty, non-owning buffer with Cap()
// len(mem).
func BufferFromEmptyArray(mem []byte) Buffer {
	if len(mem) == 0 {
		return Buffer{}
	}
	return Buffer{data: mem[:len(mem):len(mem)]}
}

// Init acquires capacity bytes from a. On failure b is left unmodified.
func (b *Buffer) Init(a alloc.Allocator, capacity int) error {
	if a == nil || capacity < 0 {
		return fmt.Errorf("bytebuf: init %d bytes: %w", capacity, types.ErrInvalidArgument)
	}
	data, err := alloc.Make[byte](a, capacity)
	if err != nil {
		return fmt.Errorf("bytebuf: init %d bytes: %w", capacity, err)
	}
	*b = Buffer{data: data, alloc: a}
	return nil
}

// InitCopyFromCursor makes b an owning copy of src, acquiring exactly
// src.Len() bytes. A null src yields an empty buffer with no storage and is
// not an error.
func (b *Buffer) InitCopyFromCursor(a alloc.Allocator, src Cursor) error {
	if a == nil {
		return fmt.Errorf("bytebuf: copy from cursor: %w", types.ErrInvalidArgument)
	}
	*b = Buffer{}
	if src.ptr == nil {
		return nil
	}
	data, err := alloc.Make[byte](a, len(src.ptr))
	if err != nil {
		return fmt.Errorf("bytebuf: copy %d bytes from cursor: %w", len(src.ptr), err)
	}
	copy(data, src.ptr)
	*b = Buffer{data: data, n: len(data), alloc: a}
	return nil
}

// CleanUp releases owned storage and resets b to the zero state. It never
// fails and is safe on a zero or already cleaned-up buffer.
func (b *Buffer) CleanUp() {
	if b == nil {
		return
	}
	if b.locked {
		// CleanUp cannot fail; the pages are released below either way.
		_ = unlockPages(b.data)
	}
	if b.alloc != nil && b.data != nil {
		alloc.Free(b.alloc, b.data)
	}
	*b = Buffer{}
}

// SecureZero overwrites the whole capacity with zeros and sets Len() to 0.
func (b *Buffer) SecureZero() {
	if b.data != nil {
		secmem.Zero(b.data)
	}
	b.n = 0
}

// CleanUpSecure zeroes the full capacity before releasing it. Use it for any
// buffer that may have held key material or credentials.
func (b *Buffer) CleanUpSecure() {
	if b == nil {
		return
	}
	b.SecureZero()
	b.CleanUp()
}

// Reset sets Len() to 0, optionally zeroing the whole capacity.
func (b *Buffer) Reset(zeroContents bool) {
	if zeroContents {
		clear(b.data)
	}
	b.n = 0
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return b.n }

// Cap returns the capacity in bytes.
func (b *Buffer) Cap() int { return len(b.data) }

// Remaining returns Cap() - Len().
func (b *Buffer) Remaining() int { return len(b.data) - b.n }

// Bytes returns the written region. It aliases b's storage.
func (b *Buffer) Bytes() []byte {
	if b.data == nil {
		return nil
	}
	return b.data[:b.n:b.n]
}

// Owned reports whether b holds storage it must release.
func (b *Buffer) Owned() bool { return b.alloc != nil && b.data != nil }

// Allocator returns the allocator b releases through, or nil.
func (b *Buffer) Allocator() alloc.Allocator { return b.alloc }

// Cursor returns a view over the written region.
func (b *Buffer) Cursor() Cursor { return CursorFromBuf(b) }

// Eq reports whether b and o are both nil, or both hold the same written
// bytes. A nil buffer never equals a non-nil one.
func (b *Buffer) Eq(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.n != o.n {
		return false
	}
	if b.data == nil || o.data == nil {
		return b.data == nil && o.data == nil
	}
	return bytes.Equal(b.data[:b.n], o.data[:o.n])
}

// Append copies from's bytes after the written region. It fails with
// types.ErrDestTooSmall, leaving b untouched, when they do not fit.
func (b *Buffer) Append(from Cursor) error {
	if b.Remaining() < len(from.ptr) {
		return types.New(types.ErrKindDestTooSmall,
			fmt.Sprintf("bytebuf: append %d bytes with %d of %d free", len(from.ptr), b.Remaining(), len(b.data)))
	}
	b.n += copy(b.data[b.n:], from.ptr)
	return nil
}

// Cat appends each source's written region in order. It stops at the first
// failure; sources appended before it stay appended.
func (b *Buffer) Cat(srcs []*Buffer) error {
	for i, src := range srcs {
		if err := b.Append(CursorFromBuf(src)); err != nil {
			return fmt.Errorf("bytebuf: cat source %d: %w", i, err)
		}
	}
	return nil
}

// Write appends src. It fails with types.ErrShortBuffer when src does not fit.
func (b *Buffer) Write(src []byte) error {
	if b.Remaining() < len(src) {
		return fmt.Errorf("bytebuf: write %d bytes: %w", len(src), types.ErrShortBuffer)
	}
	b.n += copy(b.data[b.n:], src)
	return nil
}

// WriteU8 appends one byte.
func (b *Buffer) WriteU8(v uint8) error {
	if b.Remaining() < 1 {
		return fmt.Errorf("bytebuf: write u8: %w", types.ErrShortBuffer)
	}
	b.data[b.n] = v
	b.n++
	return nil
}

// WriteBE16 appends v in network byte order.
func (b *Buffer) WriteBE16(v uint16) error {
	if !buf.PutU16BE(b.data[b.n:], v) {
		return fmt.Errorf("bytebuf: write be16: %w", types.ErrShortBuffer)
	}
	b.n += 2
	return nil
}

// WriteBE32 appends v in network byte order.
func (b *Buffer) WriteBE32(v uint32) error {
	if !buf.PutU32BE(b.data[b.n:], v) {
		return fmt.Errorf("bytebuf: write be32: %w", types.ErrShortBuffer)
	}
	b.n += 4
	return nil
}

// WriteBE64 appends v in network byte order.
func (b *Buffer) WriteBE64(v uint64) error {
	if !buf.PutU64BE(b.data[b.n:], v) {
		return fmt.Errorf("bytebuf: write be64: %w", types.ErrShortBuffer)
	}
	b.n += 8
	return nil
}

// Reserve grows the capacity to at least capacity bytes, keeping the written
// region. Only owning, unlocked buffers can move.
func (b *Buffer) Reserve(capacity int) error {
	if capacity <= len(b.data) {
		return nil
	}
	if b.alloc == nil || b.locked {
		return fmt.Errorf("bytebuf: reserve %d bytes on non-owning or locked buffer: %w",
			capacity, types.ErrInvalidArgument)
	}
	grown, err := alloc.Make[byte](b.alloc, capacity)
	if err != nil {
		return fmt.Errorf("bytebuf: reserve %d bytes: %w", capacity, err)
	}
	copy(grown, b.data[:b.n])
	alloc.Free(b.alloc, b.data)
	b.data = grown
	return nil
}

// Lock pins b's storage in RAM so its contents are never written to swap.
// CleanUp and CleanUpSecure undo it. An OS refusal (for example a
// RLIMIT_MEMLOCK limit) is returned with the OS error as its cause.
func (b *Buffer) Lock() error {
	if b.locked || b.data == nil {
		return nil
	}
	if err := lockPages(b.data); err != nil {
		return &types.Error{Kind: types.ErrKindUnknown, Msg: "bytebuf: lock", Err: err}
	}
	b.locked = true
	return nil
}

// Unlock releases a Lock.
func (b *Buffer) Unlock() error {
	if !b.locked {
		return nil
	}
	if err := unlockPages(b.data); err != nil {
		return &types.Error{Kind: types.ErrKindUnknown, Msg: "bytebuf: unlock", Err: err}
	}
	b.locked = false
	return nil
}

// Locked reports whether b's storage is pinned.
func (b *Buffer) Locked() bool { return b.locked }
