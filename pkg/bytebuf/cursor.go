package bytebuf

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/joshuapare/bytekit/internal/buf"
	"github.com/joshuapare/bytekit/pkg/types"
)

// Cursor is a read-only view over bytes owned elsewhere. The zero Cursor is
// null. A Cursor only ever shrinks or is re-pointed; it never extends past
// the region it was built from.
type Cursor struct {
	ptr []byte
}

// CursorFromArray views b. A nil b gives a null cursor.
func CursorFromArray(b []byte) Cursor {
	return Cursor{ptr: b[:len(b):len(b)]}
}

// CursorFromString views the bytes of s without copying. The bytes must not
// be written through.
func CursorFromString(s string) Cursor {
	if s == "" {
		return Cursor{ptr: []byte{}}
	}
	return Cursor{ptr: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// CursorFromBuf views b's written region. A nil buffer, or one with no
// storage, gives a null cursor.
func CursorFromBuf(b *Buffer) Cursor {
	if b == nil || b.data == nil {
		return Cursor{}
	}
	return Cursor{ptr: b.data[:b.n:b.n]}
}

// Len returns the number of bytes in view.
func (c Cursor) Len() int { return len(c.ptr) }

// IsNil reports whether c is null.
func (c Cursor) IsNil() bool { return c.ptr == nil }

// Bytes returns the viewed bytes. Callers must not modify them. The slice is
// capped at Len(), so appending to it never reaches the bytes around the view.
func (c Cursor) Bytes() []byte { return c.ptr[:len(c.ptr):len(c.ptr)] }

func (c Cursor) String() string { return string(c.ptr) }

// Advance returns a cursor over the first n bytes and moves c past them. If
// fewer than n bytes remain it returns a null cursor and leaves c alone.
func (c *Cursor) Advance(n int) Cursor {
	head, ok := buf.Slice(c.ptr, 0, n)
	if !ok || c.ptr == nil {
		return Cursor{}
	}
	c.ptr = c.ptr[n:]
	return Cursor{ptr: head[:n:n]}
}

// Read copies len(dst) bytes into dst and advances c. On types.ErrShortBuffer
// nothing is consumed.
func (c *Cursor) Read(dst []byte) error {
	head := c.Advance(len(dst))
	if head.ptr == nil && len(dst) > 0 {
		return fmt.Errorf("bytebuf: read %d bytes from %d: %w", len(dst), len(c.ptr), types.ErrShortBuffer)
	}
	copy(dst, head.ptr)
	return nil
}

// ReadU8 consumes one byte.
func (c *Cursor) ReadU8() (uint8, error) {
	head := c.Advance(1)
	if head.ptr == nil {
		return 0, fmt.Errorf("bytebuf: read u8: %w", types.ErrShortBuffer)
	}
	return head.ptr[0], nil
}

// ReadBE16 consumes a network-order uint16.
func (c *Cursor) ReadBE16() (uint16, error) {
	head := c.Advance(2)
	if head.ptr == nil {
		return 0, fmt.Errorf("bytebuf: read be16: %w", types.ErrShortBuffer)
	}
	return buf.U16BE(head.ptr), nil
}

// ReadBE32 consumes a network-order uint32.
func (c *Cursor) ReadBE32() (uint32, error) {
	head := c.Advance(4)
	if head.ptr == nil {
		return 0, fmt.Errorf("bytebuf: read be32: %w", types.ErrShortBuffer)
	}
	return buf.U32BE(head.ptr), nil
}

// ReadBE64 consumes a network-order uint64.
func (c *Cursor) ReadBE64() (uint64, error) {
	head := c.Advance(8)
	if head.ptr == nil {
		return 0, fmt.Errorf("bytebuf: read be64: %w", types.ErrShortBuffer)
	}
	return buf.U64BE(head.ptr), nil
}

// Eq reports byte-for-byte equality. Cursors of different length are never
// equal, and a null cursor only equals another null cursor.
func (c Cursor) Eq(o Cursor) bool {
	if len(c.ptr) != len(o.ptr) {
		return false
	}
	if c.ptr == nil || o.ptr == nil {
		return c.ptr == nil && o.ptr == nil
	}
	return bytes.Equal(c.ptr, o.ptr)
}

// EqByteBuf compares c with b's written region under the rules of Eq. A nil
// b never equals anything.
func (c Cursor) EqByteBuf(b *Buffer) bool {
	if b == nil {
		return false
	}
	return c.Eq(CursorFromBuf(b))
}
