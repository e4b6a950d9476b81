package bytebuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bytekit/pkg/alloc"
	"github.com/joshuapare/bytekit/pkg/arraylist"
	"github.com/joshuapare/bytekit/pkg/types"
)

func TestCursorConstructors(t *testing.T) {
	assert.True(t, Cursor{}.IsNil())
	assert.True(t, CursorFromArray(nil).IsNil())
	assert.False(t, CursorFromArray([]byte{}).IsNil())
	assert.False(t, CursorFromString("").IsNil())
	assert.Equal(t, 0, CursorFromString("").Len())
	assert.Equal(t, "abc", CursorFromString("abc").String())

	var empty Buffer
	assert.True(t, CursorFromBuf(&empty).IsNil())
	assert.True(t, CursorFromBuf(nil).IsNil())

	b := BufferFromEmptyArray(make([]byte, 8))
	require.NoError(t, b.Write([]byte("xyz")))
	c := CursorFromBuf(&b)
	assert.Equal(t, "xyz", c.String())
	assert.Equal(t, 3, cap(c.Bytes()), "view must not reach past the written region")
}

func TestCursorEq(t *testing.T) {
	tests := []struct {
		name string
		a, b Cursor
		want bool
	}{
		{"both null", Cursor{}, Cursor{}, true},
		{"null vs empty", Cursor{}, CursorFromString(""), false},
		{"empty vs empty", CursorFromString(""), CursorFromArray([]byte{}), true},
		{"equal", CursorFromString("abc"), CursorFromArray([]byte("abc")), true},
		{"case differs", CursorFromString("abc"), CursorFromString("ABC"), false},
		{"length differs", CursorFromString("abc"), CursorFromString("ab"), false},
		{"null vs content", Cursor{}, CursorFromString("a"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Eq(tt.b))
			assert.Equal(t, tt.want, tt.b.Eq(tt.a))
		})
	}
}

func TestCursorEqIgnoreCase(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "content-type", "content-type", true},
		{"mixed case", "Content-Type", "cONTENT-tYPE", true},
		{"punctuation untouched", "[x]", "{x}", false},
		{"high bytes are not folded", "\xc0", "\xe0", false},
		{"length differs", "abc", "abcd", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := CursorFromString(tt.a), CursorFromString(tt.b)
			assert.Equal(t, tt.want, a.EqIgnoreCase(b))
			assert.Equal(t, tt.want, b.EqIgnoreCase(a))
			if tt.want {
				assert.Equal(t, a.HashIgnoreCase(), b.HashIgnoreCase())
			}
		})
	}
	assert.True(t, Cursor{}.EqIgnoreCase(Cursor{}))
	assert.False(t, Cursor{}.EqIgnoreCase(CursorFromString("")))
}

func TestCursorEqByteBuf(t *testing.T) {
	b := BufferFromArray([]byte("abc"))
	assert.True(t, CursorFromString("abc").EqByteBuf(&b))
	assert.False(t, CursorFromString("abd").EqByteBuf(&b))
	assert.False(t, CursorFromString("abc").EqByteBuf(nil))

	var empty Buffer
	assert.True(t, Cursor{}.EqByteBuf(&empty))
	assert.False(t, CursorFromString("").EqByteBuf(&empty))
}

func TestCursorAdvance(t *testing.T) {
	c := CursorFromString("abcdef")

	head := c.Advance(2)
	assert.Equal(t, "ab", head.String())
	assert.Equal(t, "cdef", c.String())

	miss := c.Advance(5)
	assert.True(t, miss.IsNil())
	assert.Equal(t, "cdef", c.String(), "failed advance leaves the cursor alone")

	assert.True(t, c.Advance(-1).IsNil())

	rest := c.Advance(4)
	assert.Equal(t, "cdef", rest.String())
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.IsNil())

	var null Cursor
	assert.True(t, null.Advance(0).IsNil())
}

func TestCursorRead(t *testing.T) {
	c := CursorFromArray([]byte{0xde, 0xad, 0xbe})
	dst := make([]byte, 2)
	require.NoError(t, c.Read(dst))
	assert.Equal(t, []byte{0xde, 0xad}, dst)

	require.ErrorIs(t, c.Read(make([]byte, 2)), types.ErrShortBuffer)
	assert.Equal(t, 1, c.Len())

	_, err := c.ReadBE16()
	require.ErrorIs(t, err, types.ErrShortBuffer)
	_, err = c.ReadBE32()
	require.ErrorIs(t, err, types.ErrShortBuffer)
	_, err = c.ReadBE64()
	require.ErrorIs(t, err, types.ErrShortBuffer)

	v, err := c.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xbe), v)
	_, err = c.ReadU8()
	require.ErrorIs(t, err, types.ErrShortBuffer)

	require.NoError(t, c.Read(nil))
}

func TestCursorTrim(t *testing.T) {
	src := CursorFromString("  \thello world\r\n ")

	assert.Equal(t, "hello world\r\n ", src.LeftTrimPred(IsSpace).String())
	assert.Equal(t, "  \thello world", src.RightTrimPred(IsSpace).String())
	assert.Equal(t, "hello world", src.TrimPred(IsSpace).String())
	assert.Equal(t, "  \thello world\r\n ", src.String(), "trimming must not mutate the source")

	digits := CursorFromString("12345")
	right := digits.RightTrimPred(IsDigit)
	assert.Equal(t, 0, right.Len())
	assert.False(t, right.IsNil())
	assert.True(t, digits.SatisfiesPred(IsDigit))
	assert.Equal(t, 0, digits.LeftTrimPred(IsDigit).Len())
	assert.Equal(t, 0, digits.TrimPred(IsDigit).Len())

	assert.False(t, CursorFromString(" x ").SatisfiesPred(IsSpace))
	assert.True(t, CursorFromString("").SatisfiesPred(IsSpace))
	assert.True(t, Cursor{}.SatisfiesPred(IsSpace))
	assert.True(t, Cursor{}.RightTrimPred(IsSpace).IsNil())
}

func TestPredicates(t *testing.T) {
	for _, c := range []byte(" \t\n\v\f\r") {
		assert.True(t, IsSpace(c), "%q", c)
	}
	assert.False(t, IsSpace('x'))
	assert.False(t, IsSpace(0xa0))
	assert.True(t, IsDigit('0'))
	assert.True(t, IsDigit('9'))
	assert.False(t, IsDigit('a'))
	assert.True(t, IsAlpha('Q'))
	assert.True(t, IsAlpha('q'))
	assert.False(t, IsAlpha('['))
	assert.False(t, IsAlpha('@'))
}

func TestCopyRoundTrip(t *testing.T) {
	src := CursorFromString("round trip payload")
	var b Buffer
	require.NoError(t, b.InitCopyFromCursor(alloc.Default, src))
	defer b.CleanUp()
	assert.True(t, b.Cursor().Eq(src))
	assert.True(t, src.EqByteBuf(&b))
}

func TestCursorBytesIsCappedAtLen(t *testing.T) {
	input := []byte("a,b")
	out, err := arraylist.New[Cursor](alloc.Default, 0)
	require.NoError(t, err)
	defer out.CleanUp()
	require.NoError(t, CursorFromArray(input).SplitOnChar(',', out))

	first, err := out.Front()
	require.NoError(t, err)
	view := first.Bytes()
	assert.Equal(t, 1, cap(view))
	_ = append(view, 'X')
	assert.Equal(t, "a,b", string(input), "appending to a piece must not write into the input")

	trimmed := CursorFromString("ab  ").RightTrimPred(IsSpace)
	assert.Equal(t, "ab", trimmed.String())
	assert.Equal(t, trimmed.Len(), cap(trimmed.Bytes()))

	left := CursorFromArray([]byte("  ab")).LeftTrimPred(IsSpace)
	assert.Equal(t, left.Len(), cap(left.Bytes()))

	assert.Nil(t, Cursor{}.Bytes())
}
