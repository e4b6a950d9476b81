package bytebuf

import (
	"bytes"
	"fmt"
	"math"

	"github.com/joshuapare/bytekit/pkg/arraylist"
	"github.com/joshuapare/bytekit/pkg/types"
)

// NextSplit steps substr to the next piece of c delimited by splitOn.
//
// substr is caller-owned iteration state. Start with a null cursor; each call
// re-points it at the next piece (a view into c) and returns true. When the
// input is exhausted substr is reset to null and NextSplit returns false. A
// trailing delimiter yields a final empty piece.
//
// substr must be null or the value left by the previous call on the same c.
func (c Cursor) NextSplit(splitOn byte, substr *Cursor) bool {
	if c.ptr == nil {
		*substr = Cursor{}
		return false
	}

	firstRun := substr.ptr == nil
	if firstRun {
		substr.ptr = c.ptr[:0]
	}

	start, ok := c.offsetOf(*substr)
	if !ok {
		*substr = Cursor{}
		return false
	}
	start += len(substr.ptr)
	if start > len(c.ptr) {
		*substr = Cursor{}
		return false
	}

	rest := c.ptr[start:]
	if !firstRun {
		if len(rest) == 0 {
			*substr = Cursor{}
			return false
		}
		if rest[0] == splitOn {
			// Skip the delimiter that ended the previous piece.
			rest = rest[1:]
			if len(rest) == 0 {
				substr.ptr = rest
				return true
			}
		}
	}

	if i := bytes.IndexByte(rest, splitOn); i >= 0 {
		rest = rest[:i]
	}
	substr.ptr = rest
	return true
}

// SplitOnChar splits c on every splitOn. See SplitOnCharN.
func (c Cursor) SplitOnChar(splitOn byte, out *arraylist.List[Cursor]) error {
	return c.SplitOnCharN(splitOn, 0, out)
}

// SplitOnCharN appends the pieces of c separated by splitOn to out, in order.
//
// Consecutive delimiters give empty pieces and a trailing delimiter gives a
// final empty piece. With n > 0, at most n splits are made and the last piece
// is the untouched remainder of c. n == 0 means no limit.
//
// If appending to out fails the error is returned at once; pieces appended
// before the failure stay in out.
func (c Cursor) SplitOnCharN(splitOn byte, n int, out *arraylist.List[Cursor]) error {
	if c.ptr == nil || n < 0 || out == nil {
		return fmt.Errorf("bytebuf: split: %w", types.ErrInvalidArgument)
	}
	maxSplits := n
	if n == 0 {
		maxSplits = math.MaxInt
	}

	var substr Cursor
	for splits := 0; splits <= maxSplits && c.NextSplit(splitOn, &substr); splits++ {
		if splits == maxSplits {
			start, _ := c.offsetOf(substr)
			substr.ptr = c.ptr[start:]
		}
		if err := out.PushBack(substr); err != nil {
			return fmt.Errorf("bytebuf: split piece %d: %w", splits, err)
		}
	}
	return nil
}

// offsetOf returns where sub starts within c. sub must be a view produced by
// slicing c, which keeps cap(c) - cap(sub) equal to the start offset.
func (c Cursor) offsetOf(sub Cursor) (int, bool) {
	off := cap(c.ptr) - cap(sub.ptr)
	if off < 0 || off > len(c.ptr) {
		return 0, false
	}
	return off, true
}
