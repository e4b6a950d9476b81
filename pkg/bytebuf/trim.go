package bytebuf

// BytePredicate classifies a single byte.
type BytePredicate func(b byte) bool

// IsSpace matches space, \t, \n, \v, \f and \r.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsDigit matches ASCII 0-9.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsAlpha matches ASCII letters.
func IsAlpha(b byte) bool { return foldTable[b] >= 'a' && foldTable[b] <= 'z' }

// LeftTrimPred returns c without its leading bytes that satisfy pred.
func (c Cursor) LeftTrimPred(pred BytePredicate) Cursor {
	p := c.ptr
	for len(p) > 0 && pred(p[0]) {
		p = p[1:]
	}
	return Cursor{ptr: p}
}

// RightTrimPred returns c without its trailing bytes that satisfy pred.
func (c Cursor) RightTrimPred(pred BytePredicate) Cursor {
	p := c.ptr
	for len(p) > 0 && pred(p[len(p)-1]) {
		p = p[:len(p)-1]
	}
	return Cursor{ptr: p}
}

// TrimPred trims both ends.
func (c Cursor) TrimPred(pred BytePredicate) Cursor {
	return c.LeftTrimPred(pred).RightTrimPred(pred)
}

// SatisfiesPred reports whether every byte of c satisfies pred. It is true
// for empty and null cursors.
func (c Cursor) SatisfiesPred(pred BytePredicate) bool {
	return c.LeftTrimPred(pred).Len() == 0
}
