package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// SubOverflowSafe returns a - b, with ok = false when the result would overflow int.
func SubOverflowSafe(a, b int) (int, bool) {
	switch {
	case b < 0 && a > math.MaxInt+b:
		return 0, false
	case b > 0 && a < math.MinInt+b:
		return 0, false
	default:
		return a - b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// Every count * itemSize computation in the containers goes through here.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	switch {
	case a > 0 && b > 0:
		if a > math.MaxInt/b {
			return 0, false
		}
	case a < 0 && b < 0:
		if a < math.MaxInt/b {
			return 0, false
		}
	case a > 0 && b < 0:
		if b < math.MinInt/a {
			return 0, false
		}
	default: // a < 0 && b > 0
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// SizeOf returns count*itemSize for non-negative operands.
// ok is false on overflow or when either operand is negative.
func SizeOf(count, itemSize int) (int, bool) {
	if count < 0 || itemSize < 0 {
		return 0, false
	}
	return MulOverflowSafe(count, itemSize)
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
