// Package buf contains overflow-checked size arithmetic and endian helpers
// shared by the byte containers.
package buf

import "encoding/binary"

// U16BE reads a big-endian uint16 from b. Returns 0 when b is too short.
func U16BE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// U64BE reads a big-endian uint64 from b. Returns 0 when b is too short.
func U64BE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// PutU16BE writes v into b in network order. Reports false when b is too short.
func PutU16BE(b []byte, v uint16) bool {
	if len(b) < 2 {
		return false
	}
	binary.BigEndian.PutUint16(b, v)
	return true
}

// PutU32BE writes v into b in network order. Reports false when b is too short.
func PutU32BE(b []byte, v uint32) bool {
	if len(b) < 4 {
		return false
	}
	binary.BigEndian.PutUint32(b, v)
	return true
}

// PutU64BE writes v into b in network order. Reports false when b is too short.
func PutU64BE(b []byte, v uint64) bool {
	if len(b) < 8 {
		return false
	}
	binary.BigEndian.PutUint64(b, v)
	return true
}
