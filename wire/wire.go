// Package wire implements the proto2 wire format primitives that
// generated parse/serialize methods call directly: varint and
// zigzag-varint integers, fixed32/fixed64 little-endian integers,
// length-delimited bytes, and the field key a tag packs a field index
// and wire type into. It carries no reflection and no message
// registry; callers drive it field by field the way the generated
// C++ accessors do.
package wire

// Type is the wire type packed into the low 3 bits of a field key.
type Type byte

const (
	Varint  Type = 0
	Fixed64 Type = 1
	Bytes   Type = 2
	Fixed32 Type = 5
)

// EncodeKey packs a field index and wire type into the value written
// immediately before a field's content, per `(field_index << 3) |
// wire_type`.
func EncodeKey(fieldIndex uint32, wireType Type) uint64 {
	return uint64(fieldIndex)<<3 | uint64(wireType&0x7)
}

// DecodeKey unpacks a field key into its field index and wire type.
func DecodeKey(key uint64) (fieldIndex uint32, wireType Type) {
	return uint32(key >> 3), Type(key & 0x7)
}

// SizeVarint returns the number of bytes EncodeVarint would write for x.
func SizeVarint(x uint64) (n int) {
	for {
		n++
		x >>= 7
		if x == 0 {
			return n
		}
	}
}

// ZigzagEncode32 maps a signed 32-bit value onto the unsigned range so
// that small-magnitude negatives stay small under varint encoding —
// the sint32 wire format.
func ZigzagEncode32(x int32) uint64 {
	return uint64(uint32((x << 1) ^ (x >> 31)))
}

// ZigzagDecode32 is the inverse of ZigzagEncode32.
func ZigzagDecode32(x uint64) int32 {
	u := uint32(x)
	return int32(u>>1) ^ -int32(u&1)
}

// ZigzagEncode64 maps a signed 64-bit value onto the unsigned range —
// the sint64 wire format.
func ZigzagEncode64(x int64) uint64 {
	return uint64((x << 1) ^ (x >> 63))
}

// ZigzagDecode64 is the inverse of ZigzagEncode64.
func ZigzagDecode64(x uint64) int64 {
	return int64(x>>1) ^ -int64(x&1)
}
