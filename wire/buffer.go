package wire

// Buffer accumulates a message's serialized bytes. The zero value is
// ready to use.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a Buffer seeded with buf, or an empty one if buf
// is nil.
func NewBuffer(buf []byte) *Buffer {
	return &Buffer{buf: buf}
}

// Bytes returns the accumulated bytes. The caller must not modify the
// returned slice.
func (b *Buffer) Bytes() []byte { return b.buf }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// EncodeVarint appends x as a base-128 varint, least-significant
// group first, continuation bit set on every group but the last.
func (b *Buffer) EncodeVarint(x uint64) {
	for x >= 1<<7 {
		b.buf = append(b.buf, byte(x&0x7f|0x80))
		x >>= 7
	}
	b.buf = append(b.buf, byte(x))
}

// EncodeKey appends a field key as a varint.
func (b *Buffer) EncodeKey(fieldIndex uint32, wireType Type) {
	b.EncodeVarint(EncodeKey(fieldIndex, wireType))
}

// EncodeFixed64 appends x as 8 little-endian bytes.
func (b *Buffer) EncodeFixed64(x uint64) {
	b.buf = append(b.buf,
		byte(x), byte(x>>8), byte(x>>16), byte(x>>24),
		byte(x>>32), byte(x>>40), byte(x>>48), byte(x>>56))
}

// EncodeFixed32 appends x as 4 little-endian bytes.
func (b *Buffer) EncodeFixed32(x uint32) {
	b.buf = append(b.buf, byte(x), byte(x>>8), byte(x>>16), byte(x>>24))
}

// EncodeZigzag32 appends a zigzag-varint-encoded signed 32-bit value.
func (b *Buffer) EncodeZigzag32(x int32) {
	b.EncodeVarint(ZigzagEncode32(x))
}

// EncodeZigzag64 appends a zigzag-varint-encoded signed 64-bit value.
func (b *Buffer) EncodeZigzag64(x int64) {
	b.EncodeVarint(ZigzagEncode64(x))
}

// EncodeRawBytes appends a length-varint followed by data's raw content —
// the format for bytes fields and embedded messages.
func (b *Buffer) EncodeRawBytes(data []byte) {
	b.EncodeVarint(uint64(len(data)))
	b.buf = append(b.buf, data...)
}

// EncodeStringBytes appends a length-varint followed by s's bytes.
func (b *Buffer) EncodeStringBytes(s string) {
	b.EncodeVarint(uint64(len(s)))
	b.buf = append(b.buf, s...)
}
