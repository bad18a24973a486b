package solanaswapgo

import (
	"fmt"
	"unicode/utf8"
)

// OverflowError is returned when a read would run past the end of the
// buffer. The cursor is left unchanged when this error is returned.
type OverflowError struct {
	Requested int
	Offset    int
	Length    int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("buffer overflow: tried to read %d bytes at offset %d in buffer of length %d", e.Requested, e.Offset, e.Length)
}

// BinaryReader is a bounded, sequential little-endian cursor over a byte
// slice, used to decode event payloads whose layout includes optional
// trailing fields (Pumpfun, Pumpswap).
type BinaryReader struct {
	data   []byte
	offset int
}

func NewBinaryReader(data []byte) *BinaryReader {
	return &BinaryReader{data: data}
}

func (r *BinaryReader) checkBounds(n int) error {
	if r.offset+n > len(r.data) {
		return &OverflowError{Requested: n, Offset: r.offset, Length: len(r.data)}
	}
	return nil
}

func (r *BinaryReader) ReadFixed(n int) ([]byte, error) {
	if err := r.checkBounds(n); err != nil {
		return nil, err
	}
	b := r.data[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

func (r *BinaryReader) ReadU8() (uint8, error) {
	if err := r.checkBounds(1); err != nil {
		return 0, err
	}
	v := r.data[r.offset]
	r.offset++
	return v, nil
}

func (r *BinaryReader) ReadU16LE() (uint16, error) {
	if err := r.checkBounds(2); err != nil {
		return 0, err
	}
	v := uint16(r.data[r.offset]) | uint16(r.data[r.offset+1])<<8
	r.offset += 2
	return v, nil
}

func (r *BinaryReader) ReadU32LE() (uint32, error) {
	if err := r.checkBounds(4); err != nil {
		return 0, err
	}
	b := r.data[r.offset : r.offset+4]
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	r.offset += 4
	return v, nil
}

func (r *BinaryReader) ReadU64LE() (uint64, error) {
	if err := r.checkBounds(8); err != nil {
		return 0, err
	}
	b := r.data[r.offset : r.offset+8]
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	r.offset += 8
	return v, nil
}

func (r *BinaryReader) ReadI64LE() (int64, error) {
	v, err := r.ReadU64LE()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// ReadPubkey reads a fixed 32-byte address and renders it as base58.
func (r *BinaryReader) ReadPubkey() (string, error) {
	b, err := r.ReadFixed(32)
	if err != nil {
		return "", err
	}
	return base58Encode(b), nil
}

// ReadStringU32Len reads a u32-LE length prefix followed by that many UTF-8
// bytes; invalid bytes are replaced with the replacement character rather
// than rejected.
func (r *BinaryReader) ReadStringU32Len() (string, error) {
	start := r.offset
	n, err := r.ReadU32LE()
	if err != nil {
		return "", err
	}
	b, err := r.ReadFixed(int(n))
	if err != nil {
		r.offset = start
		return "", err
	}
	if utf8.Valid(b) {
		return string(b), nil
	}
	return string([]rune(string(b))), nil
}

func (r *BinaryReader) Remaining() int {
	if r.offset >= len(r.data) {
		return 0
	}
	return len(r.data) - r.offset
}

func (r *BinaryReader) Offset() int {
	return r.offset
}
