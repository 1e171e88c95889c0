package llrb

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// Packed columns start with a tag byte telling how the payload is stored.
// lz4 refuses to compress incompressible input, which is then kept raw.
const (
	packedRaw byte = iota
	packedLZ4
)

const uint32Bytes = 4

// packColumn serializes a column of uint32 values little endian and
// compresses it with lz4.
func packColumn(column []uint32) ([]byte, error) {
	raw := make([]byte, len(column)*uint32Bytes)
	for i, x := range column {
		binary.LittleEndian.PutUint32(raw[i*uint32Bytes:], x)
	}
	packed := make([]byte, 1+lz4.CompressBlockBound(len(raw)))
	n, err := lz4.CompressBlock(raw, packed[1:], nil)
	if err != nil {
		return nil, fmt.Errorf("llrb: compressing column: %w", err)
	}
	if n == 0 || n >= len(raw) {
		return append([]byte{packedRaw}, raw...), nil
	}
	packed[0] = packedLZ4
	return packed[:1+n], nil
}

// unpackColumn restores a column of length n packed by packColumn.
func unpackColumn(packed []byte, n int) ([]uint32, error) {
	if len(packed) == 0 {
		return nil, fmt.Errorf("%w: empty packed column", ErrCorrupted)
	}
	raw := packed[1:]
	switch packed[0] {
	case packedRaw:
	case packedLZ4:
		raw = make([]byte, n*uint32Bytes)
		m, err := lz4.UncompressBlock(packed[1:], raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupted, err)
		}
		raw = raw[:m]
	default:
		return nil, fmt.Errorf("%w: unknown column tag %d", ErrCorrupted, packed[0])
	}
	if len(raw) != n*uint32Bytes {
		return nil, fmt.Errorf("%w: column has %d bytes, expected %d", ErrCorrupted, len(raw), n*uint32Bytes)
	}
	column := make([]uint32, n)
	for i := range column {
		column[i] = binary.LittleEndian.Uint32(raw[i*uint32Bytes:])
	}
	return column, nil
}
