package protocol

import "fmt"

const (
	SEGMENT_BITS = 0x7F
	CONTINUE_BIT = 0x80

	MaxVarintLen32 = 5
	MaxVarintLen64 = 10
)

func WriteUvarint32(b *Buffer, value uint32) {
	for value >= CONTINUE_BIT {
		b.WriteByte(byte(value&SEGMENT_BITS) | CONTINUE_BIT)
		value >>= 7
	}
	b.WriteByte(byte(value))
}

func ReadUvarint32(b *Buffer) (uint32, error) {
	var value uint32
	for i := 0; i < MaxVarintLen32; i++ {
		c, err := b.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrMalformedVarint, err)
		}
		// The last group only has room for the top 4 bits.
		if i == MaxVarintLen32-1 && c > 0x0F {
			return 0, fmt.Errorf("%w: %w", ErrMalformedVarint, ErrVarintOverflow)
		}
		value |= uint32(c&SEGMENT_BITS) << (7 * i)
		if c&CONTINUE_BIT == 0 {
			return value, nil
		}
	}
	return 0, fmt.Errorf("%w: %w", ErrMalformedVarint, ErrVarintOverflow)
}

// WriteVarint32 writes value zigzag-encoded so that small negative numbers
// stay short.
func WriteVarint32(b *Buffer, value int32) {
	WriteUvarint32(b, uint32((value<<1)^(value>>31)))
}

func ReadVarint32(b *Buffer) (int32, error) {
	u, err := ReadUvarint32(b)
	if err != nil {
		return 0, err
	}
	return int32(u>>1) ^ -int32(u&1), nil
}

func WriteUvarint64(b *Buffer, value uint64) {
	for value >= CONTINUE_BIT {
		b.WriteByte(byte(value&SEGMENT_BITS) | CONTINUE_BIT)
		value >>= 7
	}
	b.WriteByte(byte(value))
}

func ReadUvarint64(b *Buffer) (uint64, error) {
	var value uint64
	for i := 0; i < MaxVarintLen64; i++ {
		c, err := b.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrMalformedVarint, err)
		}
		if i == MaxVarintLen64-1 && c > 0x01 {
			return 0, fmt.Errorf("%w: %w", ErrMalformedVarint, ErrVarintOverflow)
		}
		value |= uint64(c&SEGMENT_BITS) << (7 * i)
		if c&CONTINUE_BIT == 0 {
			return value, nil
		}
	}
	return 0, fmt.Errorf("%w: %w", ErrMalformedVarint, ErrVarintOverflow)
}

func WriteVarint64(b *Buffer, value int64) {
	WriteUvarint64(b, uint64((value<<1)^(value>>63)))
}

func ReadVarint64(b *Buffer) (int64, error) {
	u, err := ReadUvarint64(b)
	if err != nil {
		return 0, err
	}
	return int64(u>>1) ^ -int64(u&1), nil
}

// VarintLen32 returns the number of bytes WriteUvarint32 emits for value.
func VarintLen32(value uint32) int {
	n := 1
	for value >= CONTINUE_BIT {
		value >>= 7
		n++
	}
	return n
}
