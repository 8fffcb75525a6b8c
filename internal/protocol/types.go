package protocol

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// BlockPos is a block coordinate. Y is written unsigned since the world has
// no negative heights in this protocol version.
type BlockPos struct {
	X, Y, Z int32
}

type Vec3 struct {
	X, Y, Z float32
}

func ReadUint16LE(b *Buffer) (uint16, error) {
	p, err := b.Next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(p), nil
}

func WriteUint16LE(b *Buffer, value uint16) {
	b.Write(binary.LittleEndian.AppendUint16(nil, value))
}

func ReadInt32LE(b *Buffer) (int32, error) {
	p, err := b.Next(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(p)), nil
}

func WriteInt32LE(b *Buffer, value int32) {
	b.Write(binary.LittleEndian.AppendUint32(nil, uint32(value)))
}

// ReadInt64 reads a big-endian int64, the buffer's default byte order.
func ReadInt64(b *Buffer) (int64, error) {
	p, err := b.Next(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(p)), nil
}

func WriteInt64(b *Buffer, value int64) {
	b.Write(binary.BigEndian.AppendUint64(nil, uint64(value)))
}

func ReadFloat32LE(b *Buffer) (float32, error) {
	p, err := b.Next(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(p)), nil
}

func WriteFloat32LE(b *Buffer, value float32) {
	b.Write(binary.LittleEndian.AppendUint32(nil, math.Float32bits(value)))
}

// ReadString reads a uvarint byte length followed by that many UTF-8 bytes.
func ReadString(b *Buffer) (string, error) {
	length, err := ReadUvarint32(b)
	if err != nil {
		return "", err
	}
	if uint64(length) > uint64(b.Len()) {
		return "", ErrBufferUnderflow
	}
	p, err := b.Next(int(length))
	if err != nil {
		return "", err
	}
	return string(p), nil
}

func WriteString(b *Buffer, s string) {
	WriteUvarint32(b, uint32(len(s)))
	b.Write([]byte(s))
}

// ReadASCIIString reads a 4-byte little-endian length followed by raw bytes.
// The content is not validated.
func ReadASCIIString(b *Buffer) (string, error) {
	length, err := ReadInt32LE(b)
	if err != nil {
		return "", err
	}
	if length < 0 {
		return "", ErrInvalidLength
	}
	p, err := b.Next(int(length))
	if err != nil {
		return "", err
	}
	return string(p), nil
}

func WriteASCIIString(b *Buffer, s string) {
	WriteInt32LE(b, int32(len(s)))
	b.Write([]byte(s))
}

func ReadUUID(b *Buffer) (uuid.UUID, error) {
	var id uuid.UUID
	p, err := b.Next(len(id))
	if err != nil {
		return uuid.Nil, err
	}
	copy(id[:], p)
	return id, nil
}

// WriteUUID writes the most significant half then the least significant
// half, both big-endian. uuid.UUID already stores its bytes in that order.
func WriteUUID(b *Buffer, id uuid.UUID) {
	b.Write(id[:])
}

func ReadBlockPos(b *Buffer) (BlockPos, error) {
	x, err := ReadVarint32(b)
	if err != nil {
		return BlockPos{}, fmt.Errorf("read block position x: %w", err)
	}
	y, err := ReadUvarint32(b)
	if err != nil {
		return BlockPos{}, fmt.Errorf("read block position y: %w", err)
	}
	z, err := ReadVarint32(b)
	if err != nil {
		return BlockPos{}, fmt.Errorf("read block position z: %w", err)
	}
	return BlockPos{X: x, Y: int32(y), Z: z}, nil
}

func WriteBlockPos(b *Buffer, pos BlockPos) {
	WriteVarint32(b, pos.X)
	WriteUvarint32(b, uint32(pos.Y))
	WriteVarint32(b, pos.Z)
}

func ReadVec3(b *Buffer) (Vec3, error) {
	var v Vec3
	var err error
	if v.X, err = ReadFloat32LE(b); err != nil {
		return Vec3{}, fmt.Errorf("read vector x: %w", err)
	}
	if v.Y, err = ReadFloat32LE(b); err != nil {
		return Vec3{}, fmt.Errorf("read vector y: %w", err)
	}
	if v.Z, err = ReadFloat32LE(b); err != nil {
		return Vec3{}, fmt.Errorf("read vector z: %w", err)
	}
	return v, nil
}

func WriteVec3(b *Buffer, v Vec3) {
	WriteFloat32LE(b, v.X)
	WriteFloat32LE(b, v.Y)
	WriteFloat32LE(b, v.Z)
}
