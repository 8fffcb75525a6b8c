package protocol

import (
	"fmt"
	"math"
)

// Rotation holds an entity's view angles in degrees.
type Rotation struct {
	Pitch   float32
	Yaw     float32
	HeadYaw float32
}

// ReadRotation reads the full-precision form. The wire order is yaw,
// head yaw, pitch; it differs from the byte form on purpose, peers expect it.
func ReadRotation(b *Buffer) (Rotation, error) {
	var r Rotation
	var err error
	if r.Yaw, err = ReadFloat32LE(b); err != nil {
		return Rotation{}, fmt.Errorf("read rotation yaw: %w", err)
	}
	if r.HeadYaw, err = ReadFloat32LE(b); err != nil {
		return Rotation{}, fmt.Errorf("read rotation head yaw: %w", err)
	}
	if r.Pitch, err = ReadFloat32LE(b); err != nil {
		return Rotation{}, fmt.Errorf("read rotation pitch: %w", err)
	}
	return r, nil
}

func WriteRotation(b *Buffer, r Rotation) {
	WriteFloat32LE(b, r.Yaw)
	WriteFloat32LE(b, r.HeadYaw)
	WriteFloat32LE(b, r.Pitch)
}

// ReadByteRotation reads the quantized form: pitch, yaw, head yaw, one byte
// each.
func ReadByteRotation(b *Buffer) (Rotation, error) {
	p, err := b.Next(3)
	if err != nil {
		return Rotation{}, fmt.Errorf("read byte rotation: %w", err)
	}
	return Rotation{
		Pitch:   ByteToAngle(p[0]),
		Yaw:     ByteToAngle(p[1]),
		HeadYaw: ByteToAngle(p[2]),
	}, nil
}

func WriteByteRotation(b *Buffer, r Rotation) {
	b.Write([]byte{AngleToByte(r.Pitch), AngleToByte(r.Yaw), AngleToByte(r.HeadYaw)})
}

// AngleToByte quantizes angle to 1/255 of a turn, rounding up. Values
// outside [0, 360] wrap to their low 8 bits.
func AngleToByte(angle float32) byte {
	return byte(int32(math.Ceil(float64(angle / 360 * 255))))
}

// ByteToAngle is the inverse scaling of AngleToByte without rounding, so a
// round trip can gain up to 360/255 degrees.
func ByteToAngle(v byte) float32 {
	return float32(v) / 255 * 360
}
