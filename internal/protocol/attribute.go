package protocol

import "fmt"

// Attribute is an entity attribute such as health or movement speed. The
// protocol assumes Min <= Value, Default <= Max but it is not checked here.
type Attribute struct {
	Name    string
	Min     float32
	Max     float32
	Value   float32
	Default float32
}

func ReadAttributes(b *Buffer) ([]Attribute, error) {
	count, err := ReadUvarint32(b)
	if err != nil {
		return nil, fmt.Errorf("read attribute count: %w", err)
	}
	// Each entry is at least 17 bytes; refuse counts the buffer cannot hold
	// before allocating.
	if uint64(count)*17 > uint64(b.Len()) {
		return nil, fmt.Errorf("read %d attributes: %w", count, ErrBufferUnderflow)
	}
	attributes := make([]Attribute, 0, count)
	for i := uint32(0); i < count; i++ {
		var a Attribute
		if a.Min, err = ReadFloat32LE(b); err != nil {
			return nil, fmt.Errorf("read attribute %d min: %w", i, err)
		}
		if a.Max, err = ReadFloat32LE(b); err != nil {
			return nil, fmt.Errorf("read attribute %d max: %w", i, err)
		}
		if a.Value, err = ReadFloat32LE(b); err != nil {
			return nil, fmt.Errorf("read attribute %d value: %w", i, err)
		}
		if a.Default, err = ReadFloat32LE(b); err != nil {
			return nil, fmt.Errorf("read attribute %d default: %w", i, err)
		}
		if a.Name, err = ReadString(b); err != nil {
			return nil, fmt.Errorf("read attribute %d name: %w", i, err)
		}
		attributes = append(attributes, a)
	}
	return attributes, nil
}

func WriteAttributes(b *Buffer, attributes []Attribute) {
	WriteUvarint32(b, uint32(len(attributes)))
	for _, a := range attributes {
		WriteFloat32LE(b, a.Min)
		WriteFloat32LE(b, a.Max)
		WriteFloat32LE(b, a.Value)
		WriteFloat32LE(b, a.Default)
		WriteString(b, a.Name)
	}
}
