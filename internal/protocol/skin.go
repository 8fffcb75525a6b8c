package protocol

import "fmt"

type Skin struct {
	Type    string
	Texture []byte
}

func ReadSkin(b *Buffer) (Skin, error) {
	typ, err := ReadString(b)
	if err != nil {
		return Skin{}, fmt.Errorf("read skin type: %w", err)
	}
	length, err := ReadUvarint32(b)
	if err != nil {
		return Skin{}, fmt.Errorf("read skin texture length: %w", err)
	}
	if uint64(length) > uint64(b.Len()) {
		return Skin{}, fmt.Errorf("read skin texture: %w", ErrBufferUnderflow)
	}
	texture, err := b.ReadBytes(int(length))
	if err != nil {
		return Skin{}, fmt.Errorf("read skin texture: %w", err)
	}
	return Skin{Type: typ, Texture: texture}, nil
}

func WriteSkin(b *Buffer, skin Skin) {
	WriteString(b, skin.Type)
	WriteUvarint32(b, uint32(len(skin.Texture)))
	b.Write(skin.Texture)
}
