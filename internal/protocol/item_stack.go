package protocol

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/Versifine/mcpewire/internal/item"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// ItemCodec reads and writes item stacks. It holds only its collaborators,
// so a single value may be shared by any number of goroutines as long as
// each uses its own Buffer.
type ItemCodec struct {
	Registry item.Registry
	Metadata item.MetadataCodec
	Logger   *slog.Logger
}

// NewItemCodec returns a codec backed by reg and the default metadata codec.
func NewItemCodec(reg item.Registry) *ItemCodec {
	return &ItemCodec{Registry: reg, Metadata: item.DefaultMetadata{}}
}

func (c *ItemCodec) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *ItemCodec) metadata() item.MetadataCodec {
	if c.Metadata != nil {
		return c.Metadata
	}
	return item.DefaultMetadata{}
}

// Write encodes s. On failure nothing is left in the buffer.
//
// Layout: varint id, then for a present stack varint (meta<<8 | count), a
// uint16 LE payload length and that many bytes of little-endian NBT.
func (c *ItemCodec) Write(b *Buffer, s item.Stack) error {
	if s.IsEmpty() {
		WriteVarint32(b, 0)
		return nil
	}
	start := b.WriterIndex()
	WriteVarint32(b, s.Type().ID)
	meta := int32(c.metadata().Serialize(s))
	count := int32(min(max(s.Count(), 0), 255))
	WriteVarint32(b, meta<<8|count)

	sizeIndex := b.Reserve(2)
	afterSize := b.WriterIndex()
	if s.HasData() {
		if err := nbt.NewEncoderWithEncoding(b, nbt.LittleEndian).Encode(s.Data()); err != nil {
			b.SetWriterIndex(start)
			return errors.Join(ErrEncodingFailure, err)
		}
	}
	size := b.WriterIndex() - afterSize
	if size > math.MaxUint16 {
		b.SetWriterIndex(start)
		return fmt.Errorf("%w: %w: payload is %d bytes", ErrEncodingFailure, ErrValueOutOfRange, size)
	}
	b.PutUint16LE(sizeIndex, uint16(size))
	return nil
}

// Read decodes a stack. An id of 0 yields the empty stack and consumes
// nothing further. The NBT payload is decoded from a view bounded to its
// declared length, and the buffer always advances past all of it.
func (c *ItemCodec) Read(b *Buffer) (item.Stack, error) {
	id, err := ReadVarint32(b)
	if err != nil {
		return item.Empty(), err
	}
	if id == 0 {
		return item.Empty(), nil
	}
	aux, err := ReadVarint32(b)
	if err != nil {
		return item.Empty(), err
	}
	damage := int16(aux >> 8)
	count := int(aux & 0xFF)
	size, err := ReadUint16LE(b)
	if err != nil {
		return item.Empty(), err
	}

	typ, ok := c.Registry.ByID(id)
	if !ok {
		c.logger().Debug("unknown item type", "id", id)
		return item.Empty(), fmt.Errorf("%w: id %d", ErrUnknownItemType, id)
	}
	meta, err := c.metadata().Deserialize(typ, damage)
	if err != nil {
		return item.Empty(), fmt.Errorf("item %s metadata %d: %w", typ.Name, damage, err)
	}
	builder := item.NewBuilder(typ).Count(count).Metadata(meta)

	if size > 0 {
		payload, err := b.ReadSlice(int(size))
		if err != nil {
			return item.Empty(), err
		}
		fields, err := readItemPayload(payload)
		if err != nil {
			return item.Empty(), fmt.Errorf("%w: item %s: %w", ErrCorruptItemPayload, typ.Name, err)
		}
		c.logger().Debug("item payload decoded", "item", typ.Name, "bytes", size, "fields", len(fields))
		builder.MergeData(fields)
	}
	return builder.Build(), nil
}

// tagCompound is the NBT type byte of a compound tag.
const tagCompound = 10

// readItemPayload decodes the compound root tag held in payload.
func readItemPayload(payload *Buffer) (map[string]any, error) {
	if root := payload.Bytes()[0]; root != tagCompound {
		return nil, fmt.Errorf("root tag type %d is not a compound", root)
	}
	var fields map[string]any
	if err := nbt.NewDecoderWithEncoding(payload, nbt.LittleEndian).Decode(&fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}
