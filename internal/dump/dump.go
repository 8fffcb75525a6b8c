// Package dump decodes wire values by kind name and checks that
// re-encoding them reproduces the input bytes.
package dump

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unicode"

	"github.com/Versifine/mcpewire/internal/item"
	"github.com/Versifine/mcpewire/internal/protocol"
)

var ErrUnknownKind = errors.New("unknown kind")

type codec struct {
	decode func(d *Decoder, b *protocol.Buffer) (any, error)
	encode func(d *Decoder, b *protocol.Buffer, v any) error

	// unordered is set for kinds whose encoding is not canonical, such as
	// NBT compounds written in map order. Verify compares their values.
	unordered bool
}

// plain adapts a non-failing writer and a reader of T.
func plain[T any](read func(*protocol.Buffer) (T, error), write func(*protocol.Buffer, T)) codec {
	return codec{
		decode: func(_ *Decoder, b *protocol.Buffer) (any, error) { return read(b) },
		encode: func(_ *Decoder, b *protocol.Buffer, v any) error {
			t, ok := v.(T)
			if !ok {
				return fmt.Errorf("dump: cannot encode %T", v)
			}
			write(b, t)
			return nil
		},
	}
}

var kinds = map[string]codec{
	"uvarint":      plain(protocol.ReadUvarint32, protocol.WriteUvarint32),
	"varint":       plain(protocol.ReadVarint32, protocol.WriteVarint32),
	"uvarint64":    plain(protocol.ReadUvarint64, protocol.WriteUvarint64),
	"varint64":     plain(protocol.ReadVarint64, protocol.WriteVarint64),
	"string":       plain(protocol.ReadString, protocol.WriteString),
	"ascii":        plain(protocol.ReadASCIIString, protocol.WriteASCIIString),
	"uuid":         plain(protocol.ReadUUID, protocol.WriteUUID),
	"blockpos":     plain(protocol.ReadBlockPos, protocol.WriteBlockPos),
	"vec3":         plain(protocol.ReadVec3, protocol.WriteVec3),
	"rotation":     plain(protocol.ReadRotation, protocol.WriteRotation),
	"byterotation": plain(protocol.ReadByteRotation, protocol.WriteByteRotation),
	"attributes":   plain(protocol.ReadAttributes, protocol.WriteAttributes),
	"skin":         plain(protocol.ReadSkin, protocol.WriteSkin),
	"resourcepack": plain(protocol.ReadResourcePackInfo, protocol.WriteResourcePackInfo),
	"message": {
		decode: func(_ *Decoder, b *protocol.Buffer) (any, error) { return protocol.ReadTranslatedMessage(b) },
		encode: func(_ *Decoder, b *protocol.Buffer, v any) error {
			msg, ok := v.(protocol.TranslatedMessage)
			if !ok {
				return fmt.Errorf("dump: cannot encode %T", v)
			}
			return protocol.WriteTranslatedMessage(b, msg)
		},
	},
	"item": {
		decode: func(d *Decoder, b *protocol.Buffer) (any, error) { return d.Items.Read(b) },
		encode: func(d *Decoder, b *protocol.Buffer, v any) error {
			s, ok := v.(item.Stack)
			if !ok {
				return fmt.Errorf("dump: cannot encode %T", v)
			}
			return d.Items.Write(b, s)
		},
		unordered: true,
	},
}

// Kinds returns the supported kind names, sorted.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookup(kind string) (codec, error) {
	c, ok := kinds[kind]
	if !ok {
		return codec{}, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	return c, nil
}

type Decoder struct {
	Items *protocol.ItemCodec
}

func New(items *protocol.ItemCodec) *Decoder {
	return &Decoder{Items: items}
}

func (d *Decoder) Decode(kind string, b *protocol.Buffer) (any, error) {
	c, err := lookup(kind)
	if err != nil {
		return nil, err
	}
	return c.decode(d, b)
}

func (d *Decoder) Encode(kind string, b *protocol.Buffer, v any) error {
	c, err := lookup(kind)
	if err != nil {
		return err
	}
	return c.encode(d, b, v)
}

// DecodeAll decodes values of kind until b is exhausted. On error it
// returns the values decoded so far along with the error.
func (d *Decoder) DecodeAll(kind string, b *protocol.Buffer) ([]any, error) {
	var out []any
	for b.Len() > 0 {
		start := b.ReaderIndex()
		v, err := d.Decode(kind, b)
		if err != nil {
			return out, fmt.Errorf("offset %d: %w", start, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Result is a decoded value plus, when verified, whether re-encoding it
// reproduced it. Exact reports a byte-for-byte match; Match also accepts a
// different byte order that decodes to the same value, for kinds whose
// encoding is not canonical.
type Result struct {
	Offset   int
	Raw      []byte
	Value    any
	Verified bool
	Match    bool
	Exact    bool
}

// Verify decodes one value from b and re-encodes it.
func (d *Decoder) Verify(kind string, b *protocol.Buffer) (Result, error) {
	c, err := lookup(kind)
	if err != nil {
		return Result{}, err
	}
	start := b.ReaderIndex()
	before := b.Bytes()
	v, err := c.decode(d, b)
	if err != nil {
		return Result{}, err
	}
	raw := before[:b.ReaderIndex()-start]
	var out protocol.Buffer
	if err := c.encode(d, &out, v); err != nil {
		return Result{}, fmt.Errorf("re-encode %s: %w", kind, err)
	}
	res := Result{Offset: start, Raw: raw, Value: v, Verified: true}
	res.Exact = bytes.Equal(raw, out.Bytes())
	res.Match = res.Exact
	if !res.Exact && c.unordered {
		again, err := c.decode(d, &out)
		res.Match = err == nil && out.Len() == 0 && reflect.DeepEqual(v, again)
	}
	return res, nil
}

// ParseHex decodes a hex dump. Whitespace, "0x" prefixes and ':' or ','
// separators are ignored.
func ParseHex(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, "0x", "")
	s = strings.ReplaceAll(s, "0X", "")
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ':' || r == ',' {
			return -1
		}
		return r
	}, s)
	return hex.DecodeString(clean)
}
