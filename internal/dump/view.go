package dump

import (
	"encoding/hex"

	"github.com/Versifine/mcpewire/internal/item"
	"github.com/Versifine/mcpewire/internal/protocol"
)

type stackView struct {
	Empty    bool           `yaml:"empty,omitempty"`
	ID       int32          `yaml:"id,omitempty"`
	Name     string         `yaml:"name,omitempty"`
	Count    int            `yaml:"count,omitempty"`
	Metadata any            `yaml:"metadata,omitempty"`
	Data     map[string]any `yaml:"data,omitempty"`
}

type metadataView struct {
	Kind  string `yaml:"kind"`
	Value int16  `yaml:"value"`
}

type skinView struct {
	Type         string `yaml:"type"`
	TextureBytes int    `yaml:"texture_bytes"`
	TextureHead  string `yaml:"texture_head,omitempty"`
}

type resultView struct {
	Offset int    `yaml:"offset"`
	Raw    string `yaml:"raw"`
	Match  bool   `yaml:"match"`
	Exact  bool   `yaml:"exact"`
	Value  any    `yaml:"value"`
}

// View converts a decoded value into a form that marshals to readable YAML.
func View(v any) any {
	switch v := v.(type) {
	case item.Stack:
		if v.IsEmpty() {
			return stackView{Empty: true}
		}
		sv := stackView{
			ID:    v.Type().ID,
			Name:  v.Type().Name,
			Count: v.Count(),
			Data:  v.Data(),
		}
		switch m := v.Metadata().(type) {
		case item.Damage:
			sv.Metadata = metadataView{Kind: "damage", Value: int16(m)}
		case item.Variant:
			sv.Metadata = metadataView{Kind: "variant", Value: int16(m)}
		case item.Metadata:
			sv.Metadata = metadataView{Kind: "other", Value: m.MetadataValue()}
		}
		return sv
	case protocol.Skin:
		head := v.Texture
		if len(head) > 16 {
			head = head[:16]
		}
		return skinView{Type: v.Type, TextureBytes: len(v.Texture), TextureHead: hex.EncodeToString(head)}
	case Result:
		return resultView{Offset: v.Offset, Raw: hex.EncodeToString(v.Raw), Match: v.Match, Exact: v.Exact, Value: View(v.Value)}
	default:
		return v
	}
}
