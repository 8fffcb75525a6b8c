package item

// Metadata is the type-specific 16-bit value carried in a stack's aux field.
type Metadata interface {
	MetadataValue() int16
}

// Damage is the wear of a durable item.
type Damage int16

func (d Damage) MetadataValue() int16 { return int16(d) }

// Variant selects a sub-kind of a type, e.g. a wool colour or plank wood.
type Variant int16

func (v Variant) MetadataValue() int16 { return int16(v) }

// MetadataCodec converts between a stack's domain metadata and its wire
// value.
type MetadataCodec interface {
	Deserialize(t Type, value int16) (Metadata, error)
	Serialize(s Stack) int16
}

// DefaultMetadata maps durable types to Damage and everything else to
// Variant. A zero variant is represented as nil metadata.
type DefaultMetadata struct{}

func (DefaultMetadata) Deserialize(t Type, value int16) (Metadata, error) {
	if t.Durability > 0 {
		return Damage(value), nil
	}
	if value == 0 {
		return nil, nil
	}
	return Variant(value), nil
}

func (DefaultMetadata) Serialize(s Stack) int16 {
	if s.Metadata() == nil {
		return 0
	}
	return s.Metadata().MetadataValue()
}
