// Package item holds the item-stack domain model and the collaborators the
// wire codec consults: the type registry and the metadata codec.
package item

import "maps"

// Type is an item definition.
type Type struct {
	ID         int32  `yaml:"id"`
	Name       string `yaml:"name"`
	MaxStack   int    `yaml:"max_stack"`
	Durability int16  `yaml:"durability"`
}

// Air is the "no item" type. A stack of air is always empty.
var Air = Type{ID: 0, Name: "air"}

// Stack is an item stack. The zero value is the empty stack; a present
// stack can only be made through a Builder.
type Stack struct {
	present  bool
	typ      Type
	count    int
	metadata Metadata
	data     map[string]any
}

// Empty returns the empty stack.
func Empty() Stack { return Stack{} }

func (s Stack) IsEmpty() bool { return !s.present }

func (s Stack) Type() Type {
	if !s.present {
		return Air
	}
	return s.typ
}

func (s Stack) Count() int { return s.count }

// Metadata returns the type-specific damage or variant, or nil.
func (s Stack) Metadata() Metadata { return s.metadata }

// Data returns the stack's extra structured data, nil when it has none.
// A stack that carried an empty compound returns an empty, non-nil map.
// The map must not be modified.
func (s Stack) Data() map[string]any { return s.data }

// HasData reports whether the stack carries a compound, even an empty one.
func (s Stack) HasData() bool { return s.data != nil }

type Builder struct {
	typ      Type
	count    int
	metadata Metadata
	data     map[string]any
}

func NewBuilder(t Type) *Builder {
	return &Builder{typ: t, count: 1}
}

func (b *Builder) Count(n int) *Builder {
	b.count = n
	return b
}

func (b *Builder) Metadata(m Metadata) *Builder {
	b.metadata = m
	return b
}

// MergeData copies the fields of a decoded compound into the stack's
// extra data. Later merges overwrite earlier keys. A nil map is ignored;
// an empty one still marks the stack as carrying data.
func (b *Builder) MergeData(fields map[string]any) *Builder {
	if fields == nil {
		return b
	}
	if b.data == nil {
		b.data = make(map[string]any, len(fields))
	}
	maps.Copy(b.data, fields)
	return b
}

// Build returns the stack. A builder for Air yields the empty stack.
func (b *Builder) Build() Stack {
	if b.typ.ID == Air.ID {
		return Empty()
	}
	s := Stack{present: true, typ: b.typ, count: b.count, metadata: b.metadata}
	if b.data != nil {
		s.data = maps.Clone(b.data)
	}
	return s
}
