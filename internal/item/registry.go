package item

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateType = errors.New("duplicate item type")
	ErrReservedID    = errors.New("item id 0 is reserved for air")
)

// Registry resolves wire IDs to item types. The reverse mapping is Type.ID.
type Registry interface {
	ByID(id int32) (Type, bool)
}

// Table is an immutable Registry built from a list of types. It is safe for
// concurrent use.
type Table struct {
	byID   map[int32]Type
	byName map[string]Type
}

func NewTable(types ...Type) (*Table, error) {
	t := &Table{
		byID:   make(map[int32]Type, len(types)+1),
		byName: make(map[string]Type, len(types)+1),
	}
	t.byID[Air.ID] = Air
	t.byName[Air.Name] = Air
	for _, typ := range types {
		if typ.ID == Air.ID {
			if typ.Name == Air.Name {
				continue
			}
			return nil, fmt.Errorf("%w: %q", ErrReservedID, typ.Name)
		}
		if _, ok := t.byID[typ.ID]; ok {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateType, typ.ID)
		}
		if _, ok := t.byName[typ.Name]; ok {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicateType, typ.Name)
		}
		if typ.MaxStack == 0 {
			typ.MaxStack = 64
		}
		t.byID[typ.ID] = typ
		t.byName[typ.Name] = typ
	}
	return t, nil
}

func (t *Table) ByID(id int32) (Type, bool) {
	typ, ok := t.byID[id]
	return typ, ok
}

func (t *Table) ByName(name string) (Type, bool) {
	typ, ok := t.byName[name]
	return typ, ok
}

// Types returns every registered type ordered by ID, air included.
func (t *Table) Types() []Type {
	out := make([]Type, 0, len(t.byID))
	for _, typ := range t.byID {
		out = append(out, typ)
	}
	slices.SortFunc(out, func(a, b Type) int { return int(a.ID) - int(b.ID) })
	return out
}

type tableFile struct {
	Items []Type `yaml:"items"`
}

// LoadTable reads a YAML item table:
//
//	items:
//	  - id: 276
//	    name: diamond_sword
//	    max_stack: 1
//	    durability: 1562
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse item table %s: %w", path, err)
	}
	return NewTable(f.Items...)
}

var defaultTypes = []Type{
	{ID: 1, Name: "stone"},
	{ID: 2, Name: "grass"},
	{ID: 3, Name: "dirt"},
	{ID: 4, Name: "cobblestone"},
	{ID: 5, Name: "planks"},
	{ID: 17, Name: "log"},
	{ID: 35, Name: "wool"},
	{ID: 50, Name: "torch"},
	{ID: 54, Name: "chest"},
	{ID: 256, Name: "iron_shovel", MaxStack: 1, Durability: 251},
	{ID: 257, Name: "iron_pickaxe", MaxStack: 1, Durability: 251},
	{ID: 258, Name: "iron_axe", MaxStack: 1, Durability: 251},
	{ID: 261, Name: "bow", MaxStack: 1, Durability: 385},
	{ID: 262, Name: "arrow"},
	{ID: 263, Name: "coal"},
	{ID: 264, Name: "diamond"},
	{ID: 267, Name: "iron_sword", MaxStack: 1, Durability: 251},
	{ID: 276, Name: "diamond_sword", MaxStack: 1, Durability: 1562},
	{ID: 278, Name: "diamond_pickaxe", MaxStack: 1, Durability: 1562},
	{ID: 280, Name: "stick"},
	{ID: 297, Name: "bread"},
	{ID: 339, Name: "paper"},
	{ID: 340, Name: "book"},
	{ID: 344, Name: "egg", MaxStack: 16},
	{ID: 351, Name: "dye"},
	{ID: 364, Name: "steak"},
}

// DefaultTable returns a table of common vanilla items.
func DefaultTable() *Table {
	t, err := NewTable(defaultTypes...)
	if err != nil {
		panic(err)
	}
	return t
}
