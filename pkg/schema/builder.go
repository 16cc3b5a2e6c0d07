package schema

import (
	"fmt"
	"math"
)

// Builder collects keys for a new schema.
// A Builder is not safe for concurrent use.
type Builder struct {
	keys  map[string]*Key
	order []string
}

// NewBuilder creates an empty schema builder.
func NewBuilder() *Builder {
	return &Builder{
		keys: make(map[string]*Key),
	}
}

// CreateBoolean adds a boolean key.
func (b *Builder) CreateBoolean(path, name, description string, def bool) error {
	return b.add(&Key{
		Path:        path,
		Name:        name,
		Description: description,
		Type:        TypeBoolean,
		Default:     Value{Bool: def},
	})
}

// CreateInteger adds an integer key.
func (b *Builder) CreateInteger(path, name, description string, def int64) error {
	return b.add(&Key{
		Path:        path,
		Name:        name,
		Description: description,
		Type:        TypeInteger,
		Default:     Value{Int: def},
	})
}

// CreateDouble adds a double key.
func (b *Builder) CreateDouble(path, name, description string, def float64) error {
	if math.IsNaN(def) {
		return fmt.Errorf("%w: NaN default for %s", ErrOutOfRange, path)
	}
	return b.add(&Key{
		Path:        path,
		Name:        name,
		Description: description,
		Type:        TypeDouble,
		Default:     Value{Double: def},
	})
}

// CreateString adds a string key.
func (b *Builder) CreateString(path, name, description, def string) error {
	return b.add(&Key{
		Path:        path,
		Name:        name,
		Description: description,
		Type:        TypeString,
		Default:     Value{Str: def},
	})
}

// CreateEnum adds an enum key. The default must be one of the values.
func (b *Builder) CreateEnum(path, name, description string, values []EnumValue, def int64) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: no values for %s", ErrInvalidEnum, path)
	}
	if !enumContains(values, def) {
		return fmt.Errorf("%w: default %d for %s", ErrInvalidEnum, def, path)
	}
	return b.add(&Key{
		Path:        path,
		Name:        name,
		Description: description,
		Type:        TypeEnum,
		Default:     Value{Int: def},
		Enum:        append([]EnumValue(nil), values...),
	})
}

func (b *Builder) add(key *Key) error {
	if !ValidPath(key.Path) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, key.Path)
	}
	if _, exists := b.keys[key.Path]; exists {
		return fmt.Errorf("%w: %s", ErrKeyExists, key.Path)
	}
	key.Access = AccessDefault
	b.keys[key.Path] = key
	b.order = append(b.order, key.Path)
	return nil
}

// SetIntegerRange attaches a range to an integer key.
// The current default must lie inside the range.
func (b *Builder) SetIntegerRange(path string, min, max, step int64) error {
	key, err := b.lookup(path, TypeInteger)
	if err != nil {
		return err
	}
	if min > max || step < 0 {
		return fmt.Errorf("%w: [%d, %d] step %d for %s", ErrInvalidRange, min, max, step, path)
	}
	if key.Default.Int < min || key.Default.Int > max {
		return fmt.Errorf("%w: default %d not in [%d, %d] for %s", ErrOutOfRange, key.Default.Int, min, max, path)
	}
	key.IntRange = &IntegerRange{Min: min, Max: max, Step: step}
	return nil
}

// SetDoubleRange attaches a range to a double key.
// The current default must lie inside the range.
func (b *Builder) SetDoubleRange(path string, min, max, step float64) error {
	key, err := b.lookup(path, TypeDouble)
	if err != nil {
		return err
	}
	if math.IsNaN(min) || math.IsNaN(max) || min > max || step < 0 {
		return fmt.Errorf("%w: [%g, %g] step %g for %s", ErrInvalidRange, min, max, step, path)
	}
	if key.Default.Double < min || key.Default.Double > max {
		return fmt.Errorf("%w: default %g not in [%g, %g] for %s", ErrOutOfRange, key.Default.Double, min, max, path)
	}
	key.DblRange = &DoubleRange{Min: min, Max: max, Step: step}
	return nil
}

// SetAccess sets the access flags of a key.
func (b *Builder) SetAccess(path string, access Access) error {
	key, ok := b.keys[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, path)
	}
	key.Access = access
	return nil
}

// Has returns true if a key with the given path exists.
func (b *Builder) Has(path string) bool {
	_, ok := b.keys[path]
	return ok
}

// Keys returns the key paths in insertion order.
func (b *Builder) Keys() []string {
	return append([]string(nil), b.order...)
}

// Build returns an immutable snapshot of the collected keys.
// The builder stays usable; later changes do not affect the returned schema.
func (b *Builder) Build() *Schema {
	s := &Schema{
		keys:  make(map[string]*Key, len(b.keys)),
		order: append([]string(nil), b.order...),
	}
	for path, key := range b.keys {
		s.keys[path] = key.clone()
	}
	return s
}

func (b *Builder) lookup(path string, t ValueType) (*Key, error) {
	key, ok := b.keys[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, path)
	}
	if key.Type != t {
		return nil, fmt.Errorf("%w: %s is %s, not %s", ErrTypeMismatch, path, key.Type, t)
	}
	return key, nil
}

func enumContains(values []EnumValue, v int64) bool {
	for _, ev := range values {
		if ev.Value == v {
			return true
		}
	}
	return false
}
