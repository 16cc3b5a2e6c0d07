package schema

import (
	"errors"
	"strings"
)

// Schema errors.
var (
	ErrInvalidPath   = errors.New("invalid key path")
	ErrKeyExists     = errors.New("key already exists")
	ErrKeyNotFound   = errors.New("key not found")
	ErrTypeMismatch  = errors.New("key type mismatch")
	ErrInvalidRange  = errors.New("invalid range")
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidEnum   = errors.New("invalid enum value")
	ErrInvalidSchema = errors.New("invalid schema data")
)

// ValueType represents the type of a key value.
type ValueType uint8

const (
	TypeInvalid ValueType = iota
	TypeBoolean
	TypeInteger
	TypeDouble
	TypeString
	TypeEnum
)

// String returns the value type name.
func (t ValueType) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeEnum:
		return "enum"
	default:
		return "invalid"
	}
}

// Access flags for keys.
type Access uint8

const (
	// AccessRead allows reading the key value.
	AccessRead Access = 1 << iota

	// AccessWrite allows changing the key value at runtime.
	AccessWrite

	// AccessHidden marks keys that user interfaces should not display.
	AccessHidden

	// AccessReadOnly is read without write.
	AccessReadOnly = AccessRead

	// AccessReadWrite is read and write.
	AccessReadWrite = AccessRead | AccessWrite

	// AccessDefault is applied to newly created keys.
	AccessDefault = AccessReadWrite
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

// IsHidden returns true if the key is hidden.
func (a Access) IsHidden() bool { return a&AccessHidden != 0 }

// String returns the access flags as a string.
func (a Access) String() string {
	var s string
	if a.CanRead() {
		s += "R"
	}
	if a.CanWrite() {
		s += "W"
	}
	if a.IsHidden() {
		s += "H"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Value holds a key value. Only the field matching the key type is meaningful;
// enum values are stored in Int.
type Value struct {
	Bool   bool    `cbor:"1,keyasint,omitempty"`
	Int    int64   `cbor:"2,keyasint,omitempty"`
	Double float64 `cbor:"3,keyasint,omitempty"`
	Str    string  `cbor:"4,keyasint,omitempty"`
}

// IntegerRange constrains an integer key.
type IntegerRange struct {
	Min  int64 `cbor:"1,keyasint"`
	Max  int64 `cbor:"2,keyasint"`
	Step int64 `cbor:"3,keyasint"`
}

// DoubleRange constrains a double key.
type DoubleRange struct {
	Min  float64 `cbor:"1,keyasint"`
	Max  float64 `cbor:"2,keyasint"`
	Step float64 `cbor:"3,keyasint"`
}

// EnumValue is one allowed value of an enum key.
type EnumValue struct {
	Value       int64  `cbor:"1,keyasint"`
	ID          string `cbor:"2,keyasint"`
	Name        string `cbor:"3,keyasint"`
	Description string `cbor:"4,keyasint,omitempty"`
}

// Key describes a single schema key.
type Key struct {
	// Path is the full slash-delimited key path.
	Path string `cbor:"1,keyasint"`

	// Name is the human-readable key name.
	Name string `cbor:"2,keyasint"`

	// Description is an optional human-readable description.
	Description string `cbor:"3,keyasint,omitempty"`

	// Type is the value type.
	Type ValueType `cbor:"4,keyasint"`

	// Access defines the allowed operations.
	Access Access `cbor:"5,keyasint"`

	// Default is the key value.
	Default Value `cbor:"6,keyasint"`

	// IntRange is set for integer keys with a range.
	IntRange *IntegerRange `cbor:"7,keyasint,omitempty"`

	// DblRange is set for double keys with a range.
	DblRange *DoubleRange `cbor:"8,keyasint,omitempty"`

	// Enum lists the allowed values of an enum key.
	Enum []EnumValue `cbor:"9,keyasint,omitempty"`
}

// clone returns a deep copy of the key.
func (k *Key) clone() *Key {
	c := *k
	if k.IntRange != nil {
		r := *k.IntRange
		c.IntRange = &r
	}
	if k.DblRange != nil {
		r := *k.DblRange
		c.DblRange = &r
	}
	if k.Enum != nil {
		c.Enum = append([]EnumValue(nil), k.Enum...)
	}
	return &c
}

// ValidPath reports whether path is a well-formed key path: a leading slash
// followed by one or more non-empty segments of [0-9A-Za-z._-].
func ValidPath(path string) bool {
	if len(path) < 2 || path[0] != '/' {
		return false
	}
	for _, seg := range strings.Split(path[1:], "/") {
		if !validSegment(seg) {
			return false
		}
	}
	return true
}

func validSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '-' || c == '_' || c == '.':
		default:
			return false
		}
	}
	return true
}
