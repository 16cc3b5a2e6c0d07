package schema

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// FormatVersion is the version of the binary schema encoding.
const FormatVersion = 1

// encMode is the CBOR encoder mode for schemas.
// Configured for deterministic encoding with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for schemas.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Lenient on unknown fields so newer writers stay readable.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// wireSchema is the on-disk layout of a schema.
type wireSchema struct {
	Version uint8 `cbor:"1,keyasint"`
	Keys    []Key `cbor:"2,keyasint"`
}

// Marshal encodes a schema to CBOR bytes. Key order is preserved.
func Marshal(s *Schema) ([]byte, error) {
	w := wireSchema{
		Version: FormatVersion,
		Keys:    make([]Key, 0, s.Len()),
	}
	for _, path := range s.Keys() {
		w.Keys = append(w.Keys, *s.keys[path])
	}
	return encMode.Marshal(w)
}

// Unmarshal decodes CBOR bytes produced by Marshal into a schema.
func Unmarshal(data []byte) (*Schema, error) {
	var w wireSchema
	if err := decMode.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if w.Version != FormatVersion {
		return nil, fmt.Errorf("%w: format version %d", ErrInvalidSchema, w.Version)
	}

	s := &Schema{
		keys:  make(map[string]*Key, len(w.Keys)),
		order: make([]string, 0, len(w.Keys)),
	}
	for i := range w.Keys {
		key := w.Keys[i]
		if err := validateKey(&key); err != nil {
			return nil, err
		}
		if _, exists := s.keys[key.Path]; exists {
			return nil, fmt.Errorf("%w: duplicate key %s", ErrInvalidSchema, key.Path)
		}
		s.keys[key.Path] = &key
		s.order = append(s.order, key.Path)
	}
	return s, nil
}

// validateKey checks a decoded key for consistency.
func validateKey(key *Key) error {
	if !ValidPath(key.Path) {
		return fmt.Errorf("%w: bad path %q", ErrInvalidSchema, key.Path)
	}
	switch key.Type {
	case TypeBoolean, TypeString:
		if key.IntRange != nil || key.DblRange != nil {
			return fmt.Errorf("%w: range on %s key %s", ErrInvalidSchema, key.Type, key.Path)
		}
	case TypeInteger:
		if key.DblRange != nil {
			return fmt.Errorf("%w: double range on integer key %s", ErrInvalidSchema, key.Path)
		}
	case TypeDouble:
		if key.IntRange != nil {
			return fmt.Errorf("%w: integer range on double key %s", ErrInvalidSchema, key.Path)
		}
	case TypeEnum:
		if !enumContains(key.Enum, key.Default.Int) {
			return fmt.Errorf("%w: enum default for %s", ErrInvalidSchema, key.Path)
		}
	default:
		return fmt.Errorf("%w: unknown type %d for %s", ErrInvalidSchema, key.Type, key.Path)
	}
	return nil
}
