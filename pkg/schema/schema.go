package schema

// Reader is the read side of a schema consumed by decoders.
type Reader interface {
	// Keys returns all key paths in insertion order.
	Keys() []string

	// Key returns a copy of the key description.
	Key(path string) (Key, bool)

	GetBoolean(path string) (bool, bool)
	GetInteger(path string) (int64, bool)
	GetDouble(path string) (float64, bool)
	GetString(path string) (string, bool)
	GetEnum(path string) (int64, bool)

	// IntegerRange returns the range of an integer key.
	IntegerRange(path string) (min, max, step int64, ok bool)

	// DoubleRange returns the range of a double key.
	DoubleRange(path string) (min, max, step float64, ok bool)
}

// Schema is an immutable set of keys produced by Builder.Build or Unmarshal.
// It is safe for concurrent use.
type Schema struct {
	keys  map[string]*Key
	order []string
}

// Compile-time interface satisfaction check.
var _ Reader = (*Schema)(nil)

// Keys returns all key paths in insertion order.
func (s *Schema) Keys() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Len returns the number of keys.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Has returns true if the key exists.
func (s *Schema) Has(path string) bool {
	_, ok := s.get(path)
	return ok
}

// Key returns a copy of the key description.
func (s *Schema) Key(path string) (Key, bool) {
	key, ok := s.get(path)
	if !ok {
		return Key{}, false
	}
	return *key.clone(), true
}

// GetBoolean returns the value of a boolean key.
func (s *Schema) GetBoolean(path string) (bool, bool) {
	key, ok := s.typed(path, TypeBoolean)
	if !ok {
		return false, false
	}
	return key.Default.Bool, true
}

// GetInteger returns the value of an integer key.
func (s *Schema) GetInteger(path string) (int64, bool) {
	key, ok := s.typed(path, TypeInteger)
	if !ok {
		return 0, false
	}
	return key.Default.Int, true
}

// GetDouble returns the value of a double key.
func (s *Schema) GetDouble(path string) (float64, bool) {
	key, ok := s.typed(path, TypeDouble)
	if !ok {
		return 0, false
	}
	return key.Default.Double, true
}

// GetString returns the value of a string key.
func (s *Schema) GetString(path string) (string, bool) {
	key, ok := s.typed(path, TypeString)
	if !ok {
		return "", false
	}
	return key.Default.Str, true
}

// GetEnum returns the value of an enum key.
func (s *Schema) GetEnum(path string) (int64, bool) {
	key, ok := s.typed(path, TypeEnum)
	if !ok {
		return 0, false
	}
	return key.Default.Int, true
}

// IntegerRange returns the range of an integer key.
func (s *Schema) IntegerRange(path string) (min, max, step int64, ok bool) {
	key, found := s.typed(path, TypeInteger)
	if !found || key.IntRange == nil {
		return 0, 0, 0, false
	}
	return key.IntRange.Min, key.IntRange.Max, key.IntRange.Step, true
}

// DoubleRange returns the range of a double key.
func (s *Schema) DoubleRange(path string) (min, max, step float64, ok bool) {
	key, found := s.typed(path, TypeDouble)
	if !found || key.DblRange == nil {
		return 0, 0, 0, false
	}
	return key.DblRange.Min, key.DblRange.Max, key.DblRange.Step, true
}

func (s *Schema) get(path string) (*Key, bool) {
	if s == nil {
		return nil, false
	}
	key, ok := s.keys[path]
	return key, ok
}

// typed returns a readable key of the requested type.
func (s *Schema) typed(path string, t ValueType) (*Key, bool) {
	key, ok := s.get(path)
	if !ok || key.Type != t || !key.Access.CanRead() {
		return nil, false
	}
	return key, true
}
