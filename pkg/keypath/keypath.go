// Package keypath builds and parses the canonical key paths of capability
// entities:
//
//	/<namespace>/<entity-id>/<field>[/<field>...]
//
// where namespace is one of sensors, actuators or sources. A path whose
// depth is exactly namespace, entity id and one leaf field is an entity
// descriptor path; every other path is ignored by entity enumeration.
package keypath

import (
	"errors"
	"fmt"
	"strings"
)

// Path errors.
var (
	ErrInvalidSegment   = errors.New("invalid path segment")
	ErrInvalidNamespace = errors.New("invalid namespace")
)

// Namespace is the top-level branch of an entity.
type Namespace string

const (
	Sensors   Namespace = "sensors"
	Actuators Namespace = "actuators"
	Sources   Namespace = "sources"
)

// Valid returns true for the known namespaces.
func (n Namespace) Valid() bool {
	switch n {
	case Sensors, Actuators, Sources:
		return true
	default:
		return false
	}
}

// Common leaf fields.
const (
	FieldDevID       = "dev-id"
	FieldDescription = "description"
)

// Entity is a parsed entity descriptor path.
type Entity struct {
	Namespace Namespace
	ID        string
	Field     string
}

// String returns the canonical path.
func (e Entity) String() string {
	return "/" + string(e.Namespace) + "/" + e.ID + "/" + e.Field
}

// Build returns the canonical path for the given namespace, entity id and
// field segments. Every segment must be non-empty and consist of
// [0-9A-Za-z._-].
func Build(ns Namespace, id string, fields ...string) (string, error) {
	if !ns.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidNamespace, ns)
	}
	if !ValidSegment(id) {
		return "", fmt.Errorf("%w: entity id %q", ErrInvalidSegment, id)
	}

	var sb strings.Builder
	sb.WriteString("/")
	sb.WriteString(string(ns))
	sb.WriteString("/")
	sb.WriteString(id)

	for _, f := range fields {
		if !ValidSegment(f) {
			return "", fmt.Errorf("%w: field %q", ErrInvalidSegment, f)
		}
		sb.WriteString("/")
		sb.WriteString(f)
	}
	return sb.String(), nil
}

// Prefix returns the path prefix, with trailing slash, of all keys below
// /<namespace>/<id>/<fields...>.
func Prefix(ns Namespace, id string, fields ...string) (string, error) {
	p, err := Build(ns, id, fields...)
	if err != nil {
		return "", err
	}
	return p + "/", nil
}

// Split parses an entity descriptor path. It returns false for any path
// that does not have exactly the /<namespace>/<id>/<field> shape or whose
// namespace is unknown.
func Split(path string) (Entity, bool) {
	parts := strings.Split(path, "/")
	if len(parts) != 4 || parts[0] != "" {
		return Entity{}, false
	}

	ns := Namespace(parts[1])
	if !ns.Valid() || parts[2] == "" || parts[3] == "" {
		return Entity{}, false
	}
	return Entity{Namespace: ns, ID: parts[2], Field: parts[3]}, true
}

// Entities returns the ids of the namespace entities that have a leaf key
// named field, in the order of first appearance in paths.
func Entities(paths []string, ns Namespace, field string) []string {
	var ids []string
	seen := make(map[string]struct{})

	for _, p := range paths {
		e, ok := Split(p)
		if !ok || e.Namespace != ns || e.Field != field {
			continue
		}
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		ids = append(ids, e.ID)
	}
	return ids
}

// Children returns the trailing segments of paths that lie exactly one
// level below prefix. prefix must end with a slash.
func Children(paths []string, prefix string) []string {
	var out []string
	for _, p := range paths {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := p[len(prefix):]
		if rest == "" || strings.Contains(rest, "/") {
			continue
		}
		out = append(out, rest)
	}
	return out
}

// ValidSegment reports whether s is a valid path segment.
func ValidSegment(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
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
