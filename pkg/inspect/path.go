// Package inspect renders schemas and driver information for command line
// tools.
//
// The inspect package offers:
//   - Parsing user supplied key path prefixes (e.g. "sources/ss-port")
//   - Selecting schema keys below a prefix
//   - Formatting keys, driver info and device summaries for display
package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/screen-co/libhyscandriver-sub000/pkg/keypath"
)

// Path errors.
var (
	ErrEmptyPath   = errors.New("empty path")
	ErrInvalidPath = errors.New("invalid path format")
)

// ParsePath normalizes a key path prefix typed by a user. The leading
// slash is optional; "/" and "" select the whole schema. The returned
// prefix has no trailing slash.
//
// Supported formats:
//   - "sources" - a namespace
//   - "sources/ss-port" - an entity
//   - "/sources/ss-port/tvg" - any deeper branch
func ParsePath(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyPath
	}

	trimmed := strings.Trim(input, "/")
	if trimmed == "" {
		return "", nil
	}
	if strings.Contains(trimmed, "//") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, input)
	}

	for _, seg := range strings.Split(trimmed, "/") {
		if !keypath.ValidSegment(seg) {
			return "", fmt.Errorf("%w: segment %q", ErrInvalidPath, seg)
		}
	}
	return "/" + trimmed, nil
}

// Match reports whether path equals prefix or lies below it. An empty
// prefix matches every path.
func Match(prefix, path string) bool {
	if prefix == "" {
		return true
	}
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}
