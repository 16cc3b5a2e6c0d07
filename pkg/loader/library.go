package loader

import (
	"fmt"
	"plugin"

	"github.com/screen-co/libhyscandriver-sub000/pkg/driver"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

// Entry point symbol names.
const (
	SymbolDiscover = "HyScanDriverDiscover"
	SymbolInfo     = "HyScanDriverInfo"
)

// Library is an opened module file.
type Library interface {
	// Lookup resolves an exported symbol. Missing symbols return an error.
	Lookup(symbol string) (any, error)

	// Close releases the library.
	Close() error
}

// Opener opens module files.
type Opener interface {
	Open(path string) (Library, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(path string) (Library, error)

// Open calls f(path).
func (f OpenerFunc) Open(path string) (Library, error) { return f(path) }

// PluginOpener opens Go plugins built with -buildmode=plugin.
type PluginOpener struct{}

// Open implements Opener.
func (PluginOpener) Open(path string) (Library, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	return pluginLibrary{p: p}, nil
}

type pluginLibrary struct {
	p *plugin.Plugin
}

func (l pluginLibrary) Lookup(symbol string) (any, error) {
	sym, err := l.p.Lookup(symbol)
	if err != nil {
		return nil, err
	}
	return sym, nil
}

// Close drops the handle. The Go runtime never unmaps a plugin.
func (pluginLibrary) Close() error { return nil }

// lookupDiscover resolves the discover entry point. Both a function and a
// pointer to a function variable are accepted.
func lookupDiscover(lib Library) (func() driver.Discover, error) {
	sym, err := lib.Lookup(SymbolDiscover)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingSymbol, SymbolDiscover, err)
	}
	switch fn := sym.(type) {
	case func() driver.Discover:
		return fn, nil
	case *func() driver.Discover:
		if fn != nil && *fn != nil {
			return *fn, nil
		}
	}
	return nil, fmt.Errorf("%w: %s has type %T", ErrBadSymbol, SymbolDiscover, sym)
}

func lookupInfo(lib Library) (func() *schema.Schema, error) {
	sym, err := lib.Lookup(SymbolInfo)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingSymbol, SymbolInfo, err)
	}
	switch fn := sym.(type) {
	case func() *schema.Schema:
		return fn, nil
	case *func() *schema.Schema:
		if fn != nil && *fn != nil {
			return *fn, nil
		}
	}
	return nil, fmt.Errorf("%w: %s has type %T", ErrBadSymbol, SymbolInfo, sym)
}
