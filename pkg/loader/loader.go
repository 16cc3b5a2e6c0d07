package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	"github.com/screen-co/libhyscandriver-sub000/pkg/driver"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
	"github.com/screen-co/libhyscandriver-sub000/pkg/version"
)

// Loader errors.
var (
	ErrInvalidName        = errors.New("invalid driver name")
	ErrMissingSymbol      = errors.New("missing entry point")
	ErrBadSymbol          = errors.New("bad entry point")
	ErrIncompatibleModule = errors.New("incompatible driver module")
	ErrAPIVersion         = errors.New("driver API version mismatch")
)

// Module file naming defaults.
const (
	DefaultPrefix    = "hyscan"
	DefaultExtension = ".drv"
)

// Config configures a Loader.
type Config struct {
	// Prefix is the module file name prefix. Default: "hyscan".
	Prefix string

	// Extension is the module file extension. Default: ".drv".
	Extension string

	// Opener opens module files. Default: PluginOpener.
	Opener Opener

	// Logger for load decisions (optional).
	Logger *slog.Logger

	// Registerer receives loader metrics. Nil disables metrics.
	Registerer prometheus.Registerer

	// InfoCachePath is the file persisting driver info between runs.
	// Empty disables the cache.
	InfoCachePath string

	// CheckAPIVersion rejects modules built against another API version.
	CheckAPIVersion bool

	// APIVersion is the API version modules must match when
	// CheckAPIVersion is set. Default: version.API.
	APIVersion version.Code
}

func (c *Config) applyDefaults() {
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.Opener == nil {
		c.Opener = PluginOpener{}
	}
	if c.APIVersion == 0 {
		c.APIVersion = version.Code(version.API)
	}
}

// Loader loads driver modules and keeps them resident.
type Loader struct {
	config  Config
	logger  *slog.Logger
	metrics *Metrics
	cache   *InfoCache

	mu      sync.Mutex
	modules map[string]*Module
	group   singleflight.Group
}

// New creates a loader.
func New(config Config) *Loader {
	config.applyDefaults()

	l := &Loader{
		config:  config,
		logger:  config.Logger,
		modules: make(map[string]*Module),
	}
	if config.Registerer != nil {
		l.metrics = NewMetrics(config.Registerer)
	}
	if config.InfoCachePath != "" {
		l.cache = NewInfoCache(config.InfoCachePath)
	}
	return l
}

var (
	defaultOnce   sync.Once
	defaultLoader *Loader
)

// Default returns the process-wide loader. It lives until the process
// exits and registers its metrics with the default Prometheus registry.
func Default() *Loader {
	defaultOnce.Do(func() {
		defaultLoader = New(Config{
			Logger:          slog.Default(),
			Registerer:      prometheus.DefaultRegisterer,
			CheckAPIVersion: true,
		})
	})
	return defaultLoader
}

// ValidName reports whether name is a valid driver name.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

// FileName returns the module file name of a driver.
func (l *Loader) FileName(name string) string {
	return l.config.Prefix + "-" + name + l.config.Extension
}

// ParseFileName returns the driver name of a module file name.
func (l *Loader) ParseFileName(file string) (string, bool) {
	rest, ok := strings.CutPrefix(file, l.config.Prefix+"-")
	if !ok {
		return "", false
	}
	name, ok := strings.CutSuffix(rest, l.config.Extension)
	if !ok || !ValidName(name) {
		return "", false
	}
	return name, true
}

// path returns the canonical path of a driver module.
func (l *Loader) path(dir, name string) (string, error) {
	if !ValidName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	p, err := filepath.Abs(filepath.Join(dir, l.FileName(name)))
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(p)
}

// List returns the sorted names of the drivers in dir that pass load
// validation. Modules that fail are excluded without error; only an
// unreadable directory is reported.
func (l *Loader) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read driver directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name, ok := l.ParseFileName(e.Name())
		if !ok {
			continue
		}
		if _, err := l.Info(dir, name); err != nil {
			l.debugLog("driver excluded", "dir", dir, "name", name, "reason", err)
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Load loads a driver and returns its resident module. Repeated loads of
// the same module file return the same Module.
func (l *Loader) Load(dir, name string) (*Module, error) {
	path, err := l.path(dir, name)
	if err != nil {
		l.metrics.loadResult(resultFailed)
		return nil, err
	}

	if m := l.lookup(path); m != nil {
		l.metrics.loadResult(resultCached)
		return m, nil
	}

	v, err, _ := l.group.Do(path, func() (any, error) {
		if m := l.lookup(path); m != nil {
			return m, nil
		}
		return l.load(path, name)
	})
	if err != nil {
		l.metrics.loadResult(resultFailed)
		l.infoLog("driver rejected", "path", path, "name", name, "reason", err)
		return nil, err
	}
	return v.(*Module), nil
}

func (l *Loader) lookup(path string) *Module {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.modules[path]
}

func (l *Loader) load(path, name string) (*Module, error) {
	lib, d, info, err := l.open(path)
	if err != nil {
		return nil, err
	}

	m := &Module{
		name:       name,
		path:       path,
		info:       info.Info,
		infoSchema: info.schema,
		discover:   d,
		lib:        lib,
	}

	l.mu.Lock()
	l.modules[path] = m
	resident := len(l.modules)
	l.mu.Unlock()

	l.metrics.loadResult(resultLoaded)
	l.metrics.setResident(resident)
	l.infoLog("driver loaded", "path", path, "name", name, "version", info.Version)
	return m, nil
}

// loadedInfo is a validated driver info with its schema.
type loadedInfo struct {
	driver.Info
	schema *schema.Schema
}

// open opens a module file, validates both entry points and the info
// schema, and returns the discover object. On failure the library is
// closed.
func (l *Loader) open(path string) (lib Library, d driver.Discover, info loadedInfo, err error) {
	lib, err = l.config.Opener.Open(path)
	if err != nil {
		return nil, nil, loadedInfo{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = lib.Close()
			lib = nil
		}
	}()

	discover, err := lookupDiscover(lib)
	if err != nil {
		return
	}
	infoFn, err := lookupInfo(lib)
	if err != nil {
		return
	}
	if info, err = l.validateInfo(infoFn()); err != nil {
		return
	}
	if d = discover(); d == nil {
		err = fmt.Errorf("%w: %s returned nil", ErrBadSymbol, SymbolDiscover)
	}
	return
}

func (l *Loader) validateInfo(s *schema.Schema) (loadedInfo, error) {
	info, err := driver.ParseInfo(s)
	if err != nil {
		return loadedInfo{}, fmt.Errorf("%w: %v", ErrIncompatibleModule, err)
	}
	if l.config.CheckAPIVersion && version.Code(info.APIVersion) != l.config.APIVersion {
		return loadedInfo{}, fmt.Errorf("%w: module %s, want %s",
			ErrAPIVersion, version.Code(info.APIVersion), l.config.APIVersion)
	}
	return loadedInfo{Info: info, schema: s}, nil
}

// Info returns the info schema of a driver without keeping the module
// resident. Resident modules answer from memory; otherwise the persisted
// info cache is consulted before the module file is opened.
func (l *Loader) Info(dir, name string) (*schema.Schema, error) {
	path, err := l.path(dir, name)
	if err != nil {
		return nil, err
	}
	l.metrics.infoQuery()

	if m := l.lookup(path); m != nil {
		return m.infoSchema, nil
	}

	if s, ok := l.cache.Get(path); ok {
		if _, err := l.validateInfo(s); err == nil {
			l.debugLog("driver info cache hit", "path", path)
			return s, nil
		}
	}

	lib, _, info, err := l.open(path)
	if err != nil {
		return nil, err
	}
	_ = lib.Close()

	if err := l.cache.Put(path, info.schema); err != nil {
		l.debugLog("driver info cache write failed", "path", path, "reason", err)
	}
	return info.schema, nil
}

// Modules returns the resident modules sorted by path.
func (l *Loader) Modules() []*Module {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*Module, 0, len(l.modules))
	for _, m := range l.modules {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b *Module) int { return strings.Compare(a.path, b.path) })
	return out
}

func (l *Loader) debugLog(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}

func (l *Loader) infoLog(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Info(msg, args...)
	}
}
