package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

// InfoCacheVersion is the current version of the info cache file format.
const InfoCacheVersion = 1

type infoCacheFile struct {
	Version int                       `cbor:"1,keyasint"`
	SavedAt time.Time                 `cbor:"2,keyasint"`
	Entries map[string]infoCacheEntry `cbor:"3,keyasint,omitempty"`
}

type infoCacheEntry struct {
	// Fingerprint is the BLAKE2b-256 digest of the module file.
	Fingerprint []byte `cbor:"1,keyasint"`

	// Info is the encoded driver-info schema.
	Info []byte `cbor:"2,keyasint"`
}

// InfoCache persists driver-info schemas keyed by module path. An entry is
// valid only while the module file content is unchanged. A nil *InfoCache
// never hits and stores nothing.
type InfoCache struct {
	mu      sync.Mutex
	path    string
	entries map[string]infoCacheEntry
}

// NewInfoCache creates a cache backed by the file at path. The file is read
// on first use.
func NewInfoCache(path string) *InfoCache {
	return &InfoCache{path: path}
}

// Fingerprint returns the BLAKE2b-256 digest of a file.
func Fingerprint(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// Get returns the cached info schema of the module at modulePath.
func (c *InfoCache) Get(modulePath string) (*schema.Schema, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(); err != nil {
		return nil, false
	}
	entry, ok := c.entries[modulePath]
	if !ok {
		return nil, false
	}

	sum, err := Fingerprint(modulePath)
	if err != nil || !bytes.Equal(sum, entry.Fingerprint) {
		return nil, false
	}
	s, err := schema.Unmarshal(entry.Info)
	if err != nil {
		return nil, false
	}
	return s, true
}

// Put stores the info schema of the module at modulePath and saves the
// cache file.
func (c *InfoCache) Put(modulePath string, info *schema.Schema) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// An unreadable cache file is replaced.
	_ = c.load()

	sum, err := Fingerprint(modulePath)
	if err != nil {
		return err
	}
	data, err := schema.Marshal(info)
	if err != nil {
		return err
	}
	c.entries[modulePath] = infoCacheEntry{Fingerprint: sum, Info: data}
	return c.save()
}

// Clear removes all entries and the cache file.
func (c *InfoCache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]infoCacheEntry)
	err := os.Remove(c.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// load reads the cache file once. A missing file is an empty cache.
func (c *InfoCache) load() error {
	if c.entries != nil {
		return nil
	}
	c.entries = make(map[string]infoCacheEntry)

	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var file infoCacheFile
	if err := cbor.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("decode info cache: %w", err)
	}
	if file.Version != InfoCacheVersion {
		return fmt.Errorf("info cache version %d, want %d", file.Version, InfoCacheVersion)
	}
	for k, v := range file.Entries {
		c.entries[k] = v
	}
	return nil
}

func (c *InfoCache) save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}
	data, err := cbor.Marshal(infoCacheFile{
		Version: InfoCacheVersion,
		SavedAt: time.Now(),
		Entries: c.entries,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0644)
}
