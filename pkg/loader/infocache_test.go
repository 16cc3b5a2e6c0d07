package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screen-co/libhyscandriver-sub000/pkg/driver"
)

func TestInfoCacheSkipsOpen(t *testing.T) {
	opener := newFakeOpener()
	opener.add("hyscan-a.drv", validSymbols(t, "a"))
	dir := writeFiles(t, "hyscan-a.drv")
	cachePath := filepath.Join(t.TempDir(), "cache", "info.cbor")

	_, err := New(Config{Opener: opener, InfoCachePath: cachePath}).Info(dir, "a")
	require.NoError(t, err)
	require.Equal(t, 1, opener.openCount("hyscan-a.drv"))
	require.FileExists(t, cachePath)

	// A new loader reads the persisted entry.
	s, err := New(Config{Opener: opener, InfoCachePath: cachePath}).Info(dir, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, opener.openCount("hyscan-a.drv"))

	info, err := driver.ParseInfo(s)
	require.NoError(t, err)
	assert.Equal(t, "a", info.ID)
}

func TestInfoCacheInvalidatedByContent(t *testing.T) {
	opener := newFakeOpener()
	opener.add("hyscan-a.drv", validSymbols(t, "a"))
	dir := writeFiles(t, "hyscan-a.drv")
	cachePath := filepath.Join(t.TempDir(), "info.cbor")
	l := New(Config{Opener: opener, InfoCachePath: cachePath})

	_, err := l.Info(dir, "a")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "hyscan-a.drv"), []byte("rebuilt"), 0644))
	_, err = l.Info(dir, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, opener.openCount("hyscan-a.drv"))
}

func TestInfoCacheCorruptFile(t *testing.T) {
	opener := newFakeOpener()
	opener.add("hyscan-a.drv", validSymbols(t, "a"))
	dir := writeFiles(t, "hyscan-a.drv")
	cachePath := filepath.Join(t.TempDir(), "info.cbor")
	require.NoError(t, os.WriteFile(cachePath, []byte{0xff, 0x00}, 0644))

	_, err := New(Config{Opener: opener, InfoCachePath: cachePath}).Info(dir, "a")
	require.NoError(t, err)

	// The corrupt file was replaced.
	_, err = New(Config{Opener: opener, InfoCachePath: cachePath}).Info(dir, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, opener.openCount("hyscan-a.drv"))
}

func TestInfoCacheClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.cbor")
	c := NewInfoCache(path)

	module := writeFiles(t, "hyscan-a.drv")
	require.NoError(t, c.Put(filepath.Join(module, "hyscan-a.drv"), infoSchema(t, "a")))
	require.FileExists(t, path)

	require.NoError(t, c.Clear())
	assert.NoFileExists(t, path)
	_, ok := c.Get(filepath.Join(module, "hyscan-a.drv"))
	assert.False(t, ok)

	// Clearing twice is fine.
	require.NoError(t, c.Clear())
}

func TestNilInfoCache(t *testing.T) {
	var c *InfoCache
	_, ok := c.Get("x")
	assert.False(t, ok)
	assert.NoError(t, c.Put("x", nil))
	assert.NoError(t, c.Clear())
}

func TestFingerprint(t *testing.T) {
	dir := writeFiles(t, "a", "b")

	a1, err := Fingerprint(filepath.Join(dir, "a"))
	require.NoError(t, err)
	a2, err := Fingerprint(filepath.Join(dir, "a"))
	require.NoError(t, err)
	b, err := Fingerprint(filepath.Join(dir, "b"))
	require.NoError(t, err)

	assert.Len(t, a1, 32)
	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, b)

	_, err = Fingerprint(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
