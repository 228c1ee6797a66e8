package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-farmfilter/bloom"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "farmfilter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultHash, cfg.Hash)
	assert.InDelta(t, DefaultErrorRate, cfg.ErrorRate, 1e-12)
	assert.Equal(t, DefaultCompress, cfg.Compress)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultBits, cfg.Bits)
	assert.Equal(t, DefaultHashes, cfg.Hashes)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "hash: xxh3\nerror_rate: 0.01\ncompress: true\nbits: 4096\nhashes: 5\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, bloom.HashXXH3, cfg.Hash)
	assert.InDelta(t, 0.01, cfg.ErrorRate, 1e-12)
	assert.True(t, cfg.Compress)
	assert.Equal(t, uint64(4096), cfg.Bits)
	assert.Equal(t, 5, cfg.Hashes)
	assert.Equal(t, bloom.XXH3([]byte("x"), 1), cfg.HashFunc()([]byte("x"), 1))
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "hash: xxh3\n")
	t.Setenv("FARMFILTER_HASH", "murmur3")
	t.Setenv("FARMFILTER_LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, bloom.HashMurmur3, cfg.Hash)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "hash: md5\n"))
	require.ErrorIs(t, err, bloom.ErrUnknownHash)

	_, err = LoadConfig(writeConfig(t, "error_rate: 1.5\n"))
	require.ErrorIs(t, err, ErrInvalidErrorRate)

	_, err = LoadConfig(writeConfig(t, "hashes: 300\n"))
	require.ErrorIs(t, err, ErrInvalidHashes)

	_, err = LoadConfig(writeConfig(t, "bits: 0\n"))
	require.ErrorIs(t, err, ErrInvalidBits)
}
