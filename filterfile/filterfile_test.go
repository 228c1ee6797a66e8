package filterfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-farmfilter/bloom"
)

func testFilter(t *testing.T) *bloom.Filter {
	t.Helper()
	f, err := bloom.CreateOptimal(200, 0.01)
	require.NoError(t, err)
	f.AddStrings("cat", "dog", "wallaby")
	return f
}

func newTestStore(t *testing.T, opts ...StoreOption) *Store {
	t.Helper()
	logger.New("NOOP")
	t.Cleanup(logger.OnExit)
	return NewStore(logger.Sugar.WithServiceName("filterfile-test"), opts...)
}

func TestWriteReadRaw(t *testing.T) {
	f := testFilter(t)
	want, err := f.MarshalBinary()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f, false))
	require.Equal(t, want, buf.Bytes())
	require.False(t, IsCompressed(buf.Bytes()))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.True(t, got.Equal(f))
}

func TestWriteReadCompressed(t *testing.T) {
	f := testFilter(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f, true))
	require.True(t, IsCompressed(buf.Bytes()))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.True(t, got.Equal(f))
	for _, a := range []string{"cat", "dog", "wallaby", "frog"} {
		assert.Equal(t, f.HasString(a), got.HasString(a), a)
	}
}

func TestReadPassesOptions(t *testing.T) {
	f, err := bloom.New(bloom.Config{Bits: 2048, Hashes: 3, Hash: bloom.XXH3})
	require.NoError(t, err)
	f.AddString("emu")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f, true))

	got, err := Read(&buf, bloom.WithHash(bloom.XXH3))
	require.NoError(t, err)
	require.True(t, got.HasString("emu"))
}

func TestReadRejectsBadInput(t *testing.T) {
	_, err := Read(bytes.NewReader(nil))
	require.ErrorIs(t, err, bloom.ErrBadRegionSize)

	_, err = Read(bytes.NewReader([]byte{9, 1, 0, 0, 0, 0, 0, 1}))
	require.ErrorIs(t, err, bloom.ErrBadVersion)

	// A frame header with no valid frame behind it.
	_, err = Read(bytes.NewReader(append(append([]byte(nil), lz4FrameMagic...), 0xff, 0xff)))
	require.Error(t, err)
}

func TestWriteRejectsUnencodable(t *testing.T) {
	seeds := make([]uint32, bloom.MaxSeedsV1+1)
	for i := range seeds {
		seeds[i] = uint32(i)
	}
	f, err := bloom.New(bloom.Config{Bits: 64, Seeds: seeds})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.ErrorIs(t, Write(&buf, f, false), bloom.ErrTooManySeeds)
	require.Zero(t, buf.Len())
}

func TestStoreSaveLoad(t *testing.T) {
	for _, compress := range []bool{false, true} {
		s := newTestStore(t, WithCompression(compress))
		path := filepath.Join(t.TempDir(), "animals.bloom")

		ok, err := s.Exists(path)
		require.NoError(t, err)
		require.False(t, ok)

		f := testFilter(t)
		require.NoError(t, s.Save(path, f))

		ok, err = s.Exists(path)
		require.NoError(t, err)
		require.True(t, ok)

		got, err := s.Load(path)
		require.NoError(t, err)
		require.True(t, got.Equal(f), "compress=%v", compress)
	}
}

func TestStoreSaveReplacesAndCleansUp(t *testing.T) {
	s := newTestStore(t, WithPerm(0o600))
	dir := t.TempDir()
	path := filepath.Join(dir, "f.bloom")

	first := testFilter(t)
	require.NoError(t, s.Save(path, first))

	second := testFilter(t)
	second.AddString("quokka")
	require.NoError(t, s.Save(path, second))

	got, err := s.Load(path)
	require.NoError(t, err)
	require.True(t, got.Equal(second))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStoreErrors(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load(filepath.Join(t.TempDir(), "missing.bloom"))
	require.ErrorIs(t, err, os.ErrNotExist)

	err = s.Save(filepath.Join(t.TempDir(), "nope", "f.bloom"), testFilter(t))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "garbage.bloom")
	require.NoError(t, os.WriteFile(path, []byte{2, 0, 0}, 0o644))
	_, err = s.Load(path)
	require.ErrorIs(t, err, bloom.ErrBadRegionSize)
}
