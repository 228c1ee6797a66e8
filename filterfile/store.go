package filterfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/go-farmfilter/bloom"
)

const defaultPerm os.FileMode = 0o644

// Store saves and loads filters as files.
type Store struct {
	log      logger.Logger
	compress bool
	perm     os.FileMode
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCompression selects LZ4 framing for saved files. Loading detects the
// framing regardless of this setting.
func WithCompression(compress bool) StoreOption {
	return func(s *Store) {
		s.compress = compress
	}
}

// WithPerm sets the permission bits of saved files.
func WithPerm(perm os.FileMode) StoreOption {
	return func(s *Store) {
		s.perm = perm
	}
}

func NewStore(log logger.Logger, opts ...StoreOption) *Store {
	s := &Store{
		log:  log,
		perm: defaultPerm,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Save writes f to path. The file is written to a temporary sibling and
// renamed into place, so readers never observe a partial filter.
func (s *Store) Save(path string, f *bloom.Filter) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, f, s.compress); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = tmp.Chmod(s.perm); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	s.log.Debugf("saved %s: bits=%d k=%d compressed=%v", path, f.Bits(), f.K(), s.compress)
	return nil
}

// Load reads the filter stored at path. opts are passed to bloom.Decode.
func (s *Store) Load(path string, opts ...bloom.Option) (*bloom.Filter, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	data, compressed, err := readAll(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	f, err := bloom.Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	s.log.Debugf("loaded %s: bits=%d k=%d compressed=%v", path, f.Bits(), f.K(), compressed)
	return f, nil
}

// Exists reports whether a file is present at path.
func (s *Store) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}
