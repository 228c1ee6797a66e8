// Package filterfile persists encoded bloom filters to streams and files.
//
// A file holds either the raw v1 wire encoding or that encoding inside a
// single LZ4 frame. Readers detect the LZ4 frame magic, so both forms load
// through the same call.
package filterfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/forestrie/go-farmfilter/bloom"
)

// lz4FrameMagic is the LZ4 frame magic number 0x184D2204, little-endian. No
// v1 encoding starts with it since byte 0 is always the format version.
var lz4FrameMagic = []byte{0x04, 0x22, 0x4d, 0x18}

// Write encodes f to w, LZ4-framed when compress is set.
func Write(w io.Writer, f *bloom.Filter, compress bool) error {
	data, err := f.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode filter: %w", err)
	}

	if !compress {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write filter: %w", err)
		}
		return nil
	}

	zw := lz4.NewWriter(w)
	if _, err := zw.Write(data); err != nil {
		return fmt.Errorf("compress filter: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compress filter: %w", err)
	}
	return nil
}

// Read decodes a filter written by Write. opts are passed to bloom.Decode.
func Read(r io.Reader, opts ...bloom.Option) (*bloom.Filter, error) {
	data, _, err := readAll(r)
	if err != nil {
		return nil, err
	}

	f, err := bloom.Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("decode filter: %w", err)
	}
	return f, nil
}

// IsCompressed reports whether data starts with an LZ4 frame.
func IsCompressed(data []byte) bool {
	return bytes.HasPrefix(data, lz4FrameMagic)
}

// readAll returns the decompressed contents of r and whether it was framed.
func readAll(r io.Reader) ([]byte, bool, error) {
	br := bufio.NewReader(r)

	// Short inputs are passed on as raw; Decode reports them.
	head, _ := br.Peek(len(lz4FrameMagic))
	compressed := IsCompressed(head)

	var src io.Reader = br
	if compressed {
		src = lz4.NewReader(br)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		if compressed {
			return nil, true, fmt.Errorf("decompress filter: %w", err)
		}
		return nil, false, fmt.Errorf("read filter: %w", err)
	}
	return data, compressed, nil
}
