package bloom

import "slices"

// MarshalBinary encodes f in wire format v1:
//
//	[0]        version
//	[1:7]      mBits, 48 bit little-endian
//	[7]        k, the seed count
//	[8:8+4k]   seeds, uint32 little-endian each
//	[8+4k:]    bitset, ceil(mBits/8) bytes
//
// It fails with ErrTooManySeeds when k > 255 rather than truncating the count.
func (f *Filter) MarshalBinary() ([]byte, error) {
	return f.AppendBinary(make([]byte, 0, EncodedBytesV1(f.mBits, len(f.seeds))))
}

// AppendBinary appends the v1 encoding of f to dst.
func (f *Filter) AppendBinary(dst []byte) ([]byte, error) {
	if len(f.seeds) > MaxSeedsV1 {
		return dst, ErrTooManySeeds
	}

	start := len(dst)
	dst = slices.Grow(dst, int(EncodedBytesV1(f.mBits, len(f.seeds))))
	dst = dst[:start+HeaderBytesV1]
	err := EncodeHeaderV1(dst[start:], HeaderV1{MBits: f.mBits, K: uint8(len(f.seeds))})
	if err != nil {
		return dst[:start], err
	}

	var b [SeedBytes]byte
	for _, s := range f.seeds {
		writeU32LE(b[:], s)
		dst = append(dst, b[:]...)
	}
	return append(dst, f.bitset...), nil
}

// Decode reconstructs a filter from its v1 encoding. The bitset is copied, so
// data may be reused by the caller.
//
// Unknown versions are rejected with ErrBadVersion; no other version is
// decoded. The hash function is not part of the encoding: pass WithHash when
// the writer did not use DefaultHash.
func Decode(data []byte, opts ...Option) (*Filter, error) {
	var cfg Config
	for _, o := range opts {
		o(&cfg)
	}
	hash := cfg.Hash
	if hash == nil {
		hash = DefaultHash
	}

	h, err := DecodeHeaderV1(data)
	if err != nil {
		return nil, err
	}

	k := int(h.K)
	seedsEnd := HeaderBytesV1 + SeedBytes*k
	if len(data) < seedsEnd {
		return nil, ErrBadRegionSize
	}
	if uint64(len(data)-seedsEnd) != BitsetBytesV1(h.MBits) {
		return nil, ErrBadBitsetSize
	}

	seeds := make([]uint32, k)
	for i := range seeds {
		off := HeaderBytesV1 + SeedBytes*i
		seeds[i] = readU32LE(data[off : off+SeedBytes])
	}

	return &Filter{
		mBits:  h.MBits,
		seeds:  seeds,
		bitset: slices.Clone(data[seedsEnd:]),
		hash:   hash,
	}, nil
}

// UnmarshalBinary replaces f with the filter encoded in data. The hash already
// configured on f is kept; a zero Filter gets DefaultHash. f is unchanged on
// error.
func (f *Filter) UnmarshalBinary(data []byte) error {
	decoded, err := Decode(data, WithHash(f.hash))
	if err != nil {
		return err
	}
	*f = *decoded
	return nil
}
