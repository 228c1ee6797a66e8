package bloom

import (
	"bytes"
	"math/bits"
	"slices"
)

// Filter is a Bloom filter over a packed LSB0 bitset.
//
// A Filter is not safe for concurrent use. Has may run concurrently with
// other Has calls, but Add, SetBit, Clear and UnmarshalBinary need exclusive
// access.
type Filter struct {
	mBits  uint64
	seeds  []uint32
	bitset []byte
	hash   HashFunc
}

// New constructs a zeroed filter from cfg.
//
// When cfg.Seeds is empty, cfg.Hashes seeds are generated with GenerateSeeds.
// Supplied seeds are copied and used as given; they are not checked for
// distinctness.
func New(cfg Config) (*Filter, error) {
	mBits := cfg.Bits
	if mBits == 0 {
		mBits = DefaultBits
	}
	if mBits > MaxMBitsV1 {
		return nil, ErrMBitsOverflow
	}

	var seeds []uint32
	if len(cfg.Seeds) > 0 {
		seeds = slices.Clone(cfg.Seeds)
	} else {
		k := cfg.Hashes
		if k == 0 {
			k = DefaultHashes
		}
		var err error
		if seeds, err = GenerateSeeds(k); err != nil {
			return nil, err
		}
	}

	hash := cfg.Hash
	if hash == nil {
		hash = DefaultHash
	}

	return &Filter{
		mBits:  mBits,
		seeds:  seeds,
		bitset: make([]byte, BitsetBytesV1(mBits)),
		hash:   hash,
	}, nil
}

// Bits returns the number of addressable bits.
func (f *Filter) Bits() uint64 { return f.mBits }

// K returns the number of hash rounds (the seed count).
func (f *Filter) K() int { return len(f.seeds) }

// Seeds returns a copy of the hash seeds in round order.
func (f *Filter) Seeds() []uint32 { return slices.Clone(f.seeds) }

// Bitset returns a copy of the packed bit array.
func (f *Filter) Bitset() []byte { return slices.Clone(f.bitset) }

// SetBit sets bit i. Bit i lives at bit i&7 of byte i>>3.
func (f *Filter) SetBit(i uint64) error {
	if i >= f.mBits {
		return ErrBitIndexRange
	}
	setBitLSB0(f.bitset, i)
	return nil
}

// GetBit reports whether bit i is set.
func (f *Filter) GetBit(i uint64) (bool, error) {
	if i >= f.mBits {
		return false, ErrBitIndexRange
	}
	return testBitLSB0(f.bitset, i), nil
}

// Add inserts item.
func (f *Filter) Add(item []byte) {
	for _, s := range f.seeds {
		setBitLSB0(f.bitset, f.hash(item, s)%f.mBits)
	}
}

// AddString inserts the UTF-8 bytes of item. AddString(s) and Add([]byte(s))
// set identical bits, so text and byte forms of one value are interchangeable
// as long as both sides use UTF-8.
func (f *Filter) AddString(item string) {
	f.Add([]byte(item))
}

// AddAll inserts each item in order.
func (f *Filter) AddAll(items ...[]byte) {
	for _, item := range items {
		f.Add(item)
	}
}

// AddStrings inserts each item in order, see AddString.
func (f *Filter) AddStrings(items ...string) {
	for _, item := range items {
		f.AddString(item)
	}
}

// Has reports whether item may be present.
//
// false means item was definitely never added. true means it probably was,
// subject to the false-positive rate the filter was sized for.
func (f *Filter) Has(item []byte) bool {
	for _, s := range f.seeds {
		if !testBitLSB0(f.bitset, f.hash(item, s)%f.mBits) {
			return false
		}
	}
	return true
}

// HasString tests the UTF-8 bytes of item, see AddString.
func (f *Filter) HasString(item string) bool {
	return f.Has([]byte(item))
}

// HasAll returns Has for each item, in order.
func (f *Filter) HasAll(items ...[]byte) []bool {
	if len(items) == 0 {
		return nil
	}
	results := make([]bool, len(items))
	for i, item := range items {
		results[i] = f.Has(item)
	}
	return results
}

// Clear zeroes the bitset. Bits, seeds and hash are unchanged.
func (f *Filter) Clear() {
	clear(f.bitset)
}

// PopCount returns the number of set bits.
func (f *Filter) PopCount() uint64 {
	var n uint64
	for _, b := range f.bitset {
		n += uint64(bits.OnesCount8(b))
	}
	return n
}

// FillRatio returns the fraction of set bits, in [0, 1].
func (f *Filter) FillRatio() float64 {
	return float64(f.PopCount()) / float64(f.mBits)
}

// Equal reports whether f and other have the same bit count, the same seeds
// in the same order, and identical bitsets. The hash function is not compared.
func (f *Filter) Equal(other *Filter) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.mBits == other.mBits &&
		slices.Equal(f.seeds, other.seeds) &&
		bytes.Equal(f.bitset, other.bitset)
}

func setBitLSB0(bitset []byte, j uint64) {
	bitset[j>>3] |= 1 << uint8(j&7)
}

func testBitLSB0(bitset []byte, j uint64) bool {
	return bitset[j>>3]&(1<<uint8(j&7)) != 0
}
