package bloom

import "errors"

const (
	// VersionV1 is the wire format version written by MarshalBinary.
	VersionV1 uint8 = 1

	// HeaderBytesV1 is the fixed prefix: version, 48-bit mBits, seed count.
	HeaderBytesV1 = 8

	// SeedBytes is the encoded width of a single seed.
	SeedBytes = 4

	// MaxSeedsV1 is the largest seed count the 8-bit count field can carry.
	MaxSeedsV1 = 255

	// MaxMBitsV1 is the largest bit count the 48-bit field can carry.
	MaxMBitsV1 uint64 = 1<<48 - 1

	// DefaultBits is used when Config.Bits is zero.
	DefaultBits uint64 = 1024

	// DefaultHashes is used when neither Config.Hashes nor Config.Seeds is set.
	DefaultHashes = 8

	// DefaultErrorRate is used when Optimize is given a zero error rate.
	DefaultErrorRate = 0.005
)

var (
	ErrBitIndexRange = errors.New("bloom: bit index out of range")

	ErrBadVersion    = errors.New("bloom: unsupported format version")
	ErrBadRegionSize = errors.New("bloom: buffer too small")
	ErrBadBitsetSize = errors.New("bloom: bitset length does not match mBits")
	ErrBadK          = errors.New("bloom: seed count invalid")
	ErrBadMBits      = errors.New("bloom: mBits invalid")

	ErrTooManySeeds  = errors.New("bloom: seed count exceeds 255")
	ErrMBitsOverflow = errors.New("bloom: mBits overflows 48 bits")

	ErrBadItemCount = errors.New("bloom: item count must be positive")
	ErrBadErrorRate = errors.New("bloom: error rate must be in the open interval (0, 1)")

	ErrUnknownHash = errors.New("bloom: unknown hash function")
)

// HeaderV1 is the decoded fixed prefix of an encoded filter.
type HeaderV1 struct {
	MBits uint64
	K     uint8
}

// Params is the result of Optimize.
type Params struct {
	Bits   uint64
	Hashes int
}

// Config describes a filter to construct with New.
//
// Zero values select the permissive defaults: Bits 0 means DefaultBits,
// Hashes 0 means DefaultHashes, a nil Hash means DefaultHash. When Seeds is
// non-empty it is used as given and Hashes is ignored.
type Config struct {
	Bits   uint64
	Hashes int
	Seeds  []uint32
	Hash   HashFunc
}
