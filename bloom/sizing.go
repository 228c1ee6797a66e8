package bloom

import "math"

const ln2Squared = math.Ln2 * math.Ln2

// CheckOptimize validates the preconditions of Optimize.
func CheckOptimize(itemCount uint64, errorRate float64) error {
	if itemCount == 0 {
		return ErrBadItemCount
	}
	// Zero selects DefaultErrorRate.
	if errorRate == 0 {
		return nil
	}
	if !(errorRate > 0 && errorRate < 1) {
		return ErrBadErrorRate
	}
	return nil
}

// Optimize returns the bit count and hash count for itemCount expected items
// at a false-positive rate of errorRate:
//
//	bits   = round(-n * ln(p) / ln(2)^2)
//	hashes = round(bits / n * ln(2))
//
// A zero errorRate selects DefaultErrorRate.
//
// The caller is responsible for ensuring:
//   - itemCount > 0
//   - 0 < errorRate < 1 (or errorRate == 0)
//
// CheckOptimize can be used to check these conditions. The result is
// unspecified when they do not hold.
func Optimize(itemCount uint64, errorRate float64) Params {
	if errorRate == 0 {
		errorRate = DefaultErrorRate
	}
	n := float64(itemCount)
	bits := math.Round(-n * math.Log(errorRate) / ln2Squared)
	hashes := math.Round((bits / n) * math.Ln2)
	return Params{Bits: uint64(bits), Hashes: int(hashes)}
}

// CreateOptimal sizes a filter with Optimize and constructs it with freshly
// generated seeds.
func CreateOptimal(itemCount uint64, errorRate float64, opts ...Option) (*Filter, error) {
	if err := CheckOptimize(itemCount, errorRate); err != nil {
		return nil, err
	}
	p := Optimize(itemCount, errorRate)

	cfg := Config{Bits: p.Bits, Hashes: p.Hashes}
	for _, o := range opts {
		o(&cfg)
	}
	return New(cfg)
}

// BitsetBytesV1 returns ceil(mBits/8).
func BitsetBytesV1(mBits uint64) uint64 {
	return (mBits + 7) / 8
}

// EncodedBytesV1 returns the encoded size of a filter with mBits bits and k
// seeds:
//
//	HeaderBytesV1 + 4*k + ceil(mBits/8)
func EncodedBytesV1(mBits uint64, k int) uint64 {
	return uint64(HeaderBytesV1) + uint64(SeedBytes)*uint64(k) + BitsetBytesV1(mBits)
}
