package bloom

import (
	"crypto/rand"
	"fmt"
	"io"
	"slices"
)

// GenerateSeeds returns k pairwise distinct seeds drawn from crypto/rand.
func GenerateSeeds(k int) ([]uint32, error) {
	return GenerateSeedsFrom(rand.Reader, k)
}

// GenerateSeedsFrom returns k pairwise distinct seeds read from r, 4 bytes
// little-endian per seed.
//
// A draw equal to an already accepted seed is discarded and the slot is drawn
// again. There is no retry cap: termination is probabilistic, and for any
// realistic k against the 32 bit space a slot almost never needs a second
// draw. A reader that keeps repeating itself will loop until it errors.
func GenerateSeedsFrom(r io.Reader, k int) ([]uint32, error) {
	if k < 0 {
		return nil, ErrBadK
	}

	seeds := make([]uint32, 0, k)
	var b [SeedBytes]byte
	for len(seeds) < k {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, fmt.Errorf("bloom: reading seed %d: %w", len(seeds), err)
		}
		s := readU32LE(b[:])
		if slices.Contains(seeds, s) {
			continue
		}
		seeds = append(seeds, s)
	}
	return seeds, nil
}
