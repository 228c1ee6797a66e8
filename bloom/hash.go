package bloom

import (
	"sort"

	farm "github.com/dgryski/go-farm"
	"github.com/twmb/murmur3"
	"github.com/zeebo/xxh3"
)

// HashFunc is the seeded 64-bit hash behind every filter round. It must be
// deterministic: equal (data, seed) pairs always produce equal results.
type HashFunc func(data []byte, seed uint32) uint64

const (
	HashFarm    = "farm"
	HashXXH3    = "xxh3"
	HashMurmur3 = "murmur3"

	// DefaultHashName names DefaultHash.
	DefaultHashName = HashFarm
)

// DefaultHash is used when no hash is configured. It is the farmhash family
// that existing producers of the v1 wire format hash with.
var DefaultHash HashFunc = Farm64

// Farm64 is farmhash Hash64WithSeed.
func Farm64(data []byte, seed uint32) uint64 {
	return farm.Hash64WithSeed(data, uint64(seed))
}

// XXH3 is the 64-bit xxh3 hash with seed.
func XXH3(data []byte, seed uint32) uint64 {
	return xxh3.HashSeed(data, uint64(seed))
}

// Murmur3 is the first 64 bits of seeded murmur3 x64_128.
func Murmur3(data []byte, seed uint32) uint64 {
	return murmur3.SeedSum64(uint64(seed), data)
}

var hashes = map[string]HashFunc{
	HashFarm:    Farm64,
	HashXXH3:    XXH3,
	HashMurmur3: Murmur3,
}

// HashByName returns the built-in hash registered under name.
func HashByName(name string) (HashFunc, error) {
	h, ok := hashes[name]
	if !ok {
		return nil, ErrUnknownHash
	}
	return h, nil
}

// HashNames returns the built-in hash names in sorted order.
func HashNames() []string {
	names := make([]string, 0, len(hashes))
	for name := range hashes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
