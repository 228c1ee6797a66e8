package bloom

// Option adjusts the Config used by CreateOptimal and Decode.
type Option func(*Config)

// WithHash selects the hash function. The same function must be used by every
// filter that shares encoded state.
func WithHash(hash HashFunc) Option {
	return func(c *Config) {
		c.Hash = hash
	}
}

// WithSeeds supplies explicit seeds to CreateOptimal, replacing generated
// ones. The optimal hash count is then ignored.
func WithSeeds(seeds []uint32) Option {
	return func(c *Config) {
		c.Seeds = seeds
	}
}
