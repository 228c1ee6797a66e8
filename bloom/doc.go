/*
Package bloom provides a classic Bloom filter: k independently seeded rounds of
one 64-bit hash function over a packed bitset, plus a compact, versioned
binary encoding for exchanging filter state between processes.

## What Bloom filters are (and are not)

- If the filter says "definitely not present", then the element is not present.
- If the filter says "maybe present", then the element may or may not be present
  (false positives are possible).

There is no deletion: bits are only ever set, so removing one element could
clear bits shared with another. Clear resets the whole filter.

The hash and the seeds have no cryptographic properties. Seeds need only be
distinct, not secret.

## Sizing

Optimize derives the bit count m and round count k for n expected items at a
false-positive rate p:

	m = round(-n * ln(p) / ln(2)^2)
	k = round(m / n * ln(2))

CreateOptimal feeds the result to New with freshly generated seeds.

## Rounds and seeds

Each round i hashes the element with seed i and sets bit hash % m. Generated
seeds are pairwise distinct (a repeated draw is redrawn). Supplied seeds are
used as given.

Text is hashed as its UTF-8 bytes. AddString("x") and Add([]byte("x")) are the
same operation, and both sides of a shared filter must agree on the encoding.

## Bit numbering

Bit i lives at bit (i & 7) of byte (i >> 3), least significant bit first
(LSB0).

## Wire format, version 1

	+---------+----------------+-----+------------------+-------------------+
	| version | mBits          | k   | seeds            | bitset            |
	| 1 byte  | 6 bytes LE     | 1 B | k x uint32 LE    | ceil(mBits/8) B   |
	+---------+----------------+-----+------------------+-------------------+

The hash function is not recorded. Readers must use the writer's hash,
DefaultHash unless agreed otherwise.

Because k is a single byte, filters with more than 255 seeds cannot be
encoded (ErrTooManySeeds). Decode rejects any version other than 1
(ErrBadVersion) and any buffer whose bitset length disagrees with mBits.

## Concurrency

A Filter does no locking. Embedders that share one across goroutines provide
their own exclusion, for example a sync.RWMutex held for reading around Has
and for writing around Add and Clear.

*/
package bloom
