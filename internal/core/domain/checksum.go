package domain

// ChecksumKind names a rolling 32-bit checksum algorithm.
type ChecksumKind string

// Identity seeds for the two checksum accumulators. Feeding the result of
// one call as the seed of the next over the following byte range yields the
// same value as a single call over the concatenation.
const (
	// Adler32Init is the Adler-32 identity seed; callers omitting a seed
	// should start here.
	Adler32Init uint32 = 1

	// CRC32Init is the conventional CRC-32 starting value. Unlike Adler-32
	// the primitive defines no implicit default, so callers always pass the
	// seed explicitly.
	CRC32Init uint32 = 0
)
