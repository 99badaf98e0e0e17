package ports

import "github.com/ir193/lzoblock/internal/core/domain"

// ChecksumPort folds a byte range into a running 32-bit checksum. Pure:
// no allocation, no failure path, deterministic for well-formed inputs.
type ChecksumPort interface {
	// Kind reports which checksum algorithm this accumulator implements.
	Kind() domain.ChecksumKind

	// Init returns the identity seed of the algorithm.
	Init() uint32

	// Update folds p into sum and returns the new checksum. An empty p
	// returns sum unchanged.
	Update(sum uint32, p []byte) uint32
}
