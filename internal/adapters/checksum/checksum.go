// Package checksum provides the rolling 32-bit checksum accumulators used
// to validate block integrity around codec calls.
package checksum

import "github.com/ir193/lzoblock/internal/core/domain"

const (
	// Adler32 is the Adler-32 rolling checksum (identity seed 1).
	Adler32 domain.ChecksumKind = "adler32"

	// CRC32 is the CRC-32 checksum over the IEEE polynomial, seeded
	// explicitly by the caller.
	CRC32 domain.ChecksumKind = "crc32"
)
