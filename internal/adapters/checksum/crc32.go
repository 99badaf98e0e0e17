package checksum

import (
	"hash/crc32"

	"github.com/ir193/lzoblock/internal/core/domain"
)

type crc32IEEE struct {
	kind  domain.ChecksumKind
	table *crc32.Table
}

// NewCRC32 returns the CRC-32 accumulator over the IEEE polynomial, the
// same polynomial lzo_crc32 uses. crc32.Update is already a seeded
// accumulator, so chaining comes for free.
func NewCRC32() *crc32IEEE {
	return &crc32IEEE{
		kind:  CRC32,
		table: crc32.MakeTable(crc32.IEEE),
	}
}

func (c *crc32IEEE) Kind() domain.ChecksumKind {
	return c.kind
}

func (c *crc32IEEE) Init() uint32 {
	return domain.CRC32Init
}

// Update folds p into sum and returns the new checksum.
func (c *crc32IEEE) Update(sum uint32, p []byte) uint32 {
	if len(p) == 0 {
		return sum
	}
	return crc32.Update(sum, c.table, p)
}
