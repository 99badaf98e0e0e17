package codec

import (
	"bytes"
	"fmt"
	stdadler32 "hash/adler32"
	"sync"

	"github.com/ir193/lzoblock/internal/adapters/checksum"
	"github.com/ir193/lzoblock/internal/adapters/lzo1x"
	"github.com/ir193/lzoblock/internal/core/domain"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init runs the process-wide one-time library self-check, mirroring the
// classic lzo_init requirement. It is idempotent and safe for concurrent
// use; New calls it implicitly, so explicit calls are only needed to front
// load the check.
func Init() error {
	initOnce.Do(func() {
		initErr = selfCheck()
	})
	return initErr
}

// selfCheck round-trips a small block through the fast variant and
// cross-checks the Adler-32 accumulator against the standard library.
func selfCheck() error {
	sample := []byte("the quick brown fox jumps over the lazy dog, twice over")

	compressed, err := lzo1x.NewFast().CompressBlock(sample, 0)
	if err != nil {
		return fmt.Errorf("codec init: compress self-check: %w", err)
	}

	out, err := lzo1x.NewSafeDecompressor().DecompressBlock(compressed, len(sample))
	if err != nil {
		return fmt.Errorf("codec init: decompress self-check: %w", err)
	}
	if !bytes.Equal(out, sample) {
		return fmt.Errorf("codec init: round-trip mismatch (%d bytes out of %d)", len(out), len(sample))
	}

	if got := checksum.NewAdler32().Update(domain.Adler32Init, sample); got != stdadler32.Checksum(sample) {
		return fmt.Errorf("codec init: adler32 self-check mismatch: %#x", got)
	}

	return nil
}
