// Package codec implements the block codec bridge: method dispatch across
// the LZO1X variants available in this build, worst-case bound enforcement,
// the exact-length decompression contract, and the two rolling checksum
// accumulators.
package codec

import (
	"fmt"

	"github.com/ir193/lzoblock/internal/adapters/checksum"
	"github.com/ir193/lzoblock/internal/adapters/lzo1x"
	"github.com/ir193/lzoblock/internal/core/domain"
	"github.com/ir193/lzoblock/internal/core/ports"
	"github.com/ir193/lzoblock/pkg/errors"
)

const (
	opCompress   = "compress"
	opDecompress = "decompress"
)

// Codec is the block codec bridge. Every operation is synchronous and
// stateless across calls: each call owns its input (read-only) and its own
// output buffer, so concurrent use from multiple goroutines needs no
// locking.
type Codec struct {
	options *domain.CodecOptions

	// compressors is the closed set of variants available in this build;
	// a method absent from the map is unsupported and fails before any
	// primitive call. LZO1X-1-15 is not implemented by the pure-Go
	// primitive and is deliberately absent.
	compressors  map[domain.Method]ports.BlockCompressor
	decompressor ports.BlockDecompressor

	adler ports.ChecksumPort
	crc   ports.ChecksumPort
}

// New creates a codec bridge. opts may be nil, selecting defaults. The
// one-time library self-check runs on first construction and its result is
// returned by every subsequent call.
func New(opts *domain.CodecOptions) (*Codec, error) {
	if err := Init(); err != nil {
		return nil, err
	}

	if opts != nil {
		if err := Validate(opts); err != nil {
			return nil, err
		}
		opts = prepareDefaults(opts)
	} else {
		opts = prepareDefaults(&domain.CodecOptions{})
	}

	codec := Codec{
		options: opts,
		compressors: map[domain.Method]ports.BlockCompressor{
			domain.MethodLZO1X1:   lzo1x.NewFast(),
			domain.MethodLZO1X999: lzo1x.NewMaxEffort(),
		},
		decompressor: lzo1x.NewSafeDecompressor(),
		adler:        checksum.NewAdler32(),
		crc:          checksum.NewCRC32(),
	}

	return &codec, nil
}

// Compress compresses one complete block with the selected method and
// returns a block sized exactly to the compressed data, never larger than
// domain.CompressBound(len(block)). level is required for
// domain.MethodLZO1X999 (1-9) and ignored for every other method.
func (c *Codec) Compress(block []byte, method domain.Method, level int) ([]byte, error) {
	compressor, ok := c.compressors[method]
	if !ok {
		return nil, errors.NewCodecError(
			errors.CodeUnsupportedMethod, opCompress, 0,
			fmt.Errorf("method %s is not supported in this build", method),
		)
	}

	if method == domain.MethodLZO1X999 {
		if level < domain.MinLevel || level > domain.MaxLevel {
			return nil, errors.NewValidationError(
				"level", level,
				fmt.Errorf("level must be between %d and %d, got %d", domain.MinLevel, domain.MaxLevel, level),
			)
		}
	}

	bound := domain.CompressBound(len(block))

	out, err := compressor.CompressBlock(block, level)
	if err != nil {
		return nil, errors.NewCodecError(errors.CodeCompressFailed, opCompress, lzo1x.Errno(err), err)
	}

	// Must never happen with a correct primitive; surfaced rather than
	// handing the caller a block that violates the sizing contract.
	if len(out) > bound {
		return nil, errors.NewCodecError(
			errors.CodeCompressFailed, opCompress, lzo1x.ErrnoError,
			fmt.Errorf("compressed length %d exceeds bound %d", len(out), bound),
		)
	}

	return out, nil
}

// Decompress reconstructs the plaintext of block given the exact original
// length the caller remembered from compression time. It either returns a
// block of exactly originalLen bytes or fails; a truncated or wrong-length
// result is never returned.
func (c *Codec) Decompress(block []byte, originalLen int) ([]byte, error) {
	if originalLen < 0 || originalLen > c.options.MaxBlockSize {
		return nil, errors.NewCodecError(
			errors.CodeAllocationFailed, opDecompress, 0,
			fmt.Errorf("refusing to reserve %d bytes (limit %d)", originalLen, c.options.MaxBlockSize),
		)
	}

	out, err := c.decompressor.DecompressBlock(block, originalLen)
	if err != nil {
		return nil, errors.NewCodecError(errors.CodeDecompressFailed, opDecompress, lzo1x.Errno(err), err)
	}

	// The primitive wrote successfully but the reconstruction disagrees
	// with the remembered size: caller error or corruption the safe
	// decoder could not detect.
	if len(out) != originalLen {
		return nil, errors.NewCodecError(
			errors.CodeSizeMismatch, opDecompress, 0,
			fmt.Errorf("decompressed %d bytes, expected %d", len(out), originalLen),
		)
	}

	return out, nil
}

// Adler32 folds block into a running Adler-32 checksum. Pass
// domain.Adler32Init (1) to start a fresh checksum; an empty block returns
// seed unchanged.
func (c *Codec) Adler32(seed uint32, block []byte) uint32 {
	if len(block) == 0 {
		return seed
	}
	return c.adler.Update(seed, block)
}

// CRC32 folds block into a running CRC-32 checksum. The seed is always
// explicit, mirroring the primitive's convention; domain.CRC32Init (0)
// starts a fresh checksum. An empty block returns seed unchanged.
func (c *Codec) CRC32(seed uint32, block []byte) uint32 {
	if len(block) == 0 {
		return seed
	}
	return c.crc.Update(seed, block)
}

// Methods lists the compression variants available in this build.
func (c *Codec) Methods() []domain.Method {
	methods := make([]domain.Method, 0, len(c.compressors))
	for m := range c.compressors {
		methods = append(methods, m)
	}
	return methods
}

// Library reports the primitive library identification for diagnostics.
func (c *Codec) Library() domain.LibraryInfo {
	return domain.Library()
}
