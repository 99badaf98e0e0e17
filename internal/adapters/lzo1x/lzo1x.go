// Package lzo1x adapts the pure-Go LZO1X primitives to the codec ports.
// Each adapter wraps one variant of github.com/woozymasta/lzo; the bridge
// service decides which variants a build exposes.
package lzo1x

import (
	"github.com/woozymasta/lzo"

	"github.com/ir193/lzoblock/internal/core/domain"
)

// Fast implements the LZO1X-1 variant: one fixed-effort pass.
type Fast struct{}

// NewFast returns the LZO1X-1 compressor adapter.
func NewFast() *Fast {
	return &Fast{}
}

func (f *Fast) Method() domain.Method {
	return domain.MethodLZO1X1
}

func (f *Fast) WorkspaceSize() int {
	return domain.WorkspaceLZO1X1
}

// CompressBlock compresses src with the fast pass. The level argument is
// ignored; LZO1X-1 has no tuning knob.
func (f *Fast) CompressBlock(src []byte, _ int) ([]byte, error) {
	return lzo.Compress(src, &lzo.CompressOptions{Level: 1})
}

// MaxEffort implements the LZO1X-999 variant, parameterized by a
// compression level between domain.MinLevel and domain.MaxLevel.
type MaxEffort struct{}

// NewMaxEffort returns the LZO1X-999 compressor adapter.
func NewMaxEffort() *MaxEffort {
	return &MaxEffort{}
}

func (m *MaxEffort) Method() domain.Method {
	return domain.MethodLZO1X999
}

func (m *MaxEffort) WorkspaceSize() int {
	return domain.WorkspaceLZO1X999
}

// CompressBlock compresses src with the exhaustive-search pass at the given
// level. The primitive reserves levels 0 and 1 for its fast path, so the
// lowest max-effort tier maps onto primitive level 2.
func (m *MaxEffort) CompressBlock(src []byte, level int) ([]byte, error) {
	if level < 2 {
		level = 2
	}
	if level > domain.MaxLevel {
		level = domain.MaxLevel
	}

	return lzo.Compress(src, &lzo.CompressOptions{Level: level})
}

// SafeDecompressor decodes LZO1X streams bounds-checked against the
// caller-supplied original length (lzo1x_decompress_safe semantics).
type SafeDecompressor struct{}

// NewSafeDecompressor returns the bounds-checked decompressor adapter.
func NewSafeDecompressor() *SafeDecompressor {
	return &SafeDecompressor{}
}

// DecompressBlock decodes src into a buffer of originalLen bytes and
// returns exactly the bytes written. The returned slice may be shorter than
// originalLen when the stream terminates early; the bridge turns that into
// a size-mismatch failure.
func (d *SafeDecompressor) DecompressBlock(src []byte, originalLen int) ([]byte, error) {
	return lzo.Decompress(src, &lzo.DecompressOptions{OutLen: originalLen})
}
