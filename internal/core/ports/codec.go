package ports

import "github.com/ir193/lzoblock/internal/core/domain"

// BlockCompressor compresses one complete, independent block with a fixed
// variant. Implementations must be safe for concurrent use: every call owns
// its input (read-only) and its own scratch.
type BlockCompressor interface {
	// Method reports which variant this compressor implements.
	Method() domain.Method

	// WorkspaceSize reports the auxiliary scratch requirement of the
	// variant. The size depends only on the variant, never on the input.
	WorkspaceSize() int

	// CompressBlock compresses src as one block and returns the compressed
	// bytes, sized exactly to the data written. level is meaningful only
	// for level-parameterized variants and is ignored otherwise.
	CompressBlock(src []byte, level int) ([]byte, error)
}

// BlockDecompressor reconstructs a block whose original size the caller
// remembered from compression time. Implementations must bounds-check
// against that size (safe mode) rather than trust the compressed stream.
type BlockDecompressor interface {
	// DecompressBlock decodes src into at most originalLen bytes and
	// returns exactly the bytes written. A truncated, corrupt, or
	// oversized stream returns an error and no output.
	DecompressBlock(src []byte, originalLen int) ([]byte, error)
}
