package domain

import "fmt"

// Method identifies one LZO1X compression variant. The numeric codes match
// the method bytes lzop writes into its block headers, so values stored by
// existing tooling map directly onto this type.
type Method uint8

const (
	// MethodLZO1X1 is the fast variant: a single fixed-effort pass with a
	// fixed auxiliary memory requirement.
	MethodLZO1X1 Method = 1

	// MethodLZO1X115 is an alternate tuning of the fast variant. The pure-Go
	// primitive used by this build does not implement it; requesting it
	// fails with an unsupported-method error before any primitive call.
	MethodLZO1X115 Method = 2

	// MethodLZO1X999 is the exhaustive-search variant, parameterized by a
	// compression level between MinLevel and MaxLevel.
	MethodLZO1X999 Method = 3
)

// String returns the conventional lzop spelling of the method.
func (m Method) String() string {
	switch m {
	case MethodLZO1X1:
		return "lzo1x_1"
	case MethodLZO1X115:
		return "lzo1x_1_15"
	case MethodLZO1X999:
		return "lzo1x_999"
	default:
		return fmt.Sprintf("method(%d)", uint8(m))
	}
}

// Auxiliary workspace requirements of the classic C primitives, in bytes
// (LZO1X_*_MEM_COMPRESS on a 64-bit build). Scratch demand depends only on
// the method, never on the input size.
const (
	WorkspaceLZO1X1   = 16384 * 8
	WorkspaceLZO1X115 = 32768 * 8
	WorkspaceLZO1X999 = 14 * 16384 * 2
)

// WorkspaceSize reports the auxiliary scratch requirement of the method,
// or 0 for an unknown method. Exposed for diagnostics and capacity planning.
func (m Method) WorkspaceSize() int {
	switch m {
	case MethodLZO1X1:
		return WorkspaceLZO1X1
	case MethodLZO1X115:
		return WorkspaceLZO1X115
	case MethodLZO1X999:
		return WorkspaceLZO1X999
	default:
		return 0
	}
}

// Compression levels accepted by the level-parameterized variant.
const (
	MinLevel = 1
	MaxLevel = 9
)

const (
	// DefaultBlockSize is the recommended size for callers splitting input
	// into blocks. It keeps worst-case per-block latency small while leaving
	// the match window enough room to work with.
	DefaultBlockSize = 128 * 1024

	// MaxBlockSize caps the original length the decompressor will allocate
	// for. A declared size above this is refused before any allocation, so a
	// corrupted or hostile size field cannot trigger an unbounded make.
	MaxBlockSize = 64 * 1024 * 1024
)

// CompressBound returns the worst-case compressed size for n input bytes.
// The compressor never produces more than this; a primitive reporting a
// larger result violates an internal invariant.
func CompressBound(n int) int {
	return n + n/64 + 16 + 3
}

// CodecOptions configures a codec bridge instance.
type CodecOptions struct {
	// MaxBlockSize bounds the original length Decompress will allocate for.
	// Zero selects MaxBlockSize (64 MiB); the value may not exceed it.
	MaxBlockSize int
}

// LibraryInfo identifies the primitive library build backing the bridge.
// Read-only metadata for diagnostics; nothing in the codec depends on it.
type LibraryInfo struct {
	Version       uint16 // lzop-style BCD version number
	VersionString string
	BuildDate     string
}

// Library reports the primitive library identification.
func Library() LibraryInfo {
	return LibraryInfo{
		Version:       0x0940,
		VersionString: "0.940",
		BuildDate:     "2026-01-15",
	}
}
