package lzo1x

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/woozymasta/lzo"

	"github.com/ir193/lzoblock/internal/core/domain"
)

func TestFast_RoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte("fast variant payload "), 500)

	compressed, err := NewFast().CompressBlock(src, 0)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)
	require.Less(t, len(compressed), len(src))

	out, err := NewSafeDecompressor().DecompressBlock(compressed, len(src))
	require.NoError(t, err)
	require.True(t, bytes.Equal(out, src))
}

func TestMaxEffort_AllLevelsDecodable(t *testing.T) {
	src := bytes.Repeat([]byte("max effort variant payload "), 500)
	decompressor := NewSafeDecompressor()

	// Level 1 maps onto the primitive's lowest max-effort tier; it must not
	// silently fall back to the fast path's error behavior.
	for level := domain.MinLevel; level <= domain.MaxLevel; level++ {
		compressed, err := NewMaxEffort().CompressBlock(src, level)
		require.NoError(t, err, "level %d", level)

		out, err := decompressor.DecompressBlock(compressed, len(src))
		require.NoError(t, err, "level %d", level)
		require.True(t, bytes.Equal(out, src), "level %d", level)
	}
}

func TestMaxEffort_HigherLevelNotWorse(t *testing.T) {
	src := bytes.Repeat([]byte("compressible compressible compressible text block "), 2000)

	low, err := NewMaxEffort().CompressBlock(src, domain.MinLevel)
	require.NoError(t, err)
	high, err := NewMaxEffort().CompressBlock(src, domain.MaxLevel)
	require.NoError(t, err)

	require.LessOrEqual(t, len(high), len(low))
}

func TestAdapters_ReportVariantMetadata(t *testing.T) {
	require.Equal(t, domain.MethodLZO1X1, NewFast().Method())
	require.Equal(t, domain.WorkspaceLZO1X1, NewFast().WorkspaceSize())
	require.Equal(t, domain.MethodLZO1X999, NewMaxEffort().Method())
	require.Equal(t, domain.WorkspaceLZO1X999, NewMaxEffort().WorkspaceSize())
}

func TestSafeDecompressor_TruncatedInput(t *testing.T) {
	src := bytes.Repeat([]byte("0123456789abcdef"), 256)
	compressed, err := NewFast().CompressBlock(src, 0)
	require.NoError(t, err)

	_, err = NewSafeDecompressor().DecompressBlock(compressed[:len(compressed)/2], len(src))
	require.Error(t, err)
	require.NotZero(t, Errno(err))
}

func TestErrno_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{lzo.ErrInputOverrun, ErrnoInputOverrun},
		{lzo.ErrEmptyInput, ErrnoInputOverrun},
		{lzo.ErrOutputOverrun, ErrnoOutputOverrun},
		{lzo.ErrLookBehindUnderrun, ErrnoLookbehindOverrun},
		{lzo.ErrUnexpectedEOF, ErrnoEOFNotFound},
		{lzo.ErrCompressInternal, ErrnoError},
		{fmt.Errorf("wrapped: %w", lzo.ErrOutputOverrun), ErrnoOutputOverrun},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Errno(tc.err), "%v", tc.err)
	}
}
