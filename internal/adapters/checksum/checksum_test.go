package checksum

import (
	stdadler32 "hash/adler32"
	"hash/crc32"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ir193/lzoblock/internal/core/domain"
)

func TestAdler32_KnownValue(t *testing.T) {
	// Classic reference vector.
	require.Equal(t, uint32(0x11E60398), NewAdler32().Update(domain.Adler32Init, []byte("Wikipedia")))
}

func TestAdler32_MatchesStdlib(t *testing.T) {
	adler := NewAdler32()

	for _, size := range []int{0, 1, 17, 5551, 5552, 5553, 100_000} {
		data := make([]byte, size)
		rand.New(rand.NewSource(int64(size))).Read(data)
		require.Equal(t, stdadler32.Checksum(data), adler.Update(domain.Adler32Init, data), "size %d", size)
	}
}

func TestAdler32_SeededChaining(t *testing.T) {
	adler := NewAdler32()
	data := make([]byte, 20000)
	rand.New(rand.NewSource(3)).Read(data)

	whole := adler.Update(0x55AA1234, data)
	for _, split := range []int{0, 1, 9999, 19999, 20000} {
		chained := adler.Update(adler.Update(0x55AA1234, data[:split]), data[split:])
		require.Equal(t, whole, chained, "split %d", split)
	}
}

func TestCRC32_KnownValue(t *testing.T) {
	// CRC-32/IEEE check value.
	require.Equal(t, uint32(0xCBF43926), NewCRC32().Update(domain.CRC32Init, []byte("123456789")))
}

func TestCRC32_MatchesStdlib(t *testing.T) {
	crc := NewCRC32()
	data := make([]byte, 4096)
	rand.New(rand.NewSource(9)).Read(data)

	require.Equal(t, crc32.ChecksumIEEE(data), crc.Update(domain.CRC32Init, data))

	chained := crc.Update(crc.Update(domain.CRC32Init, data[:1000]), data[1000:])
	require.Equal(t, crc32.ChecksumIEEE(data), chained)
}

func TestAccumulators_EmptyIdentityAndMetadata(t *testing.T) {
	adler, crc := NewAdler32(), NewCRC32()

	for _, seed := range []uint32{0, 1, 0xFFFFFFFF} {
		require.Equal(t, seed, adler.Update(seed, nil))
		require.Equal(t, seed, crc.Update(seed, nil))
	}

	require.Equal(t, Adler32, adler.Kind())
	require.Equal(t, domain.Adler32Init, adler.Init())
	require.Equal(t, CRC32, crc.Kind())
	require.Equal(t, domain.CRC32Init, crc.Init())
}
