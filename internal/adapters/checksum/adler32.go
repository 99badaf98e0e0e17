package checksum

import "github.com/ir193/lzoblock/internal/core/domain"

// Adler-32 parameters: largest prime below 2^16 and the longest run of
// byte additions that fits in 32 bits before a modulo is required.
const (
	adlerModulo = 65521
	adlerNMax   = 5552
)

type adler32 struct {
	kind domain.ChecksumKind
}

// NewAdler32 returns the seeded Adler-32 accumulator. The standard library
// accumulator cannot be resumed from an arbitrary prior value, so the
// update loop lives here; it produces values identical to hash/adler32 when
// seeded with domain.Adler32Init.
func NewAdler32() *adler32 {
	return &adler32{kind: Adler32}
}

func (a *adler32) Kind() domain.ChecksumKind {
	return a.kind
}

func (a *adler32) Init() uint32 {
	return domain.Adler32Init
}

// Update folds p into sum and returns the new checksum.
func (a *adler32) Update(sum uint32, p []byte) uint32 {
	s1, s2 := sum&0xffff, sum>>16

	for len(p) > 0 {
		run := p
		if len(run) > adlerNMax {
			run = run[:adlerNMax]
		}
		p = p[len(run):]

		for _, b := range run {
			s1 += uint32(b)
			s2 += s1
		}

		s1 %= adlerModulo
		s2 %= adlerModulo
	}

	return s2<<16 | s1
}
