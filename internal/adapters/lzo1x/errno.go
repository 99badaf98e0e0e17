package lzo1x

import (
	"errors"

	"github.com/woozymasta/lzo"
)

// Classic liblzo status codes. The pure-Go primitive reports sentinel
// errors instead; these values keep diagnostics compatible with logs and
// tooling that expect the numeric codes.
const (
	ErrnoError             = -1
	ErrnoInputOverrun      = -4
	ErrnoOutputOverrun     = -5
	ErrnoLookbehindOverrun = -6
	ErrnoEOFNotFound       = -7
)

// Errno maps a primitive error onto the classic liblzo status code.
// Returns 0 for nil.
func Errno(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, lzo.ErrInputOverrun),
		errors.Is(err, lzo.ErrEmptyInput):
		return ErrnoInputOverrun
	case errors.Is(err, lzo.ErrOutputOverrun):
		return ErrnoOutputOverrun
	case errors.Is(err, lzo.ErrLookBehindUnderrun):
		return ErrnoLookbehindOverrun
	case errors.Is(err, lzo.ErrUnexpectedEOF):
		return ErrnoEOFNotFound
	default:
		return ErrnoError
	}
}
