package errors

import (
	"errors"
	"fmt"
)

// ErrorCode discriminates codec bridge failures. Every failure surfaced to
// a caller carries exactly one code, plus the primitive's raw status where
// one exists, so callers can log and diagnose without inspecting buffers.
type ErrorCode int

const (
	// CodeUnsupportedMethod means the requested compression variant is not
	// available in this build. Checked before any primitive call.
	CodeUnsupportedMethod ErrorCode = iota + 1

	// CodeCompressFailed means the compression primitive reported
	// non-success, or its reported length violated the computed bound.
	CodeCompressFailed

	// CodeDecompressFailed means the compressed input is malformed,
	// truncated, or would overrun the destination.
	CodeDecompressFailed

	// CodeSizeMismatch means decompression succeeded but produced a length
	// different from the caller-supplied original length.
	CodeSizeMismatch

	// CodeAllocationFailed means an output buffer could not be reserved,
	// e.g. a declared original length beyond the configured maximum.
	CodeAllocationFailed
)

// String returns the string representation of the error code.
func (c ErrorCode) String() string {
	switch c {
	case CodeUnsupportedMethod:
		return "unsupported-method"
	case CodeCompressFailed:
		return "compress-failed"
	case CodeDecompressFailed:
		return "decompress-failed"
	case CodeSizeMismatch:
		return "size-mismatch"
	case CodeAllocationFailed:
		return "allocation-failed"
	default:
		return "unknown"
	}
}

// CodecError is the typed record every bridge failure is surfaced as.
type CodecError struct {
	Err   error     // underlying primitive error, may be nil
	Op    string    // operation that failed ("compress", "decompress")
	Errno int       // raw status code from the primitive, 0 when not applicable
	Code  ErrorCode // failure discriminator
}

// NewCodecError creates a new CodecError instance.
func NewCodecError(code ErrorCode, op string, errno int, err error) *CodecError {
	return &CodecError{
		Err:   err,
		Op:    op,
		Errno: errno,
		Code:  code,
	}
}

// Error implements the error interface for CodecError.
func (e *CodecError) Error() string {
	switch {
	case e.Err != nil && e.Errno != 0:
		return fmt.Sprintf("[%v] %s: %v (errno %d)", e.Code, e.Op, e.Err, e.Errno)
	case e.Err != nil:
		return fmt.Sprintf("[%v] %s: %v", e.Code, e.Op, e.Err)
	default:
		return fmt.Sprintf("[%v] %s", e.Code, e.Op)
	}
}

// Unwrap exposes the underlying primitive error to errors.Is/errors.As.
func (e *CodecError) Unwrap() error {
	return e.Err
}

// IsCodecError checks if a given error is of type CodecError.
func IsCodecError(err error) bool {
	var ce *CodecError
	return errors.As(err, &ce)
}

// AsCodecError attempts to extract a CodecError from a given error.
func AsCodecError(err error) *CodecError {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// HasCode reports whether err is a CodecError carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	ce := AsCodecError(err)
	return ce != nil && ce.Code == code
}
