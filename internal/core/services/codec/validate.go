package codec

import (
	"fmt"

	"github.com/ir193/lzoblock/internal/core/domain"
	"github.com/ir193/lzoblock/pkg/errors"
)

// Validate checks codec options against their acceptable bounds.
func Validate(opts *domain.CodecOptions) error {
	if opts.MaxBlockSize < 0 {
		return errors.NewValidationError(
			"maxBlockSize", opts.MaxBlockSize,
			fmt.Errorf("max block size must not be negative, got %d", opts.MaxBlockSize),
		)
	}

	if opts.MaxBlockSize > domain.MaxBlockSize {
		return errors.NewValidationError(
			"maxBlockSize", opts.MaxBlockSize,
			fmt.Errorf("max block size must not exceed %d, got %d", domain.MaxBlockSize, opts.MaxBlockSize),
		)
	}

	return nil
}
