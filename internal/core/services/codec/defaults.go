package codec

import "github.com/ir193/lzoblock/internal/core/domain"

func prepareDefaults(opts *domain.CodecOptions) *domain.CodecOptions {
	if opts.MaxBlockSize == 0 {
		opts.MaxBlockSize = domain.MaxBlockSize
	}

	return opts
}
