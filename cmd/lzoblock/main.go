package main

import (
	"bytes"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/ir193/lzoblock/config"
	"github.com/ir193/lzoblock/internal/core/domain"
	"github.com/ir193/lzoblock/internal/core/services/codec"
	"github.com/ir193/lzoblock/pkg/errors"
	"github.com/ir193/lzoblock/pkg/logger"
	"github.com/ir193/lzoblock/pkg/pool"
)

func main() {
	logger := logger.New("lzoblock")
	defer logger.Sync()

	var (
		configPath = flag.String("config", "", "path to YAML config file")
		inputPath  = flag.String("in", "", "file to run through the codec (defaults to a built-in sample)")
	)
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			logger.Infow("load config error", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	bridge, err := codec.New(nil)
	if err != nil {
		if errors.IsValidationError(err) {
			verr := errors.AsValidationError(err)
			logger.Infow("create codec error", "field", verr.Field, "value", verr.Value, "error", verr.Err)
		} else {
			logger.Infow("create codec error", "error", err)
		}
		os.Exit(1)
	}

	lib := bridge.Library()
	logger.Infow("starting codec bridge",
		"version", lib.VersionString, "build_date", lib.BuildDate,
		"method", domain.Method(cfg.Method).String(), "block_size", cfg.BlockSize,
	)

	data := bytes.Repeat([]byte("lzoblock sample payload: blocks, bounds and checksums. "), 8192)
	if *inputPath != "" {
		data, err = os.ReadFile(*inputPath)
		if err != nil {
			logger.Infow("read input error", "path", *inputPath, "error", err)
			os.Exit(1)
		}
	}

	// The codec works on complete, independent blocks: the caller splits
	// the input, remembers each original size, and keeps per-block
	// checksums for integrity validation.
	method := domain.Method(cfg.Method)
	staging := pool.NewBufferPool(domain.CompressBound(cfg.BlockSize))

	var (
		blocks         int
		compressedSize int
	)

	for offset := 0; offset < len(data) || blocks == 0; offset += cfg.BlockSize {
		end := min(offset+cfg.BlockSize, len(data))
		block := data[offset:end]
		blocks++

		sum := bridge.Adler32(domain.Adler32Init, block)

		compressed, err := bridge.Compress(block, method, cfg.Level)
		if err != nil {
			logCodecError(logger, "compress error", err)
			os.Exit(1)
		}

		buf := staging.Get()
		buf.Write(compressed)
		compressedSize += buf.Len()

		out, err := bridge.Decompress(buf.Bytes(), len(block))
		staging.Put(buf)
		if err != nil {
			logCodecError(logger, "decompress error", err)
			os.Exit(1)
		}

		if cfg.VerifyChecksums {
			if got := bridge.Adler32(domain.Adler32Init, out); got != sum {
				logger.Infow("checksum mismatch after round-trip", "block", blocks, "want", sum, "got", got)
				os.Exit(1)
			}
		}
	}

	logger.Infow("round-trip complete",
		"blocks", blocks,
		"input_bytes", len(data),
		"compressed_bytes", compressedSize,
		"ratio", float64(compressedSize)/float64(max(len(data), 1)),
		"crc32", bridge.CRC32(domain.CRC32Init, data),
	)
}

func logCodecError(logger *zap.SugaredLogger, msg string, err error) {
	if cerr := errors.AsCodecError(err); cerr != nil {
		logger.Infow(msg, "code", cerr.Code.String(), "errno", cerr.Errno, "error", cerr.Err)
		return
	}
	logger.Infow(msg, "error", err)
}
