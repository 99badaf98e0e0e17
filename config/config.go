package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ir193/lzoblock/internal/core/domain"
)

type Config struct {
	BlockSize       int   `yaml:"block_size"`       // Split size for input blocks
	Method          uint8 `yaml:"method"`           // 1 = lzo1x_1, 2 = lzo1x_1_15, 3 = lzo1x_999
	Level           int   `yaml:"level"`            // Compression level (1-9), used by lzo1x_999
	VerifyChecksums bool  `yaml:"verify_checksums"` // Verify per-block Adler-32 after round-trip
}

// DefaultConfig returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		BlockSize:       domain.DefaultBlockSize,
		Method:          uint8(domain.MethodLZO1X1),
		Level:           domain.MaxLevel,
		VerifyChecksums: true,
	}
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.BlockSize <= 0 {
		return fmt.Errorf("block_size must be greater than 0")
	}

	if config.BlockSize > domain.MaxBlockSize {
		return fmt.Errorf("block_size must not exceed %d", domain.MaxBlockSize)
	}

	method := domain.Method(config.Method)
	if method != domain.MethodLZO1X1 && method != domain.MethodLZO1X115 && method != domain.MethodLZO1X999 {
		return fmt.Errorf("method must be 1, 2 or 3, got %d", config.Method)
	}

	if config.Level < domain.MinLevel || config.Level > domain.MaxLevel {
		return fmt.Errorf("level must be between %d and %d, got %d", domain.MinLevel, domain.MaxLevel, config.Level)
	}

	return nil
}
