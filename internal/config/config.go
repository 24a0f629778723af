package config

import (
	"os"
	"strconv"

	"github.com/bkrueger/resampling/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Estimation EstimationConfig
	Logging    LoggingConfig
}

// EstimationConfig holds resampling defaults
type EstimationConfig struct {
	// BootstrapDraws is the draw count used when a request does not set one.
	BootstrapDraws int
	// BaseSeed seeds bootstrap RNG streams when a request does not set one.
	BaseSeed int64
	// MaxConcurrent caps concurrent estimations in a batch run.
	MaxConcurrent int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	draws, err := getEnvInt("RESAMPLE_BOOTSTRAP_DRAWS", 1000)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load bootstrap draw count")
	}
	if draws < 2 {
		return nil, errors.ConfigInvalid("RESAMPLE_BOOTSTRAP_DRAWS must be at least 2")
	}

	seed, err := getEnvInt64("RESAMPLE_BASE_SEED", 42)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load base seed")
	}

	concurrent, err := getEnvInt("RESAMPLE_MAX_CONCURRENT", 4)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load concurrency limit")
	}
	if concurrent < 1 {
		return nil, errors.ConfigInvalid("RESAMPLE_MAX_CONCURRENT must be at least 1")
	}

	return &Config{
		Estimation: EstimationConfig{
			BootstrapDraws: draws,
			BaseSeed:       seed,
			MaxConcurrent:  concurrent,
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "INFO"),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer")
	}
	return n, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer")
	}
	return n, nil
}
