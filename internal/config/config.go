// Package config collects the runtime settings of the service, loaded from
// environment variables with defaults that work out of the box.
package config

import (
	"os"
	"strconv"
)

// Config holds every tunable the server and pipeline read.
type Config struct {
	// Port the HTTP API listens on.
	Port int

	// UploadDir receives uploaded sheet images; AudioDir receives generated
	// MIDI files. Both are served under /static/.
	UploadDir string
	AudioDir  string

	// MaxUploadBytes caps accepted upload size.
	MaxUploadBytes int64

	// CacheCapacity bounds the analysis result cache (entries, LRU-evicted).
	CacheCapacity int

	// ConfidenceThreshold and IoUThreshold document the filtering contract
	// the external detector applies before its output reaches the pipeline.
	ConfidenceThreshold float64
	IoUThreshold        float64

	// AllowedOrigins configures CORS. "*" admits any origin.
	AllowedOrigins []string

	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:                5000,
		UploadDir:           "static/uploads",
		AudioDir:            "static/audio",
		MaxUploadBytes:      10 << 20,
		CacheCapacity:       100,
		ConfidenceThreshold: 0.25,
		IoUThreshold:        0.4,
		AllowedOrigins:      []string{"*"},
		LogLevel:            "info",
	}
}

// FromEnv returns the default configuration overridden by ENSEMBLE_*
// environment variables where set.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv("ENSEMBLE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	if v := os.Getenv("ENSEMBLE_UPLOAD_DIR"); v != "" {
		cfg.UploadDir = v
	}
	if v := os.Getenv("ENSEMBLE_AUDIO_DIR"); v != "" {
		cfg.AudioDir = v
	}
	if v := os.Getenv("ENSEMBLE_MAX_UPLOAD_MB"); v != "" {
		if mb, err := strconv.Atoi(v); err == nil && mb > 0 {
			cfg.MaxUploadBytes = int64(mb) << 20
		}
	}
	if v := os.Getenv("ENSEMBLE_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheCapacity = n
		}
	}
	if v := os.Getenv("ENSEMBLE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}
