package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"scenariogen/pkg/finalstate"
)

// Config is the process-wide configuration, loaded once from environment
// variables with secure defaults. Its fields are guarded by an unexported
// RWMutex; a goroutine sharing an instance takes a point-in-time copy with
// Snapshot.
type Config struct {
	// mu guards concurrent access to the fields below, e.g. the metrics
	// HTTP server goroutine reading MetricsPort while the main goroutine
	// still holds the same *Config.
	mu sync.RWMutex `json:"-"`

	// LogLevel controls logrus's verbosity (debug, info, warn, error).
	LogLevel string `json:"log_level"`

	// LogFormat selects logrus's formatter: "text" or "json".
	LogFormat string `json:"log_format"`

	// DefaultDifficulty is used when a caller's GenerateConfig omits one.
	DefaultDifficulty string `json:"default_difficulty"`

	// DefaultNumPlayers is used when a caller's GenerateConfig omits one.
	DefaultNumPlayers int `json:"default_num_players"`

	// MetricsEnabled gates the optional Prometheus registry.
	MetricsEnabled bool `json:"metrics_enabled"`

	// MetricsPort is the port the metrics HTTP handler listens on when
	// MetricsEnabled is true.
	MetricsPort int `json:"metrics_port"`

	// DifficultyProfileFile, if set, is a YAML file overriding one or
	// more difficulty presets; see LoadDifficultyOverrides.
	DifficultyProfileFile string `json:"difficulty_profile_file"`
}

// Load reads configuration from environment variables, applies defaults,
// and validates the result.
func Load() (*Config, error) {
	logrus.WithFields(logrus.Fields{
		"function": "Load",
		"package":  "config",
	}).Debug("entering Load")

	cfg := &Config{
		LogLevel:              getEnvAsString("LOG_LEVEL", "info"),
		LogFormat:             getEnvAsString("LOG_FORMAT", "text"),
		DefaultDifficulty:     getEnvAsString("DEFAULT_DIFFICULTY", "medium"),
		DefaultNumPlayers:     getEnvAsInt("DEFAULT_NUM_PLAYERS", 2),
		MetricsEnabled:        getEnvAsBool("METRICS_ENABLED", false),
		MetricsPort:           getEnvAsInt("METRICS_PORT", 9090),
		DifficultyProfileFile: getEnvAsString("DIFFICULTY_PROFILE_FILE", ""),
	}

	logrus.WithFields(logrus.Fields{
		"function":           "Load",
		"package":            "config",
		"log_level":          cfg.LogLevel,
		"default_difficulty": cfg.DefaultDifficulty,
		"metrics_enabled":    cfg.MetricsEnabled,
	}).Debug("configuration loaded, starting validation")

	if err := cfg.validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Load",
			"package":  "config",
			"error":    err,
		}).Error("configuration validation failed")
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Load",
		"package":  "config",
	}).Debug("exiting Load - configuration successfully loaded and validated")

	return cfg, nil
}

// Snapshot returns a copy of c safe to read after the call returns even if
// c is subsequently mutated from another goroutine.
func (c *Config) Snapshot() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Config{
		LogLevel:              c.LogLevel,
		LogFormat:             c.LogFormat,
		DefaultDifficulty:     c.DefaultDifficulty,
		DefaultNumPlayers:     c.DefaultNumPlayers,
		MetricsEnabled:        c.MetricsEnabled,
		MetricsPort:           c.MetricsPort,
		DifficultyProfileFile: c.DifficultyProfileFile,
	}
}

func (c *Config) validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("log level must be one of %v, got %s", validLogLevels, c.LogLevel)
	}

	validLogFormats := []string{"text", "json"}
	if !contains(validLogFormats, strings.ToLower(c.LogFormat)) {
		return fmt.Errorf("log format must be one of %v, got %s", validLogFormats, c.LogFormat)
	}

	validDifficulties := []string{string(finalstate.Easy), string(finalstate.Medium), string(finalstate.Hard)}
	if !contains(validDifficulties, strings.ToLower(c.DefaultDifficulty)) {
		return fmt.Errorf("default difficulty must be one of %v, got %s", validDifficulties, c.DefaultDifficulty)
	}

	if c.DefaultNumPlayers != 2 && c.DefaultNumPlayers != 3 && c.DefaultNumPlayers != 4 {
		return fmt.Errorf("default num players must be 2, 3, or 4, got %d", c.DefaultNumPlayers)
	}

	if c.MetricsEnabled && (c.MetricsPort < 1 || c.MetricsPort > 65535) {
		return fmt.Errorf("metrics port must be between 1 and 65535, got %d", c.MetricsPort)
	}

	return nil
}

func contains(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// Helper functions for environment variable parsing with type safety and defaults.

func getEnvAsString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
