// Package config provides configuration management for the scenario
// generator.
//
// This package handles environment variable loading with type-safe parsing,
// applies secure defaults, and performs validation of all configuration
// values.
//
// # Loading Configuration
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
//   - LOG_LEVEL: Logging verbosity (default: "info")
//   - LOG_FORMAT: "text" or "json" (default: "text")
//   - DEFAULT_DIFFICULTY: Difficulty used when a caller omits one (default: "medium")
//   - DEFAULT_NUM_PLAYERS: Player count used when a caller omits one (default: 2)
//   - METRICS_ENABLED: Expose the Prometheus registry (default: false)
//   - METRICS_PORT: Port for the metrics HTTP handler (default: 9090)
//   - DIFFICULTY_PROFILE_FILE: Optional YAML file overriding difficulty presets
//
// # Validation
//
// All configuration values are validated on load: log level must be a
// known value, the default difficulty must be one of easy/medium/hard, the
// default player count must be in {2,3,4}, and, when metrics are enabled,
// the metrics port must be a valid TCP port.
package config
