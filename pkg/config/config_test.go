package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	keys := []string{
		"LOG_LEVEL", "LOG_FORMAT", "DEFAULT_DIFFICULTY", "DEFAULT_NUM_PLAYERS",
		"METRICS_ENABLED", "METRICS_PORT", "DIFFICULTY_PROFILE_FILE",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		validate    func(t *testing.T, cfg *Config)
	}{
		{
			name:        "default configuration",
			envVars:     map[string]string{},
			expectError: false,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "text", cfg.LogFormat)
				assert.Equal(t, "medium", cfg.DefaultDifficulty)
				assert.Equal(t, 2, cfg.DefaultNumPlayers)
				assert.False(t, cfg.MetricsEnabled)
				assert.Equal(t, 9090, cfg.MetricsPort)
			},
		},
		{
			name: "custom configuration from environment",
			envVars: map[string]string{
				"LOG_LEVEL":           "debug",
				"LOG_FORMAT":          "json",
				"DEFAULT_DIFFICULTY":  "hard",
				"DEFAULT_NUM_PLAYERS": "4",
				"METRICS_ENABLED":     "true",
				"METRICS_PORT":        "9999",
			},
			expectError: false,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "json", cfg.LogFormat)
				assert.Equal(t, "hard", cfg.DefaultDifficulty)
				assert.Equal(t, 4, cfg.DefaultNumPlayers)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, 9999, cfg.MetricsPort)
			},
		},
		{
			name:        "invalid log level",
			envVars:     map[string]string{"LOG_LEVEL": "verbose"},
			expectError: true,
		},
		{
			name:        "invalid difficulty",
			envVars:     map[string]string{"DEFAULT_DIFFICULTY": "nightmare"},
			expectError: true,
		},
		{
			name:        "invalid num players",
			envVars:     map[string]string{"DEFAULT_NUM_PLAYERS": "7"},
			expectError: true,
		},
		{
			name:        "invalid metrics port",
			envVars:     map[string]string{"METRICS_ENABLED": "true", "METRICS_PORT": "999999"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestConfigSnapshotCopiesFields(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("METRICS_PORT", "9123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	snap := cfg.Snapshot()
	if snap.MetricsPort != 9123 {
		t.Errorf("Snapshot().MetricsPort = %d, want 9123", snap.MetricsPort)
	}
	if snap.LogLevel != cfg.LogLevel {
		t.Errorf("Snapshot().LogLevel = %q, want %q", snap.LogLevel, cfg.LogLevel)
	}
	if snap.DefaultDifficulty != cfg.DefaultDifficulty {
		t.Errorf("Snapshot().DefaultDifficulty = %q, want %q", snap.DefaultDifficulty, cfg.DefaultDifficulty)
	}
}

func TestGetEnvAsStringDefaultsWhenUnset(t *testing.T) {
	os.Unsetenv("SCENARIOGEN_TEST_STRING")
	assert.Equal(t, "fallback", getEnvAsString("SCENARIOGEN_TEST_STRING", "fallback"))
}

func TestGetEnvAsIntFallsBackOnParseFailure(t *testing.T) {
	t.Setenv("SCENARIOGEN_TEST_INT", "not-a-number")
	assert.Equal(t, 5, getEnvAsInt("SCENARIOGEN_TEST_INT", 5))
}

func TestGetEnvAsBoolFallsBackOnParseFailure(t *testing.T) {
	t.Setenv("SCENARIOGEN_TEST_BOOL", "not-a-bool")
	assert.Equal(t, true, getEnvAsBool("SCENARIOGEN_TEST_BOOL", true))
}
