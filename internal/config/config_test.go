package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:     AppConfig{Environment: "development"},
		Logger:  LoggerConfig{Level: "info"},
		Storage: StorageConfig{DataPath: "/some/path", QuotaBytes: DefaultStorageQuotaBytes},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"WARN", true}, // case insensitive
		{"verbose", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logger.Level = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_QuotaMustBePositive(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.QuotaBytes = 0
	assert.Error(t, cfg.Validate())

	cfg.Storage.QuotaBytes = -1
	assert.Error(t, cfg.Validate())
}

func TestExpandDataPath_EmptyUsesDefault(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.expandDataPath())

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "Wardrobe", "db"), cfg.Storage.DataPath)
}

func TestExpandDataPath_TildeExpansion(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{DataPath: "~/my-wardrobe"}}
	require.NoError(t, cfg.expandDataPath())

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "my-wardrobe"), cfg.Storage.DataPath)
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("WARDROBE_TEST_KEY", "from-env")

	// Flag wins over env var.
	assert.Equal(t, "from-flag", getConfigValue("from-flag", "WARDROBE_TEST_KEY", "default"))
	// Env var wins over default.
	assert.Equal(t, "from-env", getConfigValue("", "WARDROBE_TEST_KEY", "default"))
	// Default when nothing else is set.
	assert.Equal(t, "default", getConfigValue("", "WARDROBE_TEST_UNSET", "default"))
}

func TestGetInt64ConfigValue(t *testing.T) {
	assert.Equal(t, int64(1024), getInt64ConfigValue("1024", "WARDROBE_TEST_UNSET", 99))
	assert.Equal(t, int64(99), getInt64ConfigValue("", "WARDROBE_TEST_UNSET", 99))
	assert.Equal(t, int64(99), getInt64ConfigValue("not-a-number", "WARDROBE_TEST_UNSET", 99))
}

func TestLoadEnvFile_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\nWARDROBE_ENVFILE_A=hello\nWARDROBE_ENVFILE_B=\"quoted\"\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Cleanup(func() {
		os.Unsetenv("WARDROBE_ENVFILE_A")
		os.Unsetenv("WARDROBE_ENVFILE_B")
	})

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "hello", os.Getenv("WARDROBE_ENVFILE_A"))
	assert.Equal(t, "quoted", os.Getenv("WARDROBE_ENVFILE_B"))
}

func TestLoadEnvFile_InvalidFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("NOT A VALID LINE\n"), 0o600))

	assert.Error(t, loadEnvFile(path))
}

func TestLoadEnvFile_NonExistentFile(t *testing.T) {
	assert.Error(t, loadEnvFile("/does/not/exist/.env"))
}

func TestLoadEnvFile_ExistingEnvVarsNotOverwritten(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("WARDROBE_ENVFILE_C=from-file\n"), 0o600))

	t.Setenv("WARDROBE_ENVFILE_C", "from-env")

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "from-env", os.Getenv("WARDROBE_ENVFILE_C"))
}
