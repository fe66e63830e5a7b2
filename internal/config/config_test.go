package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad(t *testing.T) {
	setRequired := func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "token123")
		t.Setenv("BOT_PASSWORD", "pass123")
		t.Setenv("DB_PASSWORD", "dbpass")
	}

	t.Run("all required fields set", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, "token123", cfg.BotToken)
		assert.Equal(t, "pass123", cfg.BotPassword)
		assert.Equal(t, "dbpass", cfg.Database.Password)
	})

	t.Run("database defaults applied", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DB_HOST", "")
		t.Setenv("DB_NAME", "")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, "wordrace", cfg.Database.Name)
	})

	t.Run("missing BOT_TOKEN", func(t *testing.T) {
		setRequired(t)
		t.Setenv("BOT_TOKEN", "")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "BOT_TOKEN")
	})

	t.Run("missing BOT_PASSWORD", func(t *testing.T) {
		setRequired(t)
		t.Setenv("BOT_PASSWORD", "")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "BOT_PASSWORD")
	})

	t.Run("missing DB_PASSWORD", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DB_PASSWORD", "")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "DB_PASSWORD")
	})
}
