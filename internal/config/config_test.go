package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LUCK_RUNTIME_PATH", dir)

	c, err := ParseAppConfig()
	require.NoError(t, err)

	assert.Equal(t, dir, c.GetRuntimePath())
	assert.Equal(t, filepath.Join(dir, "faq.json"), c.GetFAQPath())
	assert.Equal(t, filepath.Join(dir, ".env"), c.GetEnvPath())
	assert.True(t, c.EnableTelegram)
	assert.True(t, c.EnableWeb)
	assert.Equal(t, ":5000", c.WebAddr)
	assert.Equal(t, 3, c.HistoryWindow)
	assert.Equal(t, 20, c.HistoryMaxTurns)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, 10*time.Minute, c.SweepInterval)
}

func TestParseAppConfig_Overrides(t *testing.T) {
	t.Setenv("LUCK_RUNTIME_PATH", t.TempDir())
	t.Setenv("FAQ_FILE", "/etc/luckbot/faq.yaml")
	t.Setenv("ENABLE_TELEGRAM", "false")
	t.Setenv("SESSION_TTL", "1h")

	c, err := ParseAppConfig()
	require.NoError(t, err)
	assert.Equal(t, "/etc/luckbot/faq.yaml", c.GetFAQPath())
	assert.False(t, c.EnableTelegram)
	assert.Equal(t, time.Hour, c.SessionTTL)
}

func TestParseAppConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "negative window", key: "HISTORY_WINDOW", val: "-1"},
		{name: "cap below window", key: "HISTORY_MAX_TURNS", val: "2"},
		{name: "zero ttl", key: "SESSION_TTL", val: "0s"},
		{name: "bad log format", key: "LOG_FORMAT", val: "xml"},
		{name: "not a bool", key: "ENABLE_WEB", val: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LUCK_RUNTIME_PATH", t.TempDir())
			t.Setenv(tt.key, tt.val)

			_, err := ParseAppConfig()
			assert.Error(t, err)
		})
	}
}

func TestParseLLMConfig(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "")
		_, err := ParseLLMConfig()
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "gsk_test")
		c, err := ParseLLMConfig()
		require.NoError(t, err)
		assert.Equal(t, ProviderGroq, c.Provider)
		assert.Equal(t, "llama-3.1-8b-instant", c.Model)
		assert.InDelta(t, 0.3, c.Temperature, 1e-9)
		assert.Equal(t, 30*time.Second, c.Timeout)
	})

	t.Run("custom needs base url", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "gsk_test")
		t.Setenv("LLM_PROVIDER", ProviderCustom)
		t.Setenv("LLM_BASE_URL", "")
		_, err := ParseLLMConfig()
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "gsk_test")
		t.Setenv("LLM_PROVIDER", "carrier-pigeon")
		_, err := ParseLLMConfig()
		assert.Error(t, err)
	})
}

func TestParseTelegramConfig(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	_, err := ParseTelegramConfig()
	assert.Error(t, err)

	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	c, err := ParseTelegramConfig()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", c.Token)
}

func TestGetRuntimePath_Relative(t *testing.T) {
	t.Setenv("LUCK_RUNTIME_PATH", "custom-dir")
	assert.True(t, filepath.IsAbs(GetRuntimePath()))
	assert.Equal(t, "custom-dir", filepath.Base(GetRuntimePath()))
}
