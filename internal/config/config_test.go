package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"candor/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CANDOR_ADDR", "CANDOR_DATA_DIR", "CANDOR_DB_PATH", "CANDOR_LOG_LEVEL",
		"CANDOR_PROVIDER", "CANDOR_PROVIDER_API_KEY", "CANDOR_PROVIDER_BASE_URL",
		"CANDOR_MODEL", "CANDOR_TONE",
		"CANDOR_AIRTABLE_TOKEN", "CANDOR_AIRTABLE_BASE", "CANDOR_AIRTABLE_TABLE",
		"CANDOR_ALLOWED_ORIGIN", "CANDOR_RATE_LIMIT", "CANDOR_RATE_WINDOW",
		"CANDOR_OUTBOUND_QPS", "CANDOR_UPSTREAM_TIMEOUT", "CANDOR_DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := config.Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "openai", cfg.Provider)
	require.Equal(t, "gpt-4o-mini", cfg.Model)
	require.Equal(t, "blunt", cfg.Tone)
	require.Equal(t, "*", cfg.AllowedOrigin)
	require.Equal(t, 5, cfg.RateLimit)
	require.Equal(t, 60*time.Second, cfg.RateWindow)
	require.Equal(t, 10, cfg.OutboundQPS)
	require.Equal(t, 30*time.Second, cfg.UpstreamTimeout)
	require.False(t, cfg.Debug)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CANDOR_TONE", "sarcastic")
	t.Setenv("CANDOR_RATE_LIMIT", "10")
	t.Setenv("CANDOR_RATE_WINDOW", "30s")
	t.Setenv("CANDOR_DEBUG", "true")
	t.Setenv("CANDOR_ALLOWED_ORIGIN", "https://app.example.com")

	cfg := config.Load()
	require.Equal(t, "sarcastic", cfg.Tone)
	require.Equal(t, 10, cfg.RateLimit)
	require.Equal(t, 30*time.Second, cfg.RateWindow)
	require.True(t, cfg.Debug)
	require.Equal(t, "https://app.example.com", cfg.AllowedOrigin)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("CANDOR_RATE_LIMIT", "lots")
	t.Setenv("CANDOR_RATE_WINDOW", "-5s")
	t.Setenv("CANDOR_DEBUG", "maybe")

	cfg := config.Load()
	require.Equal(t, 5, cfg.RateLimit)
	require.Equal(t, 60*time.Second, cfg.RateWindow)
	require.False(t, cfg.Debug)
}

func TestMissingRequired(t *testing.T) {
	clearEnv(t)

	cfg := config.Load()
	require.ElementsMatch(t, []string{
		config.EnvProviderAPIKey,
		config.EnvAirtableToken,
		config.EnvAirtableBase,
		config.EnvAirtableTable,
	}, cfg.MissingRequired())

	t.Setenv(config.EnvProviderAPIKey, "k")
	t.Setenv(config.EnvAirtableToken, "t")
	cfg = config.Load()
	require.ElementsMatch(t, []string{
		config.EnvAirtableBase,
		config.EnvAirtableTable,
	}, cfg.MissingRequired())

	t.Setenv(config.EnvAirtableBase, "b")
	t.Setenv(config.EnvAirtableTable, "tbl")
	cfg = config.Load()
	require.Empty(t, cfg.MissingRequired())
}
