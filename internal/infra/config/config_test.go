package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, "llama-3.1-8b-instant", cfg.LLM.Model)
	require.Equal(t, 400, cfg.LLM.MaxTokens)
	require.Equal(t, 3, cfg.Assistant.TopK)
	require.Equal(t, "page_text.txt", cfg.Sources.CorpusPath)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", " secret ")
	t.Setenv("GROQ_API_URL", "http://localhost:9999/v1")
	t.Setenv("LLM_MODEL", "other-model")
	t.Setenv("ASSISTANT_TOP_K", "5")
	t.Setenv("HTTP_RATE_LIMIT_ENABLED", "false")

	cfg := defaultConfig()
	applyEnvOverrides(cfg)

	require.Equal(t, "secret", cfg.LLM.APIKey)
	require.Equal(t, "http://localhost:9999/v1", cfg.LLM.BaseURL)
	require.Equal(t, "other-model", cfg.LLM.Model)
	require.Equal(t, 5, cfg.Assistant.TopK)
	require.False(t, cfg.HTTP.RateLimit.Enabled)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := defaultConfig()
	cfg.LLM.MaxTokens = 0
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.Assistant.TopK = -1
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.HTTP.RateLimit.Enabled = true
	cfg.HTTP.RateLimit.Burst = 0
	require.Error(t, cfg.Validate())
}

func TestReadTimeoutDefaults(t *testing.T) {
	cfg := defaultConfig()
	require.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	// write timeout must outlast the 30s completion call
	require.Equal(t, 35*time.Second, cfg.HTTP.WriteTimeout)
}
