package config

import (
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	var cfg Config
	require.NoError(t, envconfig.Process("", &cfg))

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 1500, cfg.CandidateTextLimit)
	assert.Equal(t, 3500, cfg.TargetTextLimit)
	assert.Equal(t, int32(4000), cfg.MaxOutputTokens)
	assert.False(t, cfg.UseBrowser)
}

func TestProcess_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("CANDIDATE_TEXT_LIMIT", "500")
	t.Setenv("USE_BROWSER", "true")

	var cfg Config
	require.NoError(t, envconfig.Process("", &cfg))

	assert.Equal(t, 9000, cfg.ServerPort)
	assert.Equal(t, 500, cfg.CandidateTextLimit)
	assert.True(t, cfg.UseBrowser)
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := Config{
		ServerPort:         8080,
		CandidateTextLimit: 1500,
		TargetTextLimit:    3500,
		MaxOutputTokens:    4000,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequired)
}

func TestValidate_BadPort(t *testing.T) {
	cfg := Config{
		GeminiAPIKey:       "key",
		ServerPort:         -1,
		CandidateTextLimit: 1500,
		TargetTextLimit:    3500,
		MaxOutputTokens:    4000,
	}

	assert.Error(t, cfg.Validate())
}

func TestValidate_OK(t *testing.T) {
	cfg := Config{
		GeminiAPIKey:       "key",
		ServerPort:         8080,
		CandidateTextLimit: 1500,
		TargetTextLimit:    3500,
		MaxOutputTokens:    4000,
	}

	assert.NoError(t, cfg.Validate())
}
