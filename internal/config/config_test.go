package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDefaults(t *testing.T) {
	cfg := GetConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "https://ourworldindata.org/grapher", cfg.Fetch.BaseURL)
	assert.Equal(t, "Our World In Data data fetch/1.0", cfg.Fetch.UserAgent)
	assert.Equal(t, 60*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 1, cfg.Fetch.MaxAttempts)
	assert.Equal(t, 2.0, cfg.Fetch.RateLimit)
}

func TestGetConfigEnvOverrides(t *testing.T) {
	t.Setenv("CROP_ANALYSIS_USER_AGENT", "crop-analysis tests/0.1")
	t.Setenv("CROP_ANALYSIS_TIMEOUT", "5s")
	t.Setenv("CROP_ANALYSIS_MAX_ATTEMPTS", "4")

	cfg := GetConfig()
	assert.Equal(t, "crop-analysis tests/0.1", cfg.Fetch.UserAgent)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 4, cfg.Fetch.MaxAttempts)
}

func TestCurrentFallsBackToDefaults(t *testing.T) {
	SetConfig(nil)
	cfg := Current()
	require.NotNil(t, cfg)
	assert.Equal(t, "https://ourworldindata.org/grapher", cfg.Fetch.BaseURL)

	custom := GetConfig()
	custom.Fetch.UserAgent = "custom"
	SetConfig(custom)
	t.Cleanup(func() { SetConfig(nil) })

	assert.Equal(t, "custom", Current().Fetch.UserAgent)
}
