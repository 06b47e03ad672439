package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "pitchers.html", cfg.PitchersFile)
	assert.Equal(t, "batters.html", cfg.BattersFile)
	assert.Empty(t, cfg.BatterWeightsFile, "shipped weight defaults unless overridden")
	assert.NotEmpty(t, cfg.ProfileBaseURL)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HECTOR_PITCHERS_FILE", "/data/p.html")
	t.Setenv("HECTOR_PITCHER_WEIGHTS", "/data/pw.yaml")
	t.Setenv("HECTOR_DEBUG", "true")

	cfg := Load()
	assert.Equal(t, "/data/p.html", cfg.PitchersFile)
	assert.Equal(t, "/data/pw.yaml", cfg.PitcherWeightsFile)
	assert.True(t, cfg.Debug)
}
