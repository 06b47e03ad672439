// Package config provides centralized configuration loaded from environment
// variables, shared by every hector subcommand.
package config

import (
	"os"
	"strconv"
)

// --------------------------------------------------------------------------
// Position registry — the filterable position codes per category
// --------------------------------------------------------------------------

// PitcherPositions are the display positions pitchers filter on. Closers are
// stored as CL in the export but display and filter as RP.
var PitcherPositions = []string{"SP", "RP"}

// BatterPositions are the batter position codes.
var BatterPositions = []string{"C", "1B", "2B", "3B", "SS", "LF", "CF", "RF", "DH"}

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Export files
	PitchersFile string
	BattersFile  string

	// Optional operator weight overrides (YAML); empty = shipped defaults
	BatterWeightsFile  string
	PitcherWeightsFile string

	// External profile links
	ProfileBaseURL string

	Debug bool
}

// Load reads configuration from environment variables with sensible
// defaults. The export files default to the working directory, matching how
// the tool runs next to a fresh export.
func Load() *Config {
	return &Config{
		PitchersFile: envOr("HECTOR_PITCHERS_FILE", "pitchers.html"),
		BattersFile:  envOr("HECTOR_BATTERS_FILE", "batters.html"),

		BatterWeightsFile:  envOr("HECTOR_BATTER_WEIGHTS", ""),
		PitcherWeightsFile: envOr("HECTOR_PITCHER_WEIGHTS", ""),

		ProfileBaseURL: envOr("HECTOR_PROFILE_BASE_URL", "https://atl-01.statsplus.net/rfbl"),

		Debug: envBool("HECTOR_DEBUG", false),
	}
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}
