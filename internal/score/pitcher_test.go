package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ootptools/hector/internal/roster"
	"github.com/ootptools/hector/internal/weights"
)

func TestScorePitcherAccumulators(t *testing.T) {
	w := weights.DefaultPitcherWeights()
	rec := roster.Record{
		"STU": "10", "MOV": "10", "CON": "10",
		"STU P": "4", "MOV P": "4", "CON P": "4",
		"OVR": "4 Stars", "POT": "5 Stars",
		"PIT": "5", "VELO": "92-95", "STM": "60",
		"G/F": "1.30", "HLD": "-", "SctAcc": "80",
		"FB": "6", "SL": "5",
		"FBP": "7", "SLP": "6",
	}
	got := ScorePitcher(rec, w)

	// 30*0.5 + 12*0.5 + 0.4 + 0.5 + 5*0.3 + 93.5*0.2 + 60*0.03 + 1.3*0.02 + 80*0.05
	assert.InDelta(t, 47.93, got.Total, 1e-9)
	assert.InDelta(t, 6*0.03+5*0.03, got.Pitches, 1e-9)
	assert.InDelta(t, 7*0.03+6*0.03, got.PitchesPotential, 1e-9)
}

func TestScorePitcherPitchesExcludedFromTotal(t *testing.T) {
	rec := roster.Record{
		"STU": "10", "PIT": "5", "STM": "60",
		"FB": "8", "FBP": "9",
	}

	base := weights.DefaultPitcherWeights()
	baseline := ScorePitcher(rec, base)

	// Cranking pitch weights moves only the pitch accumulators.
	boosted := weights.DefaultPitcherWeights()
	for k := range boosted.Pitches {
		boosted.Pitches[k] *= 10
	}
	got := ScorePitcher(rec, boosted)

	assert.InDelta(t, baseline.Total, got.Total, 1e-9)
	assert.InDelta(t, baseline.Pitches*10, got.Pitches, 1e-9)
	assert.InDelta(t, baseline.PitchesPotential*10, got.PitchesPotential, 1e-9)
}

func TestScorePitcherPenalties(t *testing.T) {
	w := weights.DefaultPitcherWeights()

	tests := []struct {
		name string
		pit  string
		stm  string
		want float64
	}{
		// PIT and STM also contribute as weighted attributes (0.3 and 0.03).
		{"no penalties", "5", "60", 5*0.3 + 60*0.03},
		{"both penalties", "3", "40", 3*0.3 + 40*0.03 - 0.2 - 0.5},
		{"low pitches only", "3", "60", 3*0.3 + 60*0.03 - 0.2},
		{"low stamina only", "5", "40", 5*0.3 + 40*0.03 - 0.5},
		// A non-numeric PIT skips its penalty but the stamina one still lands.
		{"unparsable pitch count", "N/A", "40", 40*0.03 - 0.5},
		{"unparsable stamina", "3", "??", 3*0.3 - 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScorePitcher(roster.Record{"PIT": tt.pit, "STM": tt.stm}, w)
			assert.InDelta(t, tt.want, got.Total, 1e-9)
		})
	}
}

func TestScorePitcherUnmappedHeadersIgnored(t *testing.T) {
	w := weights.DefaultPitcherWeights()
	got := ScorePitcher(roster.Record{"Name": "Smith", "ORG": "ATL", "Age": "27"}, w)
	assert.Zero(t, got.Total)
	assert.Zero(t, got.Pitches)
	assert.Zero(t, got.PitchesPotential)
}

// The header sweep table is the contract between export columns and weight
// attributes; every mapped header must be part of the required-field list
// and resolve to a known attribute, so a drifting column fails here instead
// of silently scoring 0.
func TestPitcherHeaderTableMatchesContract(t *testing.T) {
	required := make(map[string]bool, len(roster.RequiredPitcherFields))
	for _, f := range roster.RequiredPitcherFields {
		required[f] = true
	}
	flat := weights.DefaultPitcherWeights().Flatten()

	for header, attr := range pitcherHeaderAttr {
		assert.True(t, required[header], "header %q not in required-field contract", header)
		_, ok := flat[attr]
		assert.True(t, ok, "attribute %q has no weight entry", attr)
	}
	for header := range currentPitchHeaders {
		_, ok := pitcherHeaderAttr[header]
		assert.True(t, ok, "pitch header %q unmapped", header)
	}
	for header := range potentialPitchHeaders {
		_, ok := pitcherHeaderAttr[header]
		assert.True(t, ok, "potential pitch header %q unmapped", header)
	}
	assert.Len(t, currentPitchHeaders, 12)
	assert.Len(t, potentialPitchHeaders, 12)
}
