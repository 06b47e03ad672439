package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ootptools/hector/internal/roster"
	"github.com/ootptools/hector/internal/weights"
)

// batterRecord builds a record with uniform offense 10, potential 5, and the
// given position plus extra fields.
func batterRecord(pos string, extra map[string]string) roster.Record {
	rec := roster.Record{
		"POS": pos,
		"OVR": "3.5 Stars", "POT": "4 Stars",
		"CON": "10", "GAP": "10", "POW": "10", "EYE": "10", "K's": "10",
		"CON P": "5", "GAP P": "5", "POW P": "5", "EYE P": "5", "K P": "5",
	}
	for k, v := range extra {
		rec[k] = v
	}
	return rec
}

func TestScoreBatterOffense(t *testing.T) {
	w := weights.DefaultBatterWeights()
	got := ScoreBatter(batterRecord("DH", nil), w)

	// 10 * (0.3+0.1+0.4+0.3+0.1) = 12; potential at half the inputs = 6.
	assert.InDelta(t, 12.0, got.Offense, 1e-9)
	assert.InDelta(t, 6.0, got.OffensePotential, 1e-9)
	assert.Equal(t, "3.5 Stars", got.OverallStars)
	assert.Equal(t, "4 Stars", got.PotentialStars)
}

func TestScoreBatterGlobalMultipliers(t *testing.T) {
	w := weights.DefaultBatterWeights()
	w.OverallWeight = 2.0
	w.PotentialWeight = 0.5

	got := ScoreBatter(batterRecord("DH", nil), w)
	assert.InDelta(t, 24.0, got.Offense, 1e-9)
	assert.InDelta(t, 3.0, got.OffensePotential, 1e-9)
}

func TestScoreBatterDefenseByPosition(t *testing.T) {
	w := weights.DefaultBatterWeights()

	infield := map[string]string{"IF RNG": "10", "IF ERR": "10", "IF ARM": "10"}
	outfield := map[string]string{"OF RNG": "10", "OF ERR": "10", "OF ARM": "10"}
	catcher := map[string]string{"C ABI": "10", "C ARM": "10", "C BLK": "10"}

	tests := []struct {
		pos   string
		extra map[string]string
		want  float64
	}{
		// Shortstop range weight (0.5) beats the other infield spots (0.2).
		{"SS", infield, 10*0.5 + 10*0.2 + 10*0.2},
		{"2B", infield, 10*0.2 + 10*0.2 + 10*0.2},
		{"3B", infield, 10*0.2 + 10*0.2 + 10*0.5},
		{"CF", outfield, 10*0.4 + 10*0.2 + 10*0.2},
		{"LF", outfield, 10*0.2 + 10*0.2 + 10*0.2},
		{"C", catcher, 10*0.5 + 10*0.3 + 10*0.4},
		// A DH never earns defense, even with fielding columns populated.
		{"DH", infield, 0},
	}

	for _, tt := range tests {
		t.Run(tt.pos, func(t *testing.T) {
			got := ScoreBatter(batterRecord(tt.pos, tt.extra), w)
			assert.InDelta(t, tt.want, got.Defense, 1e-9)
		})
	}
}

func TestScoreBatterLowercasePosition(t *testing.T) {
	w := weights.DefaultBatterWeights()
	got := ScoreBatter(batterRecord("ss", map[string]string{"IF RNG": "10"}), w)
	assert.InDelta(t, 5.0, got.Defense, 1e-9)
}

func TestScoreBatterTotalInvariant(t *testing.T) {
	w := weights.DefaultBatterWeights()
	records := []roster.Record{
		batterRecord("SS", map[string]string{"IF RNG": "7.3", "IF ERR": "4.1", "IF ARM": "9"}),
		batterRecord("C", map[string]string{"C ABI": "6", "C ARM": "3.3", "C BLK": "8"}),
		batterRecord("DH", nil),
		{"POS": "RF", "CON": "4.55 Stars", "GAP": "-", "OF RNG": "11"},
	}
	for _, rec := range records {
		got := ScoreBatter(rec, w)
		require.InDelta(t, got.Offense+got.OffensePotential+got.Defense, got.Total, 0.005)
	}
}

func TestScoreBatterUnparsableCellsDegradeToZero(t *testing.T) {
	w := weights.DefaultBatterWeights()
	rec := roster.Record{
		"POS": "SS",
		"CON": "-", "GAP": "", "POW": "??", "EYE": "10", "K's": "-",
	}
	got := ScoreBatter(rec, w)
	assert.InDelta(t, 3.0, got.Offense, 1e-9) // only EYE contributes
}
